package adapter

import "errors"

// Relay failures grouped by what the operator has to fix.
var (
	// ErrRelayRejected means the relay refused the message itself or the
	// configured path does not exist.
	ErrRelayRejected = errors.New("relay rejected the request")
	// ErrRelayUnauthorized means the relay token is missing or wrong.
	ErrRelayUnauthorized = errors.New("relay unauthorized")
	ErrRelayThrottled    = errors.New("relay rate limit exceeded")
	// ErrRelayUnavailable covers every 5xx answer.
	ErrRelayUnavailable = errors.New("relay unavailable")

	ErrEmptyRelayAddress = errors.New("empty relay address")
)
