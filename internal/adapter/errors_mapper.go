package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxRelayBodyInError bounds how much of a relay response ends up in logs.
const maxRelayBodyInError = 256

var relayStatusErrors = map[int]error{
	http.StatusBadRequest:          ErrRelayRejected,
	http.StatusNotFound:            ErrRelayRejected,
	http.StatusMethodNotAllowed:    ErrRelayRejected,
	http.StatusUnprocessableEntity: ErrRelayRejected,
	http.StatusUnauthorized:        ErrRelayUnauthorized,
	http.StatusForbidden:           ErrRelayUnauthorized,
	http.StatusTooManyRequests:     ErrRelayThrottled,
}

// mapRelayResponse turns a non-2xx relay response into an error carrying the
// status and the start of the body.
func mapRelayResponse(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxRelayBodyInError {
		body = body[:maxRelayBodyInError] + "..."
	}
	if body == "" {
		body = http.StatusText(status)
	}

	sentinel, ok := relayStatusErrors[status]
	if !ok && status >= http.StatusInternalServerError {
		sentinel, ok = ErrRelayUnavailable, true
	}
	if !ok {
		return fmt.Errorf("relay returned http %d: %s", status, body)
	}

	return fmt.Errorf("%w: http %d: %s", sentinel, status, body)
}
