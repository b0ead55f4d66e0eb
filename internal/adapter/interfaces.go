// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the chronos service.
//
// The primary abstraction is [OTPDeliverer], which decouples the auth service
// from the way one-time codes reach the user. Two implementations ship with
// the package: a log-only deliverer used when no relay is configured, and an
// HTTP relay built on resty ([NewHTTPOTPRelay]).
//
// Relay responses are mapped from HTTP status codes by mapRelayResponse so that
// callers can use [errors.Is] (e.g. [ErrRelayUnauthorized] for 401).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// OTPDeliverer hands an issued one-time code to the user.
type OTPDeliverer interface {
	// Deliver sends code to email. Implementations must not retry; the
	// caller decides whether a failure matters.
	Deliver(ctx context.Context, email, code string) error
}
