// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrNoCredentials is returned by the session middleware when the
	// request carries neither a session cookie nor an access token.
	ErrNoCredentials = errors.New("no session cookie or access token")

	// ErrInvalidIdentifier is returned when a numeric path parameter cannot
	// be parsed.
	ErrInvalidIdentifier = errors.New("invalid identifier in path")

	// ErrInvalidJSON is returned when a request body is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
