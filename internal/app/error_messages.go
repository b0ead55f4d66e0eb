// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// chronos handlers, middleware and services.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
//
// The build-mode constants (Production, ExposeOTP, AuthBypassAllowed) are
// selected at compile time by the "production" build tag.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgEmailNotAuthorized is returned when the email is not on the
	// sign-in allowlist.
	MsgEmailNotAuthorized = "email is not authorized"

	// MsgInvalidOrExpiredOTP is returned when no outstanding code matches
	// the submitted one.
	MsgInvalidOrExpiredOTP = "invalid or expired otp"

	// MsgTooManyAttempts is returned when the matching code has used up its
	// failed attempts.
	MsgTooManyAttempts = "too many attempts, request a new otp"

	// MsgOTPSent is the success message of the OTP issuance endpoint.
	MsgOTPSent = "OTP sent"

	// MsgLoggedOut is the success message of the logout endpoint.
	MsgLoggedOut = "logged out"

	// MsgSessionExpiredOrInvalid is returned when neither a session cookie
	// nor an access token authenticates the request.
	MsgSessionExpiredOrInvalid = "session is expired or invalid"

	// MsgRefreshTokenMissing is returned by the refresh endpoint when no
	// refresh token cookie is present.
	MsgRefreshTokenMissing = "refresh token is missing"

	// MsgRateLimitExceeded is returned when a client exceeds the auth
	// endpoints rate limit.
	MsgRateLimitExceeded = "too many requests"

	// MsgNotFound is returned when the addressed record does not exist.
	MsgNotFound = "not found"

	// MsgAlreadyExists is returned when a record with the same key exists.
	MsgAlreadyExists = "already exists"

	// MsgReferenceNotFound is returned when a record refers to another
	// record that does not exist.
	MsgReferenceNotFound = "referenced record not found"

	// MsgInvalidSuccessionType is returned when the tier path segment is
	// not one of the four known tiers.
	MsgInvalidSuccessionType = "invalid succession type"

	// MsgInvalidIdentifier is returned when a numeric path parameter cannot
	// be parsed.
	MsgInvalidIdentifier = "invalid identifier"
)
