// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// OTPVerification is an issued one-time code.
//
// A row is created on every issuance and mutated on each verification
// attempt: Attempts grows on mismatches and Verified flips to true on success.
// Rows are never deleted; a row is logically dead once it has expired or has
// been verified, and such rows never satisfy an outstanding-code lookup.
type OTPVerification struct {
	// ID is the database identifier of the issued code.
	ID int64 `json:"id"`

	// Email is the lower-cased address the code was issued for.
	Email string `json:"email"`

	// OTPCode holds exactly six ASCII digits.
	OTPCode string `json:"-"`

	// ExpiresAt is the creation time plus the configured OTP lifetime.
	ExpiresAt time.Time `json:"expires_at"`

	// Verified reports whether the code has already been used.
	Verified bool `json:"verified"`

	// Attempts counts failed verification attempts recorded against the code.
	Attempts int `json:"attempts"`

	// CreatedAt is used to pick the most recent code when several match.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the OTPVerification model.
func (o OTPVerification) TableName() string {
	return "otp_verifications"
}

// IsExpired reports whether the code is past its expiry at the given moment.
func (o OTPVerification) IsExpired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}

// EmailRequest is the body of the allowlist check and OTP issuance endpoints.
type EmailRequest struct {
	Email string `json:"email"`
}

// OTPVerifyRequest is the body of the OTP verification endpoint.
type OTPVerifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// OTPRequestResult is returned by a successful OTP issuance.
//
// OTP is populated only by non-production builds so that the flow can be
// exercised without a mail relay.
type OTPRequestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OTP     string `json:"otp,omitempty"`
}
