package models

import (
	"strings"
	"time"
)

// AllowedEmail is a single entry of the sign-in allowlist.
//
// The allowlist is maintained out-of-band by administrators; the application
// only reads it. Emails are stored lower-cased.
type AllowedEmail struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the AllowedEmail model.
func (a AllowedEmail) TableName() string {
	return "allowed_emails"
}

// NormalizeEmail trims and lower-cases an email, the form allowlist entries
// are stored in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
