package models

import "time"

// Session is the payload carried by the chronos_session cookie.
//
// It is not persisted anywhere: its lifetime is evaluated lazily from
// LoginTime on every read.
type Session struct {
	Email         string    `json:"email"`
	Authenticated bool      `json:"authenticated"`
	LoginTime     time.Time `json:"loginTime"`
}

// Age returns how long ago the session was issued.
func (s Session) Age(now time.Time) time.Duration {
	return now.Sub(s.LoginTime)
}

// IsExpired reports whether the session is older than ttl.
func (s Session) IsExpired(now time.Time, ttl time.Duration) bool {
	return s.Age(now) > ttl
}

// SessionCookies holds the encoded values that are written as cookies after
// a successful sign-in.
type SessionCookies struct {
	// Session is the encoded chronos_session cookie value.
	Session          string
	SessionExpiresAt time.Time

	// AccessToken is a short-lived signed JWT.
	AccessToken          string
	AccessTokenExpiresAt time.Time

	// RefreshToken is a long-lived signed JWT used to mint new access tokens.
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}

// SessionStatus is returned by the session endpoint when no valid session exists.
type SessionStatus struct {
	Authenticated bool `json:"authenticated"`
}
