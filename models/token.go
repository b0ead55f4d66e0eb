package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind distinguishes access tokens from refresh tokens. It is stored in
// the "aud" claim so that a refresh token is never accepted as an access
// token and vice versa.
type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

// Token wraps a JWT issued for an authenticated email.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing).
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be written into a cookie.
type Token struct {
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Email is the subject ("sub") of the token.
	Email string `json:"-"`

	// Kind is the audience of the token.
	Kind TokenKind `json:"-"`

	// ExpiresAt mirrors the "exp" claim.
	ExpiresAt time.Time `json:"-"`

	// LoginTime mirrors the "auth_time" claim: when the OTP sign-in that
	// started the session happened. Refreshing never moves it.
	LoginTime time.Time `json:"-"`
}

// Claims is the JWT claim set of chronos tokens.
type Claims struct {
	jwt.RegisteredClaims

	AuthTime *jwt.NumericDate `json:"auth_time,omitempty"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
