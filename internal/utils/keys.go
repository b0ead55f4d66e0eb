package utils

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// DeriveKey expands secret into a hex-encoded key of length bytes bound to
// the given purpose label, using HKDF-SHA256.
//
// It lets a single service-role secret yield independent keys for the
// session cookie HMAC and for JWT signing.
func DeriveKey(secret, purpose string, length int) (string, error) {
	if secret == "" || purpose == "" || length <= 0 {
		return "", errors.New("invalid params for deriving key")
	}

	key := make([]byte, length)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(purpose))
	if _, err := io.ReadFull(r, key); err != nil {
		return "", fmt.Errorf("error deriving key: %w", err)
	}

	return fmt.Sprintf("%x", key), nil
}
