//go:build !production

package app

const (
	// Production reports whether the binary was built with the production tag.
	Production = false

	// ExposeOTP makes the OTP issuance response carry the raw code.
	ExposeOTP = true

	// AuthBypassAllowed lets APP_AUTH_BYPASS disable the session check.
	AuthBypassAllowed = true
)
