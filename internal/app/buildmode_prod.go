//go:build production

package app

const (
	Production        = true
	ExposeOTP         = false
	AuthBypassAllowed = false
)
