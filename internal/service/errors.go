package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrValidation          = errors.New("validation failed")

	ErrNotAuthorized    = errors.New("email is not authorized")
	ErrInvalidOrExpired = errors.New("invalid or expired otp")
	ErrTooManyAttempts  = errors.New("too many attempts")
	ErrOTPNotIssued     = errors.New("otp could not be issued")

	ErrSessionExpired      = errors.New("session is expired")
	ErrSessionInvalid      = errors.New("session is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrInvalidSuccessionType = errors.New("invalid succession type")
	ErrLevelExceedsMax       = errors.New("achieved level exceeds the competency maximum")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
