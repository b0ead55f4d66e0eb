package adapter

import (
	"context"

	"github.com/MKhiriev/chronos/internal/logger"
)

type logOTPDeliverer struct {
	logger *logger.Logger
}

// NewLogOTPDeliverer returns an [OTPDeliverer] that only writes the code to
// the service log. It never fails.
func NewLogOTPDeliverer(logger *logger.Logger) OTPDeliverer {
	return &logOTPDeliverer{logger: logger}
}

func (l *logOTPDeliverer) Deliver(ctx context.Context, email, code string) error {
	l.logger.Info().
		Str("email", email).
		Str("otp", code).
		Msg("otp issued")
	return nil
}
