package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/chronos/internal/adapter"
	"github.com/MKhiriev/chronos/internal/app"
	"github.com/MKhiriev/chronos/internal/config"
	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/store"
	"github.com/MKhiriev/chronos/internal/utils"
	"github.com/MKhiriev/chronos/models"
)

// authService is the concrete implementation of AuthService.
// It checks emails against the allowlist, issues one-time codes and verifies
// them against the OTP store.
type authService struct {
	allowedEmailRepository store.AllowedEmailRepository
	otpRepository          store.OTPRepository

	// deliverer hands issued codes to the user. Its failures never fail
	// issuance.
	deliverer adapter.OTPDeliverer

	otpTTL       time.Duration
	maxAttempts  int
	attemptsMode string

	// exposeOTP puts the raw code into the issuance response. It is a
	// build-time constant outside of tests.
	exposeOTP bool

	now         func() time.Time
	generateOTP func() (string, error)

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the allowlist and OTP
// repositories and populated with OTP parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	allowedEmailRepository store.AllowedEmailRepository,
	otpRepository store.OTPRepository,
	deliverer adapter.OTPDeliverer,
	cfg config.Auth,
	logger *logger.Logger,
) AuthService {
	return &authService{
		allowedEmailRepository: allowedEmailRepository,
		otpRepository:          otpRepository,
		deliverer:              deliverer,
		otpTTL:                 cfg.OTPTTL,
		maxAttempts:            cfg.OTPMaxAttempts,
		attemptsMode:           cfg.OTPAttemptsMode,
		exposeOTP:              app.ExposeOTP,
		now:                    time.Now,
		generateOTP:            utils.GenerateOTP,
		logger:                 logger,
	}
}

// isOTPCode reports whether code is exactly six ASCII digits.
func isOTPCode(code string) bool {
	if len(code) != 6 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

// CheckEmail reports whether email may sign in.
func (a *authService) CheckEmail(ctx context.Context, email string) (bool, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return false, ErrInvalidDataProvided
	}

	allowed, err := a.allowedEmailRepository.IsAllowed(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("allowlist lookup failed")
		return false, fmt.Errorf("allowlist lookup failed: %w", err)
	}

	return allowed, nil
}

// RequestOTP issues a new code for an allowlisted email.
//
// Returns:
//   - ErrInvalidDataProvided if email is empty.
//   - ErrNotAuthorized if email is not on the allowlist; nothing is stored.
//   - A wrapped storage error if the code cannot be persisted.
//
// Delivery failures are logged and do not fail the call.
func (a *authService) RequestOTP(ctx context.Context, email string) (models.OTPRequestResult, error) {
	log := logger.FromContext(ctx)

	allowed, err := a.CheckEmail(ctx, email)
	if err != nil {
		return models.OTPRequestResult{}, err
	}
	email = models.NormalizeEmail(email)
	if !allowed {
		log.Info().Str("email", email).Msg("otp requested for email outside of allowlist")
		return models.OTPRequestResult{}, ErrNotAuthorized
	}

	code, err := a.generateOTP()
	if err != nil {
		log.Err(err).Msg("error generating otp")
		return models.OTPRequestResult{}, fmt.Errorf("%w: %w", ErrOTPNotIssued, err)
	}

	otp, err := a.otpRepository.Create(ctx, models.OTPVerification{
		Email:     email,
		OTPCode:   code,
		ExpiresAt: a.now().Add(a.otpTTL),
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("error saving otp")
		return models.OTPRequestResult{}, fmt.Errorf("%w: %w", ErrOTPNotIssued, err)
	}

	if err = a.deliverer.Deliver(ctx, email, code); err != nil {
		log.Warn().Err(err).Str("email", email).Int64("otp_id", otp.ID).Msg("otp delivery failed")
	}

	result := models.OTPRequestResult{Success: true, Message: app.MsgOTPSent}
	if a.exposeOTP {
		result.OTP = code
	}

	return result, nil
}

// VerifyOTP checks code against the newest outstanding code of email.
//
// Returns the authenticated session or:
//   - ErrInvalidOrExpired if the code is malformed, unknown, expired or
//     already used. A failed attempt is charged according to attemptsMode.
//   - ErrTooManyAttempts if the code matches but its attempts are used up.
//   - A wrapped storage error on persistence failures.
func (a *authService) VerifyOTP(ctx context.Context, email, code string) (models.Session, error) {
	log := logger.FromContext(ctx)

	email = models.NormalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || !isOTPCode(code) {
		return models.Session{}, ErrInvalidOrExpired
	}

	now := a.now()
	otp, err := a.otpRepository.FindLatestOutstanding(ctx, email, code, now)
	if errors.Is(err, store.ErrNotFound) {
		a.chargeFailedAttempt(ctx, email, code, now)
		return models.Session{}, ErrInvalidOrExpired
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("otp lookup failed")
		return models.Session{}, fmt.Errorf("otp lookup failed: %w", err)
	}

	if otp.Attempts >= a.maxAttempts {
		log.Info().Str("email", email).Int("attempts", otp.Attempts).Msg("otp attempts exhausted")
		return models.Session{}, ErrTooManyAttempts
	}

	if err = a.otpRepository.MarkVerified(ctx, otp.ID); err != nil {
		// a concurrent verification consumed the code first
		if errors.Is(err, store.ErrNotFound) {
			return models.Session{}, ErrInvalidOrExpired
		}
		log.Err(err).Int64("otp_id", otp.ID).Msg("error marking otp verified")
		return models.Session{}, fmt.Errorf("error marking otp verified: %w", err)
	}

	return models.Session{
		Email:         email,
		Authenticated: true,
		LoginTime:     now.UTC(),
	}, nil
}

// chargeFailedAttempt bumps the attempts counter. Failures are logged and
// swallowed.
func (a *authService) chargeFailedAttempt(ctx context.Context, email, code string, now time.Time) {
	var (
		affected int64
		err      error
	)

	switch a.attemptsMode {
	case config.AttemptsModeMatching:
		affected, err = a.otpRepository.IncrementAttemptsMatching(ctx, email, code)
	default:
		affected, err = a.otpRepository.IncrementAttemptsOutstanding(ctx, email, now)
	}

	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("email", email).Msg("error charging failed otp attempt")
		return
	}

	logger.FromContext(ctx).Debug().
		Str("email", email).
		Str("mode", a.attemptsMode).
		Int64("affected", affected).
		Msg("failed otp attempt charged")
}
