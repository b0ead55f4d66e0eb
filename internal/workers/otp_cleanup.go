package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/store"
)

// otpRetention keeps expired codes around for a while so that failed
// sign-ins can still be inspected.
const otpRetention = 24 * time.Hour

type otpCleanupWorker struct {
	otpRepository store.OTPRepository
	interval      time.Duration
	now           func() time.Time

	logger *logger.Logger
}

// NewOTPCleanupWorker purges codes that expired more than a day ago, once
// per interval.
func NewOTPCleanupWorker(otpRepository store.OTPRepository, interval time.Duration, logger *logger.Logger) Worker {
	return &otpCleanupWorker{
		otpRepository: otpRepository,
		interval:      interval,
		now:           time.Now,
		logger:        logger,
	}
}

func (w *otpCleanupWorker) Run(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Msg("otp cleanup is disabled")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.purge(ctx)
		}
	}
}

func (w *otpCleanupWorker) purge(ctx context.Context) {
	removed, err := w.otpRepository.DeleteExpired(ctx, w.now().UTC().Add(-otpRetention))
	if err != nil {
		w.logger.Err(err).Str("func", "*otpCleanupWorker.purge").Msg("error purging expired otps")
		return
	}
	if removed > 0 {
		w.logger.Info().Int64("removed", removed).Msg("expired otps purged")
	}
}
