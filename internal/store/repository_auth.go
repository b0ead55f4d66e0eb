package store

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/models"
)

// allowedEmailRepository is the PostgreSQL-backed [AllowedEmailRepository].
type allowedEmailRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAllowedEmailRepository constructs an [AllowedEmailRepository] on db.
func NewAllowedEmailRepository(db *DB, logger *logger.Logger) AllowedEmailRepository {
	logger.Debug().Msg("creating allowed email repository")
	return &allowedEmailRepository{
		db:     db,
		logger: logger,
	}
}

func (r *allowedEmailRepository) IsAllowed(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	var allowed bool
	err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildIsEmailAllowedQuery(email)
	}, &allowed)
	if err != nil {
		log.Err(err).Str("func", "*allowedEmailRepository.IsAllowed").Msg("error checking allowlist")
		return false, err
	}

	return allowed, nil
}

// otpRepository is the PostgreSQL-backed [OTPRepository] over the
// "otp_verifications" table.
type otpRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewOTPRepository constructs an [OTPRepository] on db.
func NewOTPRepository(db *DB, logger *logger.Logger) OTPRepository {
	logger.Debug().Msg("creating otp repository")
	return &otpRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts otp and returns it with server-assigned id and created_at.
func (r *otpRepository) Create(ctx context.Context, otp models.OTPVerification) (models.OTPVerification, error) {
	log := logger.FromContext(ctx)

	var created models.OTPVerification
	err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildInsertOTPQuery(otp)
	}, otpDest(&created)...)
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.Create").Msg("error saving otp")
		return models.OTPVerification{}, err
	}

	return created, nil
}

func (r *otpRepository) FindLatestOutstanding(ctx context.Context, email, code string, now time.Time) (models.OTPVerification, error) {
	log := logger.FromContext(ctx)

	var found models.OTPVerification
	err := r.db.queryRow(ctx, r.db, func() (string, []any, error) {
		return buildFindLatestOutstandingOTPQuery(email, code, now)
	}, otpDest(&found)...)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*otpRepository.FindLatestOutstanding").Msg("error looking up otp")
		}
		return models.OTPVerification{}, err
	}

	return found, nil
}

func (r *otpRepository) IncrementAttemptsMatching(ctx context.Context, email, code string) (int64, error) {
	log := logger.FromContext(ctx)

	affected, err := r.db.exec(ctx, r.db, func() (string, []any, error) {
		return buildIncrementAttemptsMatchingQuery(email, code)
	})
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.IncrementAttemptsMatching").Msg("error bumping attempts")
		return 0, err
	}

	return affected, nil
}

func (r *otpRepository) IncrementAttemptsOutstanding(ctx context.Context, email string, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	affected, err := r.db.exec(ctx, r.db, func() (string, []any, error) {
		return buildIncrementAttemptsOutstandingQuery(email, now)
	})
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.IncrementAttemptsOutstanding").Msg("error bumping attempts")
		return 0, err
	}

	return affected, nil
}

// MarkVerified flips verified on the row. A row that is missing or already
// verified yields [ErrNotFound], so a code cannot be consumed twice.
func (r *otpRepository) MarkVerified(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	affected, err := r.db.exec(ctx, r.db, func() (string, []any, error) {
		return buildMarkOTPVerifiedQuery(id)
	})
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.MarkVerified").Int64("otp_id", id).Msg("error marking otp verified")
		return err
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *otpRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	affected, err := r.db.exec(ctx, r.db, func() (string, []any, error) {
		return buildDeleteExpiredOTPQuery(cutoff)
	})
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.DeleteExpired").Msg("error purging expired otps")
		return 0, err
	}

	return affected, nil
}

func otpDest(o *models.OTPVerification) []any {
	return []any{&o.ID, &o.Email, &o.OTPCode, &o.ExpiresAt, &o.Verified, &o.Attempts, &o.CreatedAt}
}
