package store

import (
	"context"
	"time"

	"github.com/MKhiriev/chronos/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AllowedEmailRepository is the read-only directory of emails permitted to sign in.
type AllowedEmailRepository interface {
	// IsAllowed reports whether the (already lower-cased) email is on the allowlist.
	IsAllowed(ctx context.Context, email string) (bool, error)
}

// OTPRepository persists one-time passcodes.
type OTPRepository interface {
	Create(ctx context.Context, otp models.OTPVerification) (models.OTPVerification, error)
	// FindLatestOutstanding returns the newest unverified row for
	// (email, code) that has not expired at now, or [ErrNotFound].
	FindLatestOutstanding(ctx context.Context, email, code string, now time.Time) (models.OTPVerification, error)
	// IncrementAttemptsMatching bumps attempts on every row for (email, code).
	IncrementAttemptsMatching(ctx context.Context, email, code string) (int64, error)
	// IncrementAttemptsOutstanding bumps attempts on the newest outstanding
	// row of email.
	IncrementAttemptsOutstanding(ctx context.Context, email string, now time.Time) (int64, error)
	MarkVerified(ctx context.Context, id int64) error
	// DeleteExpired removes rows that expired before cutoff and returns how
	// many were removed.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// OfficerRepository manages officers together with their competency
// assessments and completed stints.
type OfficerRepository interface {
	ListOfficers(ctx context.Context) ([]models.Officer, error)
	GetOfficer(ctx context.Context, officerID string) (models.Officer, error)
	CreateOfficer(ctx context.Context, officer models.Officer) (models.Officer, error)
	UpdateOfficer(ctx context.Context, update models.OfficerUpdate) (models.Officer, error)
	DeleteOfficer(ctx context.Context, officerID string) error

	ListOfficerCompetencies(ctx context.Context, officerID string) ([]models.OfficerCompetency, error)
	UpsertOfficerCompetency(ctx context.Context, competency models.OfficerCompetency) (models.OfficerCompetency, error)
	DeleteOfficerCompetency(ctx context.Context, officerID string, competencyID int64) error

	ListOfficerStints(ctx context.Context, officerID string) ([]models.OfficerStint, error)
	UpsertOfficerStint(ctx context.Context, stint models.OfficerStint) (models.OfficerStint, error)
	DeleteOfficerStint(ctx context.Context, officerID string, stintID int64) error

	ListIncumbentPositions(ctx context.Context, officerID string) ([]models.Position, error)
	ListSuccessorPositions(ctx context.Context, officerID string) ([]models.SuccessorPosition, error)
}

// PositionRepository manages positions and their successor tiers.
//
// ListPositions and GetPosition fill Position and Incumbent only; successor
// buckets are built by the caller from ListSuccessorLinks.
type PositionRepository interface {
	ListPositions(ctx context.Context) ([]models.PositionWithSuccessors, error)
	GetPosition(ctx context.Context, positionID string) (models.PositionWithSuccessors, error)
	CreatePosition(ctx context.Context, position models.Position) (models.Position, error)
	UpdatePosition(ctx context.Context, update models.PositionUpdate) (models.Position, error)
	DeletePosition(ctx context.Context, positionID string) error

	// ListSuccessorLinks returns successor rows for positionIDs, or for all
	// positions when none are given.
	ListSuccessorLinks(ctx context.Context, positionIDs ...string) ([]models.SuccessorLink, error)
	// ReplaceSuccessors atomically replaces one tier of a position.
	ReplaceSuccessors(ctx context.Context, positionID string, tier models.SuccessionType, officerIDs []string) error
}

// CompetencyRepository manages the HR competency catalogue.
type CompetencyRepository interface {
	ListCompetencies(ctx context.Context) ([]models.HRCompetency, error)
	GetCompetency(ctx context.Context, competencyID int64) (models.HRCompetency, error)
	CreateCompetency(ctx context.Context, competency models.HRCompetency) (models.HRCompetency, error)
	UpdateCompetency(ctx context.Context, competency models.HRCompetency) (models.HRCompetency, error)
	DeleteCompetency(ctx context.Context, competencyID int64) error
}

// StintRepository manages the out-of-agency stint catalogue.
type StintRepository interface {
	ListStints(ctx context.Context) ([]models.OOAStint, error)
	GetStint(ctx context.Context, stintID int64) (models.OOAStint, error)
	CreateStint(ctx context.Context, stint models.OOAStint) (models.OOAStint, error)
	UpdateStint(ctx context.Context, stint models.OOAStint) (models.OOAStint, error)
	DeleteStint(ctx context.Context, stintID int64) error
}

// RemarkRepository is the append-only log of remarks about officers.
type RemarkRepository interface {
	ListRemarks(ctx context.Context, officerID string) ([]models.OfficerRemark, error)
	AddRemark(ctx context.Context, remark models.OfficerRemark) (models.OfficerRemark, error)
}

// HealthChecker reports database reachability.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
