package service

import (
	"context"

	"github.com/MKhiriev/chronos/models"
)

// AuthService runs the email allowlist and OTP sign-in flow.
type AuthService interface {
	CheckEmail(ctx context.Context, email string) (bool, error)
	RequestOTP(ctx context.Context, email string) (models.OTPRequestResult, error)
	VerifyOTP(ctx context.Context, email, code string) (models.Session, error)
}

// SessionService encodes and reads the session cookie and the JWT pair
// issued next to it.
type SessionService interface {
	Issue(ctx context.Context, session models.Session) (models.SessionCookies, error)
	Read(ctx context.Context, value string) (models.Session, error)
	Refresh(ctx context.Context, refreshToken string) (models.SessionCookies, error)
	ParseAccessToken(ctx context.Context, accessToken string) (models.Session, error)
}

type OfficerService interface {
	ListOfficers(ctx context.Context) ([]models.Officer, error)
	GetOfficer(ctx context.Context, officerID string) (models.OfficerDetail, error)
	CreateOfficer(ctx context.Context, officer models.Officer) (models.Officer, error)
	UpdateOfficer(ctx context.Context, update models.OfficerUpdate) (models.Officer, error)
	DeleteOfficer(ctx context.Context, officerID string) error

	SetOfficerCompetency(ctx context.Context, competency models.OfficerCompetency) (models.OfficerCompetency, error)
	RemoveOfficerCompetency(ctx context.Context, officerID string, competencyID int64) error
	AddOfficerStint(ctx context.Context, stint models.OfficerStint) (models.OfficerStint, error)
	RemoveOfficerStint(ctx context.Context, officerID string, stintID int64) error
}

type PositionService interface {
	ListPositions(ctx context.Context) ([]models.PositionWithSuccessors, error)
	GetPosition(ctx context.Context, positionID string) (models.PositionWithSuccessors, error)
	CreatePosition(ctx context.Context, request models.CreatePositionRequest) (models.PositionWithSuccessors, error)
	UpdatePosition(ctx context.Context, update models.PositionUpdate) (models.PositionWithSuccessors, error)
	DeletePosition(ctx context.Context, positionID string) error

	// SetSuccessors replaces one tier of a position and returns the
	// position with all four tiers.
	SetSuccessors(ctx context.Context, positionID string, tier models.SuccessionType, officerIDs []string) (models.PositionWithSuccessors, error)
}

type CompetencyService interface {
	ListCompetencies(ctx context.Context) ([]models.HRCompetency, error)
	GetCompetency(ctx context.Context, competencyID int64) (models.HRCompetency, error)
	CreateCompetency(ctx context.Context, competency models.HRCompetency) (models.HRCompetency, error)
	UpdateCompetency(ctx context.Context, competency models.HRCompetency) (models.HRCompetency, error)
	DeleteCompetency(ctx context.Context, competencyID int64) error
}

type StintService interface {
	ListStints(ctx context.Context) ([]models.OOAStint, error)
	GetStint(ctx context.Context, stintID int64) (models.OOAStint, error)
	CreateStint(ctx context.Context, stint models.OOAStint) (models.OOAStint, error)
	UpdateStint(ctx context.Context, stint models.OOAStint) (models.OOAStint, error)
	DeleteStint(ctx context.Context, stintID int64) error
}

type RemarkService interface {
	ListRemarks(ctx context.Context, officerID string) ([]models.OfficerRemark, error)
	AddRemark(ctx context.Context, remark models.OfficerRemark) (models.OfficerRemark, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type HealthService interface {
	Ping(ctx context.Context) error
}

// OfficerServiceWrapper defines middleware composition for OfficerService.
// Implementations wrap an existing OfficerService to add behavior such as
// logging or validating.
type OfficerServiceWrapper interface {
	Wrap(OfficerService) OfficerService
}

type PositionServiceWrapper interface {
	Wrap(PositionService) PositionService
}

type CompetencyServiceWrapper interface {
	Wrap(CompetencyService) CompetencyService
}

type StintServiceWrapper interface {
	Wrap(StintService) StintService
}

type RemarkServiceWrapper interface {
	Wrap(RemarkService) RemarkService
}
