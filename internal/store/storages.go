package store

import "github.com/MKhiriev/chronos/internal/logger"

// Storages groups every repository backed by the shared [DB].
type Storages struct {
	AllowedEmailRepository AllowedEmailRepository
	OTPRepository          OTPRepository
	OfficerRepository      OfficerRepository
	PositionRepository     PositionRepository
	CompetencyRepository   CompetencyRepository
	StintRepository        StintRepository
	RemarkRepository       RemarkRepository
	HealthChecker          HealthChecker
}

// NewStorages constructs all repositories on top of db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AllowedEmailRepository: NewAllowedEmailRepository(db, logger),
		OTPRepository:          NewOTPRepository(db, logger),
		OfficerRepository:      NewOfficerRepository(db, logger),
		PositionRepository:     NewPositionRepository(db, logger),
		CompetencyRepository:   NewCompetencyRepository(db, logger),
		StintRepository:        NewStintRepository(db, logger),
		RemarkRepository:       NewRemarkRepository(db, logger),
		HealthChecker:          db,
	}
}
