package service

import (
	"fmt"

	"github.com/MKhiriev/chronos/internal/adapter"
	"github.com/MKhiriev/chronos/internal/config"
	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/store"
)

type Services struct {
	AuthService       AuthService
	SessionService    SessionService
	OfficerService    OfficerService
	PositionService   PositionService
	CompetencyService CompetencyService
	StintService      StintService
	RemarkService     RemarkService
	AppInfoService    AppInfoService
	HealthService     HealthService
}

// NewServices builds every service on top of storages. Record services are
// wrapped with their validation decorators.
func NewServices(storages *store.Storages, deliverer adapter.OTPDeliverer, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	sessionService, err := NewSessionService(storages.AllowedEmailRepository, cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating session service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	officerService := NewOfficerValidationService().Wrap(NewOfficerService(
		storages.OfficerRepository,
		storages.CompetencyRepository,
		storages.StintRepository,
		storages.RemarkRepository,
		logger,
	))

	return &Services{
		AuthService:       NewAuthService(storages.AllowedEmailRepository, storages.OTPRepository, deliverer, cfg.Auth, logger),
		SessionService:    sessionService,
		OfficerService:    officerService,
		PositionService:   NewPositionValidationService().Wrap(NewPositionService(storages.PositionRepository, logger)),
		CompetencyService: NewCompetencyValidationService().Wrap(NewCompetencyService(storages.CompetencyRepository, logger)),
		StintService:      NewStintValidationService().Wrap(NewStintService(storages.StintRepository, logger)),
		RemarkService:     NewRemarkValidationService().Wrap(NewRemarkService(storages.RemarkRepository, storages.OfficerRepository, logger)),
		AppInfoService:    appInfoService,
		HealthService:     NewHealthService(storages.HealthChecker),
	}, nil
}
