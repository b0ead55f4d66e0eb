package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/chronos/internal/config"
	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/store"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

type healthService struct {
	healthChecker store.HealthChecker
}

func NewHealthService(healthChecker store.HealthChecker) HealthService {
	return &healthService{healthChecker: healthChecker}
}

// Ping reports whether the database answers.
func (h *healthService) Ping(ctx context.Context) error {
	if err := h.healthChecker.Ping(ctx); err != nil {
		return fmt.Errorf("database is unreachable: %w", err)
	}
	return nil
}
