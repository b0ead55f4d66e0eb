package handler

import (
	"github.com/MKhiriev/chronos/internal/config"
	"github.com/MKhiriev/chronos/internal/handler/http"
	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/ratelimit"
	"github.com/MKhiriev/chronos/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, limiter ratelimit.Limiter, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, limiter, cfg, logger),
	}, nil
}
