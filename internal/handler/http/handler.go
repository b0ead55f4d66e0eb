package http

import (
	"net/netip"
	"time"

	"github.com/MKhiriev/chronos/internal/app"
	"github.com/MKhiriev/chronos/internal/config"
	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/ratelimit"
	"github.com/MKhiriev/chronos/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  ratelimit.Limiter

	// secureCookies marks every cookie Secure. Set in production.
	secureCookies bool
	// authBypass lets every request through requireSession. Only honoured
	// by non-production builds.
	authBypass bool

	siteURL        string
	requestTimeout time.Duration

	// trustedProxies are the peers whose forwarding headers are believed.
	trustedProxies []netip.Prefix

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter ratelimit.Limiter, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	if limiter == nil {
		limiter = ratelimit.NewNopLimiter()
	}

	h := &Handler{
		services:       services,
		limiter:        limiter,
		secureCookies:  cfg.App.IsProduction() || app.Production,
		authBypass:     app.AuthBypassAllowed && cfg.App.AuthBypass,
		siteURL:        cfg.App.SiteURL,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}

	// validated at config load; a bad entry only means no proxy is trusted
	trustedProxies, err := cfg.Server.TrustedProxyPrefixes()
	if err != nil {
		logger.Warn().Err(err).Msg("ignoring trusted proxies")
	}
	h.trustedProxies = trustedProxies

	if h.authBypass {
		logger.Warn().Msg("session checks are bypassed, do not use this build in production")
	}
	logger.Info().Msg("http handler created")

	return h
}
