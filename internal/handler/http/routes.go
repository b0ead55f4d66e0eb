package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(h.corsOptions()))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version/", h.getServerVersion)

		r.Get("/api/auth/session", h.getSession)
		r.Post("/api/auth/refresh", h.refresh)
		r.Post("/api/auth/logout", h.logout)
	})

	// sign-in routes, rate limited per client address and per email
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Post("/api/auth/email/check", h.checkEmail)
		r.Post("/api/auth/otp", h.requestOTP)
		r.Post("/api/auth/otp/verify", h.verifyOTP)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/api/officers", h.listOfficers)
		r.Post("/api/officers", h.createOfficer)
		r.Get("/api/officers/{officerID}", h.getOfficer)
		r.Put("/api/officers/{officerID}", h.updateOfficer)
		r.Delete("/api/officers/{officerID}", h.deleteOfficer)
		r.Put("/api/officers/{officerID}/competencies/{competencyID}", h.setOfficerCompetency)
		r.Delete("/api/officers/{officerID}/competencies/{competencyID}", h.removeOfficerCompetency)
		r.Post("/api/officers/{officerID}/stints", h.addOfficerStint)
		r.Delete("/api/officers/{officerID}/stints/{stintID}", h.removeOfficerStint)
		r.Get("/api/officers/{officerID}/remarks", h.listRemarks)
		r.Post("/api/officers/{officerID}/remarks", h.addRemark)

		r.Get("/api/positions", h.listPositions)
		r.Post("/api/positions", h.createPosition)
		r.Get("/api/positions/{positionID}", h.getPosition)
		r.Put("/api/positions/{positionID}", h.updatePosition)
		r.Delete("/api/positions/{positionID}", h.deletePosition)
		r.Put("/api/positions/{positionID}/successors/{tier}", h.setSuccessors)

		r.Get("/api/competencies", h.listCompetencies)
		r.Post("/api/competencies", h.createCompetency)
		r.Get("/api/competencies/{competencyID}", h.getCompetency)
		r.Put("/api/competencies/{competencyID}", h.updateCompetency)
		r.Delete("/api/competencies/{competencyID}", h.deleteCompetency)

		r.Get("/api/stints", h.listStints)
		r.Post("/api/stints", h.createStint)
		r.Get("/api/stints/{stintID}", h.getStint)
		r.Put("/api/stints/{stintID}", h.updateStint)
		r.Delete("/api/stints/{stintID}", h.deleteStint)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// corsOptions allows the web UI at siteURL to call the API with cookies.
// Without a site URL every cross-origin request is refused.
func (h *Handler) corsOptions() cors.Options {
	options := cors.Options{
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if h.siteURL != "" {
		options.AllowedOrigins = []string{h.siteURL}
	} else {
		options.AllowOriginFunc = func(*http.Request, string) bool { return false }
	}
	return options
}
