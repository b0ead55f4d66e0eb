package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/ratelimit"
	"github.com/MKhiriev/chronos/models"
)

// withRateLimit counts requests per client address and route. Limiter
// failures other than an exceeded limit let the request through.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.allow(w, r, h.clientAddress(r)+":"+r.URL.Path) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

// allowEmail counts a sign-in request against the email it names, so that
// rotating client addresses does not buy more guesses for one mailbox.
// It writes the 429 response itself and reports whether to go on.
func (h *Handler) allowEmail(w http.ResponseWriter, r *http.Request, email string) bool {
	email = models.NormalizeEmail(email)
	if email == "" {
		return true
	}
	return h.allow(w, r, "email:"+email+":"+r.URL.Path)
}

func (h *Handler) allow(w http.ResponseWriter, r *http.Request, key string) bool {
	err := h.limiter.Allow(r.Context(), key)
	switch {
	case err == nil:
	case errors.Is(err, ratelimit.ErrLimitExceeded):
		writeError(w, r, err)
		return false
	default:
		logger.FromRequest(r).Warn().Err(err).Str("key", key).Msg("rate limiter is unavailable, request let through")
	}
	return true
}
