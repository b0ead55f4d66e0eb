package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/chronos/internal/app"
	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/service"
	"github.com/MKhiriev/chronos/internal/utils"
	"github.com/MKhiriev/chronos/models"
)

func (h *Handler) checkEmail(w http.ResponseWriter, r *http.Request) {
	var request models.EmailRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}

	if !h.allowEmail(w, r, request.Email) {
		return
	}

	allowed, err := h.services.AuthService.CheckEmail(r.Context(), request.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.EmailCheckResponse{Success: true, Allowed: allowed}, http.StatusOK)
}

func (h *Handler) requestOTP(w http.ResponseWriter, r *http.Request) {
	var request models.EmailRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}

	if !h.allowEmail(w, r, request.Email) {
		return
	}

	result, err := h.services.AuthService.RequestOTP(r.Context(), request.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// verifyOTP checks the submitted code and, on success, sets the session
// cookie together with the access and refresh token cookies.
func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.OTPVerifyRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		writeError(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}

	if !h.allowEmail(w, r, request.Email) {
		return
	}

	session, err := h.services.AuthService.VerifyOTP(ctx, request.Email, request.OTP)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cookies, err := h.services.SessionService.Issue(ctx, session)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setSessionCookies(w, cookies)
	log.Info().Str("email", session.Email).Msg("user signed in")

	writeData(w, session, http.StatusOK)
}

// getSession returns the session payload or 401 {"authenticated":false}.
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.authenticate(r.Context(), r)
	if err != nil {
		h.rejectUnauthenticated(w, r, err)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

// refresh exchanges the refresh token cookie for a new access token cookie.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken := cookieValue(r, refreshTokenCookieName)
	if refreshToken == "" {
		utils.WriteJSON(w, models.ActionResponse{Success: false, Error: app.MsgRefreshTokenMissing}, http.StatusUnauthorized)
		return
	}

	cookies, err := h.services.SessionService.Refresh(r.Context(), refreshToken)
	if err != nil {
		if errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrSessionInvalid) ||
			errors.Is(err, service.ErrNotAuthorized) {
			h.clearSessionCookies(w)
		}
		writeError(w, r, err)
		return
	}

	h.setSessionCookies(w, cookies)
	writeMessage(w, "access token refreshed", http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookies(w)
	writeMessage(w, app.MsgLoggedOut, http.StatusOK)
}
