package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/chronos/models"
)

const (
	sessionCookieName      = "chronos_session"
	accessTokenCookieName  = "chronos_access_token"
	refreshTokenCookieName = "chronos_refresh_token"
)

func (h *Handler) newCookie(name, value string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

// setSessionCookies writes the session cookie and the token pair. Empty
// values are skipped so that a refresh leaves the session cookie alone.
func (h *Handler) setSessionCookies(w http.ResponseWriter, cookies models.SessionCookies) {
	for _, c := range []struct {
		name, value string
		expiresAt   time.Time
	}{
		{sessionCookieName, cookies.Session, cookies.SessionExpiresAt},
		{accessTokenCookieName, cookies.AccessToken, cookies.AccessTokenExpiresAt},
		{refreshTokenCookieName, cookies.RefreshToken, cookies.RefreshTokenExpiresAt},
	} {
		if c.value != "" {
			http.SetCookie(w, h.newCookie(c.name, c.value, c.expiresAt))
		}
	}
}

func (h *Handler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookies(w http.ResponseWriter) {
	h.clearCookie(w, sessionCookieName)
	h.clearCookie(w, accessTokenCookieName)
	h.clearCookie(w, refreshTokenCookieName)
}

// cookieValue returns the value of the named cookie or "".
func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
