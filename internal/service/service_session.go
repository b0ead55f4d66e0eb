package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/chronos/internal/config"
	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/store"
	"github.com/MKhiriev/chronos/internal/utils"
	"github.com/MKhiriev/chronos/models"
)

const (
	sessionKeyPurpose = "chronos session cookie v1"
	tokenKeyPurpose   = "chronos jwt signing v1"
	derivedKeyLength  = 32
)

// sessionService is the concrete implementation of SessionService.
//
// The session cookie value is base64url(json) "." hex(HMAC-SHA256(body)).
// Nothing is persisted: expiry is evaluated from LoginTime on every read.
type sessionService struct {
	allowedEmailRepository store.AllowedEmailRepository

	// sessionSecret is the HMAC key of the session cookie.
	sessionSecret string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	sessionTTL      time.Duration
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewSessionService constructs a SessionService from cfg. Session and token
// keys fall back to HKDF derivations of the service-role key when they are
// not configured explicitly.
func NewSessionService(allowedEmailRepository store.AllowedEmailRepository, cfg config.Auth, logger *logger.Logger) (SessionService, error) {
	sessionSecret, err := resolveKey(cfg.SessionSecret, cfg.ServiceRoleKey, sessionKeyPurpose)
	if err != nil {
		return nil, fmt.Errorf("error resolving session secret: %w", err)
	}

	tokenSignKey, err := resolveKey(cfg.TokenSignKey, cfg.ServiceRoleKey, tokenKeyPurpose)
	if err != nil {
		return nil, fmt.Errorf("error resolving token sign key: %w", err)
	}

	return &sessionService{
		allowedEmailRepository: allowedEmailRepository,
		sessionSecret:          sessionSecret,
		tokenSignKey:           tokenSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		sessionTTL:             cfg.SessionTTL,
		accessTokenTTL:         cfg.AccessTokenTTL,
		refreshTokenTTL:        cfg.RefreshTokenTTL,
		now:                    time.Now,
		logger:                 logger,
	}, nil
}

func resolveKey(explicit, secret, purpose string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	return utils.DeriveKey(secret, purpose, derivedKeyLength)
}

// Issue encodes session into the session cookie value and signs a fresh
// access and refresh token for its email. Both tokens carry the session's
// LoginTime and the access token never outlives the session.
func (s *sessionService) Issue(ctx context.Context, session models.Session) (models.SessionCookies, error) {
	if session.Email == "" || !session.Authenticated || session.LoginTime.IsZero() {
		return models.SessionCookies{}, ErrSessionInvalid
	}

	accessTTL, err := s.accessLifetime(session.LoginTime)
	if err != nil {
		return models.SessionCookies{}, err
	}

	value, err := s.encode(session)
	if err != nil {
		return models.SessionCookies{}, err
	}

	access, err := utils.GenerateJWTToken(s.tokenIssuer, session.Email, models.AccessToken, session.LoginTime, accessTTL, s.tokenSignKey)
	if err != nil {
		return models.SessionCookies{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(s.tokenIssuer, session.Email, models.RefreshToken, session.LoginTime, s.refreshTokenTTL, s.tokenSignKey)
	if err != nil {
		return models.SessionCookies{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	logger.FromContext(ctx).Debug().Str("email", session.Email).Msg("session issued")

	return models.SessionCookies{
		Session:               value,
		SessionExpiresAt:      session.LoginTime.Add(s.sessionTTL),
		AccessToken:           access.SignedString,
		AccessTokenExpiresAt:  access.ExpiresAt,
		RefreshToken:          refresh.SignedString,
		RefreshTokenExpiresAt: refresh.ExpiresAt,
	}, nil
}

// accessLifetime is the access token TTL cut down to what is left of the
// session that started at loginTime.
func (s *sessionService) accessLifetime(loginTime time.Time) (time.Duration, error) {
	remaining := loginTime.Add(s.sessionTTL).Sub(s.now())
	if remaining <= 0 {
		return 0, ErrSessionExpired
	}
	return min(s.accessTokenTTL, remaining), nil
}

// Read verifies and decodes a session cookie value.
//
// Returns ErrSessionInvalid for tampered or malformed values and
// ErrSessionExpired once the session is older than the session TTL.
func (s *sessionService) Read(ctx context.Context, value string) (models.Session, error) {
	body, mac, ok := strings.Cut(value, ".")
	if !ok || body == "" || !utils.VerifyHashString(body, mac, s.sessionSecret) {
		return models.Session{}, ErrSessionInvalid
	}

	payload, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return models.Session{}, ErrSessionInvalid
	}

	var session models.Session
	if err = json.Unmarshal(payload, &session); err != nil {
		return models.Session{}, ErrSessionInvalid
	}

	if !session.Authenticated || session.Email == "" || session.LoginTime.IsZero() {
		return models.Session{}, ErrSessionInvalid
	}

	if session.IsExpired(s.now(), s.sessionTTL) {
		logger.FromContext(ctx).Debug().Str("email", session.Email).Msg("session expired")
		return models.Session{}, ErrSessionExpired
	}

	return session, nil
}

// Refresh validates a refresh token, re-checks that its email is still on
// the allowlist and signs a new access token for the same session.
//
// Only the access token fields of the result are set: the session cookie and
// the refresh token stay as they are, so the session still ends sessionTTL
// after the original sign-in.
func (s *sessionService) Refresh(ctx context.Context, refreshToken string) (models.SessionCookies, error) {
	token, err := utils.ValidateAndParseJWTToken(refreshToken, s.tokenSignKey, s.tokenIssuer, models.RefreshToken)
	if err != nil {
		return models.SessionCookies{}, tokenError(err)
	}

	accessTTL, err := s.accessLifetime(token.LoginTime)
	if err != nil {
		logger.FromContext(ctx).Debug().Str("email", token.Email).Msg("refresh after session end")
		return models.SessionCookies{}, err
	}

	allowed, err := s.allowedEmailRepository.IsAllowed(ctx, token.Email)
	if err != nil {
		return models.SessionCookies{}, fmt.Errorf("allowlist lookup failed: %w", err)
	}
	if !allowed {
		logger.FromContext(ctx).Info().Str("email", token.Email).Msg("refresh for email removed from allowlist")
		return models.SessionCookies{}, ErrNotAuthorized
	}

	access, err := utils.GenerateJWTToken(s.tokenIssuer, token.Email, models.AccessToken, token.LoginTime, accessTTL, s.tokenSignKey)
	if err != nil {
		return models.SessionCookies{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.SessionCookies{
		AccessToken:          access.SignedString,
		AccessTokenExpiresAt: access.ExpiresAt,
	}, nil
}

// ParseAccessToken authenticates an API request carrying an access token.
// The returned session's LoginTime is the sign-in time the token carries.
func (s *sessionService) ParseAccessToken(ctx context.Context, accessToken string) (models.Session, error) {
	token, err := utils.ValidateAndParseJWTToken(accessToken, s.tokenSignKey, s.tokenIssuer, models.AccessToken)
	if err != nil {
		return models.Session{}, tokenError(err)
	}

	session := models.Session{Email: token.Email, Authenticated: true, LoginTime: token.LoginTime}
	if session.IsExpired(s.now(), s.sessionTTL) {
		return models.Session{}, ErrSessionExpired
	}

	return session, nil
}

func (s *sessionService) encode(session models.Session) (string, error) {
	payload, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("error encoding session: %w", err)
	}

	body := base64.RawURLEncoding.EncodeToString(payload)
	return body + "." + utils.HashString(body, s.sessionSecret), nil
}

// tokenError normalises JWT validation failures.
func tokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrSessionExpired
	}
	return ErrSessionInvalid
}
