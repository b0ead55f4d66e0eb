package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/chronos/internal/config"
	"github.com/MKhiriev/chronos/internal/logger"
	"github.com/MKhiriev/chronos/internal/utils"
)

// relayMessage is the JSON body POSTed to the OTP relay.
type relayMessage struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Code    string `json:"code"`
	Text    string `json:"text"`
}

const relaySubject = "Your CHRONOS sign-in code"

type httpOTPRelay struct {
	client *utils.HTTPClient
	path   string
	token  string

	logger *logger.Logger
}

// NewHTTPOTPRelay constructs an [OTPDeliverer] that POSTs codes to
// adapterCfg.OTPRelayURL with the configured bearer token and request timeout.
//
// Returns an error if the relay URL is empty or cannot be parsed.
func NewHTTPOTPRelay(adapterCfg config.Adapter, logger *logger.Logger) (OTPDeliverer, error) {
	baseURL, path, err := splitRelayURL(adapterCfg.OTPRelayURL)
	if err != nil {
		return nil, fmt.Errorf("invalid otp relay url: %w", err)
	}

	return &httpOTPRelay{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		path:   path,
		token:  strings.TrimSpace(adapterCfg.OTPRelayToken),
		logger: logger,
	}, nil
}

// NewOTPDeliverer picks the relay when one is configured and falls back to
// the log-only deliverer otherwise.
func NewOTPDeliverer(adapterCfg config.Adapter, logger *logger.Logger) (OTPDeliverer, error) {
	if strings.TrimSpace(adapterCfg.OTPRelayURL) == "" {
		logger.Info().Msg("otp relay is not configured, codes are written to the log")
		return NewLogOTPDeliverer(logger), nil
	}

	return NewHTTPOTPRelay(adapterCfg, logger)
}

// splitRelayURL normalises raw and splits it into the scheme://host part used
// as resty's base URL and the request path.
func splitRelayURL(raw string) (string, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", ErrEmptyRelayAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("address must include host and scheme")
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}

	return u.Scheme + "://" + u.Host, path, nil
}

// Deliver implements [OTPDeliverer]. It POSTs a [relayMessage] to the relay
// and maps non-2xx responses to the relay errors of this package.
func (h *httpOTPRelay) Deliver(ctx context.Context, email, code string) error {
	req := h.client.R().
		SetContext(ctx).
		SetBody(relayMessage{
			Email:   email,
			Subject: relaySubject,
			Code:    code,
			Text:    fmt.Sprintf("Your one-time sign-in code is %s. It expires in a few minutes.", code),
		})
	if h.token != "" {
		req.SetAuthToken(h.token)
	}

	resp, err := req.Post(h.path)
	if err != nil {
		return fmt.Errorf("otp relay request: %w", err)
	}
	if err = mapRelayResponse(resp); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*httpOTPRelay.Deliver").
		Str("email", email).
		Int("status", resp.StatusCode()).
		Msg("otp handed to relay")
	return nil
}
