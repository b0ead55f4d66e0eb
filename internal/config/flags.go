package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-site-url public origin of the web UI
//	-environment development or production
//	-session-secret session cookie HMAC key
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-otp-ttl OTP lifetime (e.g., "10m")
//	-session-ttl session lifetime (e.g., "8h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-redis redis address host:port for rate limiting
//	-otp-relay-url OTP relay endpoint
//	-migrate apply migrations at startup
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("chronos", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var siteURL string
	var environment string
	var sessionSecret string
	var tokenSignKey string
	var tokenIssuer string
	var otpTTL time.Duration
	var sessionTTL time.Duration
	var requestTimeout time.Duration
	var redisAddress string
	var otpRelayURL string
	var autoMigrate bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&siteURL, "site-url", "", "Public origin of the web UI")
	fs.StringVar(&environment, "environment", "", "Environment: development or production")
	fs.StringVar(&sessionSecret, "session-secret", "", "Session cookie HMAC key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&otpTTL, "otp-ttl", 0, "OTP lifetime (e.g., 10m)")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 8h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&redisAddress, "redis", "", "Redis address for rate limiting")
	fs.StringVar(&otpRelayURL, "otp-relay-url", "", "OTP relay endpoint")
	fs.BoolVar(&autoMigrate, "migrate", false, "Apply database migrations at startup")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
			SiteURL:     siteURL,
		},
		Auth: Auth{
			SessionSecret: sessionSecret,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			OTPTTL:        otpTTL,
			SessionTTL:    sessionTTL,
		},
		Storage: Storage{
			DB: DB{
				DSN:         databaseDSN,
				AutoMigrate: autoMigrate,
			},
			Redis: Redis{
				Address: redisAddress,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			OTPRelayURL: otpRelayURL,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
