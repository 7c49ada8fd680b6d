package config

import (
	"os"
	"strconv"
	"time"

	"attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
)

// Server captures process-level configuration for the registry service.
type Server struct {
	Addr string
	// OwnerAddress is the deployment-time registry owner. Issuer management
	// is only accepted from this address (until ownership is transferred).
	OwnerAddress  domain.Address
	JWTSigningKey string
	TokenTTL      time.Duration
	// EventBuffer is the per-subscriber event channel size.
	EventBuffer int
	// ClientInfoEnabled controls whether submission events carry user-agent
	// derived client metadata.
	ClientInfoEnabled bool
	Environment       string
}

const (
	defaultAddr        = ":8080"
	defaultTokenTTL    = 15 * time.Minute
	defaultEventBuffer = 256
)

// FromEnv builds a Server config from environment variables so main stays lean.
// The owner address has no usable default; a missing or malformed value is a
// startup error, not something to paper over. Optional variables that are set
// but malformed fail the same way rather than silently falling back to the
// default.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:              defaultAddr,
		TokenTTL:          defaultTokenTTL,
		EventBuffer:       defaultEventBuffer,
		ClientInfoEnabled: os.Getenv("CLIENT_INFO_DISABLED") != "true",
		Environment:       os.Getenv("ATTESTRY_ENV"),
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	if addr := os.Getenv("ATTESTRY_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	ownerRaw := os.Getenv("ATTESTRY_OWNER_ADDRESS")
	if ownerRaw == "" {
		return Server{}, dErrors.New(dErrors.CodeInvalidInput, "ATTESTRY_OWNER_ADDRESS is required")
	}
	owner, err := domain.ParseAddress(ownerRaw)
	if err != nil {
		return Server{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "ATTESTRY_OWNER_ADDRESS is not a valid address")
	}
	cfg.OwnerAddress = owner

	cfg.JWTSigningKey = os.Getenv("JWT_SIGNING_KEY")
	if cfg.JWTSigningKey == "" {
		// Use a default for development - should be overridden in production
		cfg.JWTSigningKey = "dev-secret-key-change-in-production"
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		duration, err := time.ParseDuration(ttl)
		if err != nil {
			return Server{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "TOKEN_TTL is not a valid duration")
		}
		if duration <= 0 {
			return Server{}, dErrors.New(dErrors.CodeInvalidInput, "TOKEN_TTL must be positive")
		}
		cfg.TokenTTL = duration
	}

	if buf := os.Getenv("EVENT_BUFFER"); buf != "" {
		n, err := strconv.Atoi(buf)
		if err != nil {
			return Server{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "EVENT_BUFFER is not a number")
		}
		if n <= 0 {
			return Server{}, dErrors.New(dErrors.CodeInvalidInput, "EVENT_BUFFER must be positive")
		}
		cfg.EventBuffer = n
	}

	return cfg, nil
}
