// Package tokens binds caller addresses to bearer tokens.
//
// The registry requires every state-changing call to be attributable to a
// tamper-proof caller identity. Outside a chain runtime that guarantee comes
// from signed tokens: the glue layer authenticates a wallet however it likes,
// then presents a token whose subject is the caller's address. The registry
// trusts the signature, nothing else.
package tokens

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
)

// Claims are the JWT claims for registry access tokens. The subject carries
// the caller address.
type Claims struct {
	jwt.RegisteredClaims
}

// Service issues and validates caller tokens.
type Service struct {
	signingKey []byte
	issuer     string
	audience   string
	tokenTTL   time.Duration
	clock      func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithClock overrides the time source. Used in tests for expiry checks.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService creates a token service signing with the given key.
func NewService(signingKey, issuer, audience string, tokenTTL time.Duration, opts ...Option) *Service {
	s := &Service{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
		tokenTTL:   tokenTTL,
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate mints a signed token for the given caller address.
func (s *Service) Generate(caller domain.Address) (string, error) {
	if caller.IsZero() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "caller address is required")
	}

	now := s.clock()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.String(),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not sign token")
	}
	return signed, nil
}

// ValidateToken verifies the signature and standard claims, returning the
// caller address bound by the subject.
func (s *Service) ValidateToken(tokenString string) (domain.Address, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "unexpected signing method")
		}
		return s.signingKey, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock),
	)
	if err != nil {
		return domain.Address{}, dErrors.Wrap(err, dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Address{}, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}

	caller, parseErr := domain.ParseAddress(claims.Subject)
	if parseErr != nil {
		return domain.Address{}, dErrors.New(dErrors.CodeUnauthorized, "token subject is not an address")
	}
	if caller.IsZero() {
		return domain.Address{}, dErrors.New(dErrors.CodeUnauthorized, "token subject is the zero address")
	}
	return caller, nil
}
