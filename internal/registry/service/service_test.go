package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"attestry/internal/platform/middleware"
	"attestry/internal/registry/events"
	"attestry/internal/registry/ledger"
	"attestry/internal/registry/tracer"
	"attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
)

// stubMetrics counts metric calls without prometheus registration, so suites
// can run in parallel without collector conflicts.
type stubMetrics struct {
	submitted, verified, revoked int
	issuerDelta                  int
	denied                       map[string]int
	appended                     map[string]int
}

func newStubMetrics() *stubMetrics {
	return &stubMetrics{denied: make(map[string]int), appended: make(map[string]int)}
}

func (m *stubMetrics) IncrementCredentialsSubmitted()         { m.submitted++ }
func (m *stubMetrics) IncrementCredentialsVerified()          { m.verified++ }
func (m *stubMetrics) IncrementCredentialsRevoked()           { m.revoked++ }
func (m *stubMetrics) AddRegisteredIssuers(delta int)         { m.issuerDelta += delta }
func (m *stubMetrics) IncrementAuthorizationDenied(op string) { m.denied[op]++ }
func (m *stubMetrics) IncrementEventsAppended(kind string)    { m.appended[kind]++ }

type ServiceSuite struct {
	suite.Suite
	svc     *Service
	log     *events.Log
	metrics *stubMetrics

	owner  domain.Address
	issuer domain.Address
	user   domain.Address
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.owner = s.address("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	s.issuer = s.address("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	s.user = s.address("0xcccccccccccccccccccccccccccccccccccccccc")

	s.log = events.NewLog()
	l, err := ledger.New(s.owner, s.log)
	s.Require().NoError(err)

	s.metrics = newStubMetrics()
	s.svc, err = New(l, s.log,
		WithMetrics(s.metrics),
		WithTracer(tracer.NewNoop()),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.Require().NoError(err)
}

func (s *ServiceSuite) address(raw string) domain.Address {
	addr, err := domain.ParseAddress(raw)
	s.Require().NoError(err)
	return addr
}

func (s *ServiceSuite) as(caller domain.Address) context.Context {
	return middleware.WithCaller(context.Background(), caller)
}

func (s *ServiceSuite) TestNew() {
	s.Run("rejects nil ledger", func() {
		_, err := New(nil, s.log)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func (s *ServiceSuite) TestUnauthenticatedContext() {
	ctx := context.Background()

	s.Run("mutations require a caller", func() {
		s.True(dErrors.HasCode(s.svc.RegisterIssuer(ctx, s.issuer), dErrors.CodeUnauthorized))
		_, err := s.svc.AddCredential(ctx, "data", nil)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
		s.True(dErrors.HasCode(s.svc.VerifyCredential(ctx, s.user, domain.CredentialID{}), dErrors.CodeUnauthorized))
		s.True(dErrors.HasCode(s.svc.RevokeCredential(ctx, domain.CredentialID{}), dErrors.CodeUnauthorized))
	})

	s.Run("reads do not", func() {
		s.False(s.svc.IsCredentialValid(ctx, domain.CredentialID{}))
		s.Empty(s.svc.UserCredentialIDs(ctx, s.user))
		s.Equal(s.owner, s.svc.Owner(ctx))
	})
}

func (s *ServiceSuite) TestIssuerMetrics() {
	s.Run("gauge moves only on state change", func() {
		s.Require().NoError(s.svc.RegisterIssuer(s.as(s.owner), s.issuer))
		s.Equal(1, s.metrics.issuerDelta)

		// Idempotent re-register leaves the gauge alone.
		s.Require().NoError(s.svc.RegisterIssuer(s.as(s.owner), s.issuer))
		s.Equal(1, s.metrics.issuerDelta)

		s.Require().NoError(s.svc.RemoveIssuer(s.as(s.owner), s.issuer))
		s.Equal(0, s.metrics.issuerDelta)

		// Removing an absent issuer likewise.
		s.Require().NoError(s.svc.RemoveIssuer(s.as(s.owner), s.issuer))
		s.Equal(0, s.metrics.issuerDelta)
	})

	s.Run("denied owner operations are counted", func() {
		err := s.svc.RegisterIssuer(s.as(s.user), s.issuer)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
		s.Equal(1, s.metrics.denied["register_issuer"])
	})
}

func (s *ServiceSuite) TestCredentialFlowMetrics() {
	s.Require().NoError(s.svc.RegisterIssuer(s.as(s.owner), s.issuer))

	rec, err := s.svc.AddCredential(s.as(s.user), "BSc CS, XYZ University, 2022", nil)
	s.Require().NoError(err)
	s.Equal(1, s.metrics.submitted)

	s.Require().NoError(s.svc.VerifyCredential(s.as(s.issuer), s.user, rec.ID))
	s.Equal(1, s.metrics.verified)
	s.True(s.svc.IsCredentialValid(context.Background(), rec.ID))

	s.Require().NoError(s.svc.RevokeCredential(s.as(s.issuer), rec.ID))
	s.Equal(1, s.metrics.revoked)
	s.False(s.svc.IsCredentialValid(context.Background(), rec.ID))

	got, err := s.svc.GetCredential(context.Background(), rec.ID)
	s.Require().NoError(err)
	s.Equal(s.issuer, got.Issuer)
}

func (s *ServiceSuite) TestClientInfoFlowsToEvent() {
	client := &events.ClientInfo{Browser: "chrome", OS: "mac os x", Platform: "desktop"}
	_, err := s.svc.AddCredential(s.as(s.user), "data", client)
	s.Require().NoError(err)

	trail := s.svc.ListEvents(context.Background(), nil)
	s.Require().Len(trail, 1)
	s.Require().NotNil(trail[0].Client)
	s.Equal("chrome", trail[0].Client.Browser)
}

func (s *ServiceSuite) TestListEventsFiltered() {
	other := s.address("0xdddddddddddddddddddddddddddddddddddddddd")

	_, err := s.svc.AddCredential(s.as(s.user), "one", nil)
	s.Require().NoError(err)
	_, err = s.svc.AddCredential(s.as(other), "two", nil)
	s.Require().NoError(err)

	s.Len(s.svc.ListEvents(context.Background(), nil), 2)
	s.Len(s.svc.ListEvents(context.Background(), &s.user), 1)
}

// TestEndToEnd mirrors the canonical submit -> verify -> revoke walk at the
// service boundary, including the authorization failures along the way.
func (s *ServiceSuite) TestEndToEnd() {
	ctx := context.Background()
	stranger := s.address("0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")

	s.Require().NoError(s.svc.RegisterIssuer(s.as(s.owner), s.issuer))

	rec, err := s.svc.AddCredential(s.as(s.user), "BSc CS, XYZ University, 2022", nil)
	s.Require().NoError(err)
	s.False(s.svc.IsCredentialValid(ctx, rec.ID))

	// A stranger cannot verify.
	err = s.svc.VerifyCredential(s.as(stranger), s.user, rec.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))

	s.Require().NoError(s.svc.VerifyCredential(s.as(s.issuer), s.user, rec.ID))
	s.True(s.svc.IsCredentialValid(ctx, rec.ID))

	// The owner cannot revoke someone else's verification.
	err = s.svc.RevokeCredential(s.as(s.owner), rec.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))

	s.Require().NoError(s.svc.RevokeCredential(s.as(s.issuer), rec.ID))
	s.False(s.svc.IsCredentialValid(ctx, rec.ID))

	got, err := s.svc.GetCredential(ctx, rec.ID)
	s.Require().NoError(err)
	s.Equal(s.issuer, got.Issuer)

	set := s.svc.VerifiedCredentials(ctx, s.user)
	s.Empty(set.IDs)
}
