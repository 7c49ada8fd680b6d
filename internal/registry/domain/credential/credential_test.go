package credential

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
)

// CredentialSuite tests the aggregate's lifecycle rules in isolation.
//
// Justification: the state machine is the registry's core invariant surface.
// Ledger tests cover it end to end; these tests pin the per-record rules
// without any ledger context.
type CredentialSuite struct {
	suite.Suite
	id     domain.CredentialID
	hash   domain.DataHash
	owner  domain.Address
	issuer domain.Address
	other  domain.Address
}

func TestCredentialSuite(t *testing.T) {
	suite.Run(t, new(CredentialSuite))
}

func (s *CredentialSuite) SetupTest() {
	s.owner = mustAddress(s.T(), "0x1111111111111111111111111111111111111111")
	s.issuer = mustAddress(s.T(), "0x2222222222222222222222222222222222222222")
	s.other = mustAddress(s.T(), "0x3333333333333333333333333333333333333333")
	s.hash = domain.HashCredentialData("BSc CS, XYZ University, 2022")
	s.id = domain.DeriveCredentialID("BSc CS, XYZ University, 2022", s.owner, 1)
}

func mustAddress(t *testing.T, raw string) domain.Address {
	t.Helper()
	addr, err := domain.ParseAddress(raw)
	if err != nil {
		t.Fatalf("parse address %s: %v", raw, err)
	}
	return addr
}

func (s *CredentialSuite) newCredential() *Credential {
	c, err := New(s.id, s.hash, s.owner)
	s.Require().NoError(err)
	return c
}

func (s *CredentialSuite) TestNew() {
	s.Run("creates unverified record", func() {
		c := s.newCredential()
		s.Equal(s.id, c.ID())
		s.Equal(s.hash, c.DataHash())
		s.Equal(s.owner, c.Owner())
		s.True(c.Issuer().IsZero())
		s.False(c.Valid())
		s.False(c.Verified())
	})

	s.Run("rejects zero id", func() {
		_, err := New(domain.CredentialID{}, s.hash, s.owner)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("rejects zero data hash", func() {
		_, err := New(s.id, domain.DataHash{}, s.owner)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("rejects zero owner", func() {
		_, err := New(s.id, s.hash, domain.Address{})
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func (s *CredentialSuite) TestVerify() {
	s.Run("binds issuer and marks valid", func() {
		c := s.newCredential()
		s.Require().NoError(c.Verify(s.issuer))
		s.True(c.Valid())
		s.Equal(s.issuer, c.Issuer())
	})

	s.Run("second verify fails with invalid_state and changes nothing", func() {
		c := s.newCredential()
		s.Require().NoError(c.Verify(s.issuer))

		err := c.Verify(s.other)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
		s.Equal(s.issuer, c.Issuer())
		s.True(c.Valid())
	})

	s.Run("verify after revoke fails with invalid_state", func() {
		c := s.newCredential()
		s.Require().NoError(c.Verify(s.issuer))
		s.Require().NoError(c.Revoke(s.issuer))

		err := c.Verify(s.issuer)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
		s.False(c.Valid())
	})

	s.Run("rejects zero issuer", func() {
		c := s.newCredential()
		err := c.Verify(domain.Address{})
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
		s.False(c.Valid())
	})
}

func (s *CredentialSuite) TestRevoke() {
	s.Run("verifying issuer revokes, issuer retained", func() {
		c := s.newCredential()
		s.Require().NoError(c.Verify(s.issuer))
		s.Require().NoError(c.Revoke(s.issuer))
		s.False(c.Valid())
		s.Equal(s.issuer, c.Issuer())
		s.True(c.Verified())
	})

	s.Run("non-issuer cannot revoke a valid record", func() {
		c := s.newCredential()
		s.Require().NoError(c.Verify(s.issuer))

		err := c.Revoke(s.other)
		s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
		s.True(c.Valid())
	})

	s.Run("revoking an unverified record fails with invalid_state", func() {
		c := s.newCredential()
		err := c.Revoke(s.issuer)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("double revoke fails with invalid_state", func() {
		c := s.newCredential()
		s.Require().NoError(c.Verify(s.issuer))
		s.Require().NoError(c.Revoke(s.issuer))

		err := c.Revoke(s.issuer)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})
}
