// Package credential defines the credential aggregate at the heart of the
// registry ledger.
//
// The aggregate protects the record lifecycle:
//
//	unverified --[Verify, by a registered issuer]--> verified --[Revoke, by the verifying issuer]--> revoked
//
// There is no path back: a revoked record can never be re-verified, and a
// verified record keeps its issuer forever, including after revocation.
//
// Domain purity: this package contains only pure domain logic with no I/O,
// no context.Context, and no time.Now() calls. Authorization that depends on
// ledger state (issuer registration, ownership of the issuer set) lives in
// the ledger; the aggregate enforces only per-record rules.
package credential

import (
	"attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
)

// Credential is the aggregate root for one credential record.
//
// Invariants:
//   - ID and Owner are set at creation and never change
//   - Issuer is set exactly once, on verification, and never cleared
//   - Valid is true iff the record has been verified and not revoked
type Credential struct {
	id       domain.CredentialID
	dataHash domain.DataHash
	owner    domain.Address
	issuer   domain.Address
	valid    bool
}

// New creates an unverified credential record. This is the only way to
// construct a valid Credential.
func New(id domain.CredentialID, dataHash domain.DataHash, owner domain.Address) (*Credential, error) {
	if id.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "credential id is required")
	}
	if dataHash.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "data hash is required")
	}
	if owner.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "owner is required")
	}
	return &Credential{
		id:       id,
		dataHash: dataHash,
		owner:    owner,
	}, nil
}

// ID returns the credential id.
func (c *Credential) ID() domain.CredentialID { return c.id }

// DataHash returns the commitment to the submitted content.
func (c *Credential) DataHash() domain.DataHash { return c.dataHash }

// Owner returns the submitting user's address.
func (c *Credential) Owner() domain.Address { return c.owner }

// Issuer returns the verifying issuer, or the zero address while unverified.
func (c *Credential) Issuer() domain.Address { return c.issuer }

// Valid reports whether the record is verified and not revoked.
func (c *Credential) Valid() bool { return c.valid }

// Verified reports whether a verification ever happened, revoked or not.
func (c *Credential) Verified() bool { return !c.issuer.IsZero() }

// Verify transitions the record from unverified to verified, binding the
// issuer permanently. The caller must already have been authorized as a
// registered issuer by the ledger.
func (c *Credential) Verify(issuer domain.Address) error {
	if issuer.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "issuer is required")
	}
	if c.Verified() {
		if c.valid {
			return dErrors.New(dErrors.CodeInvalidState, "credential already verified")
		}
		return dErrors.New(dErrors.CodeInvalidState, "credential has been revoked")
	}
	c.issuer = issuer
	c.valid = true
	return nil
}

// Revoke marks a verified record invalid while preserving the issuer for
// audit. Only the issuer stored at verification time may revoke; the contract
// owner has no override.
func (c *Credential) Revoke(caller domain.Address) error {
	if !c.valid {
		return dErrors.New(dErrors.CodeInvalidState, "credential is not currently valid")
	}
	if caller != c.issuer {
		return dErrors.New(dErrors.CodeUnauthorized, "only the verifying issuer can revoke")
	}
	c.valid = false
	return nil
}
