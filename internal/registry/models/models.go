// Package models holds read-side shapes returned by the registry ledger and
// service. The write-side aggregate lives in domain/credential.
package models

import (
	registrycontract "attestry/contracts/registry"
	"attestry/pkg/domain"
)

// Record is an immutable snapshot of one credential record.
type Record struct {
	ID       domain.CredentialID
	DataHash domain.DataHash
	Owner    domain.Address
	Issuer   domain.Address
	Valid    bool
}

// Fact converts the snapshot to the stable cross-service DTO.
func (r Record) Fact() registrycontract.CredentialFact {
	fact := registrycontract.CredentialFact{
		CredentialID: r.ID.String(),
		DataHash:     r.DataHash.String(),
		Owner:        r.Owner.String(),
		Valid:        r.Valid,
	}
	if !r.Issuer.IsZero() {
		fact.Issuer = r.Issuer.String()
	}
	return fact
}

// VerifiedSet carries the parallel sequences for a user's currently valid
// credentials, in submission order. The three slices always have equal length.
type VerifiedSet struct {
	IDs     []domain.CredentialID
	Hashes  []domain.DataHash
	Issuers []domain.Address
}
