package registry

// Package registry hosts the stable, minimal DTOs shared with consumers of
// the credential registry's event trail. Keep these free of internal types
// and versioned independently from the ledger's own models.

// ContractVersion identifies the contract schema version for compatibility checks.
// Bump on breaking changes to the shapes below; consumers can pin or roll forward.
const ContractVersion = "v0.1.0"

// EventKind identifies a registry event on the audit trail.
type EventKind string

const (
	EventIssuerRegistered     EventKind = "issuer_registered"
	EventIssuerRemoved        EventKind = "issuer_removed"
	EventOwnershipTransferred EventKind = "ownership_transferred"
	EventCredentialAdded      EventKind = "credential_added"
	EventCredentialVerified   EventKind = "credential_verified"
	EventCredentialRevoked    EventKind = "credential_revoked"
)

// CredentialFact is the minimal externally shared view of a credential record.
// The issuer field is empty until the credential has been verified and is
// retained after revocation for audit purposes.
type CredentialFact struct {
	CredentialID string `json:"credential_id"`
	DataHash     string `json:"data_hash"`
	Owner        string `json:"owner"`
	Issuer       string `json:"issuer,omitempty"`
	Valid        bool   `json:"valid"`
}
