// Package events provides the registry's append-only event log.
//
// Events are the durable notification channel for the registry: every state
// change appends exactly one event, inside the same serialized transaction
// that performs the change. External systems tail the log (or subscribe)
// rather than relying on call return values alone.
package events

import (
	"time"

	registrycontract "attestry/contracts/registry"
	"attestry/pkg/domain"
)

// ClientInfo captures non-identifying metadata about the client that
// performed a submission. Used only on credential_added events.
type ClientInfo struct {
	Browser     string `json:"browser,omitempty"`
	OS          string `json:"os,omitempty"`
	Platform    string `json:"platform,omitempty"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// Event is one entry on the audit trail. Sequence numbers are assigned by the
// log at append time and are strictly increasing with no gaps.
type Event struct {
	Sequence     uint64                     `json:"sequence"`
	Kind         registrycontract.EventKind `json:"kind"`
	Timestamp    time.Time                  `json:"timestamp"`
	CredentialID domain.CredentialID        `json:"credential_id,omitzero"`
	User         domain.Address             `json:"user,omitzero"`
	Issuer       domain.Address             `json:"issuer,omitzero"`
	Client       *ClientInfo                `json:"client,omitempty"`
}

// Concerns reports whether the event references the given address as either
// the affected user or the acting issuer.
func (e Event) Concerns(addr domain.Address) bool {
	return e.User == addr || e.Issuer == addr
}
