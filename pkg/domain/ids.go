// Package domain provides type-safe identifiers to prevent mixing up
// addresses, credential ids, and hashes at compile time.
package domain

import (
	"encoding/hex"
	"strings"

	dErrors "attestry/pkg/domain-errors"
)

// Address is a 20-byte account identifier rendered as 0x-prefixed hex.
// Every state-changing call is attributed to one.
type Address [20]byte

// CredentialID is a 32-byte credential identifier, unique per record and
// never reused.
type CredentialID [32]byte

// DataHash is a 32-byte commitment to submitted credential content.
// The content itself is never stored.
type DataHash [32]byte

// Parse functions - use at trust boundaries (handlers, API inputs).

func ParseAddress(s string) (Address, error) {
	var a Address
	b, err := parseHex(s, len(a), "address")
	if err != nil {
		return Address{}, err
	}
	copy(a[:], b)
	return a, nil
}

func ParseCredentialID(s string) (CredentialID, error) {
	var id CredentialID
	b, err := parseHex(s, len(id), "credential ID")
	if err != nil {
		return CredentialID{}, err
	}
	copy(id[:], b)
	return id, nil
}

func ParseDataHash(s string) (DataHash, error) {
	var h DataHash
	b, err := parseHex(s, len(h), "data hash")
	if err != nil {
		return DataHash{}, err
	}
	copy(h[:], b)
	return h, nil
}

// String methods - for logging, JSON, and debugging.

func (a Address) String() string       { return encodeHex(a[:]) }
func (id CredentialID) String() string { return encodeHex(id[:]) }
func (h DataHash) String() string      { return encodeHex(h[:]) }

// IsZero checks - used for service-layer validation. A zero Address doubles
// as the "issuer unset" sentinel on unverified records.

func (a Address) IsZero() bool       { return a == Address{} }
func (id CredentialID) IsZero() bool { return id == CredentialID{} }
func (h DataHash) IsZero() bool      { return h == DataHash{} }

func (a Address) MarshalText() ([]byte, error)       { return []byte(a.String()), nil }
func (id CredentialID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (h DataHash) MarshalText() ([]byte, error)      { return []byte(h.String()), nil }

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (id *CredentialID) UnmarshalText(text []byte) error {
	parsed, err := ParseCredentialID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (h *DataHash) UnmarshalText(text []byte) error {
	parsed, err := ParseDataHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// parseHex is the shared validation logic. Accepts an optional 0x prefix and
// either hex case; rejects anything that is not exactly byteLen bytes.
// Note: zero values are allowed here. Use IsZero() at the service layer for
// business validation, which lets ledger lookups return proper "not found"
// errors for consistency.
func parseHex(s string, byteLen int, label string) ([]byte, error) {
	if s == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(trimmed)
	if err != nil || len(b) != byteLen {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	return b, nil
}

func encodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
