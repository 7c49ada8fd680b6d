package domain

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// HashCredentialData commits to submitted credential content with keccak-256.
// Only the hash goes into the ledger; the content stays with the caller.
func HashCredentialData(credentialData string) DataHash {
	var h DataHash
	k := sha3.NewLegacyKeccak256()
	k.Write([]byte(credentialData))
	k.Sum(h[:0])
	return h
}

// DeriveCredentialID produces a new credential id from the submitted content,
// the submitter, and a ledger nonce. The nonce guarantees distinct ids even
// when the same owner resubmits identical content.
func DeriveCredentialID(credentialData string, owner Address, nonce uint64) CredentialID {
	var id CredentialID
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], nonce)

	k := sha3.NewLegacyKeccak256()
	k.Write([]byte(credentialData))
	k.Write(owner[:])
	k.Write(n[:])
	k.Sum(id[:0])
	return id
}
