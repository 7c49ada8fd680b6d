package handler

import (
	registrycontract "attestry/contracts/registry"
	"attestry/internal/registry/models"
)

type CredentialResponse struct {
	Credential registrycontract.CredentialFact `json:"credential"`
}

type IssuerStatusResponse struct {
	Address    string `json:"address"`
	Registered bool   `json:"registered"`
}

type OwnerResponse struct {
	Owner string `json:"owner"`
}

type ValidityResponse struct {
	CredentialID string `json:"credential_id"`
	Valid        bool   `json:"valid"`
}

type CredentialListResponse struct {
	User          string   `json:"user"`
	CredentialIDs []string `json:"credential_ids"`
}

// VerifiedCredentialsResponse mirrors the ledger's parallel read model: entry
// i of each slice describes the same credential.
type VerifiedCredentialsResponse struct {
	User          string   `json:"user"`
	CredentialIDs []string `json:"credential_ids"`
	DataHashes    []string `json:"data_hashes"`
	Issuers       []string `json:"issuers"`
}

// Response mapping functions - convert domain objects to HTTP DTOs

func toCredentialResponse(rec models.Record) *CredentialResponse {
	return &CredentialResponse{Credential: rec.Fact()}
}

func toVerifiedCredentialsResponse(user string, set models.VerifiedSet) *VerifiedCredentialsResponse {
	resp := &VerifiedCredentialsResponse{
		User:          user,
		CredentialIDs: make([]string, len(set.IDs)),
		DataHashes:    make([]string, len(set.Hashes)),
		Issuers:       make([]string, len(set.Issuers)),
	}
	for i := range set.IDs {
		resp.CredentialIDs[i] = set.IDs[i].String()
		resp.DataHashes[i] = set.Hashes[i].String()
		resp.Issuers[i] = set.Issuers[i].String()
	}
	return resp
}
