package handler

import (
	"strings"

	dErrors "attestry/pkg/domain-errors"
)

// HTTP request DTOs. Addresses arrive as 0x-prefixed hex strings and are
// parsed into domain types at the handler boundary.

type RegisterIssuerRequest struct {
	Address string `json:"address"`
}

func (r *RegisterIssuerRequest) Normalize() {
	if r == nil {
		return
	}
	r.Address = strings.TrimSpace(r.Address)
}

func (r *RegisterIssuerRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "request is required")
	}
	if r.Address == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "address is required")
	}
	return nil
}

type TransferOwnershipRequest struct {
	Address string `json:"address"`
}

func (r *TransferOwnershipRequest) Normalize() {
	if r == nil {
		return
	}
	r.Address = strings.TrimSpace(r.Address)
}

func (r *TransferOwnershipRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "request is required")
	}
	if r.Address == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "address is required")
	}
	return nil
}

type AddCredentialRequest struct {
	CredentialData string `json:"credential_data"`
}

func (r *AddCredentialRequest) Normalize() {
	if r == nil {
		return
	}
	r.CredentialData = strings.TrimSpace(r.CredentialData)
}

func (r *AddCredentialRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "request is required")
	}
	if r.CredentialData == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "credential_data is required")
	}
	return nil
}

type VerifyCredentialRequest struct {
	User string `json:"user"`
}

func (r *VerifyCredentialRequest) Normalize() {
	if r == nil {
		return
	}
	r.User = strings.TrimSpace(r.User)
}

func (r *VerifyCredentialRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeInvalidInput, "request is required")
	}
	if r.User == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "user is required")
	}
	return nil
}
