package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"attestry/internal/clientinfo"
	"attestry/internal/platform/middleware"
	"attestry/internal/registry/events"
	"attestry/internal/registry/models"
	"attestry/internal/transport/http/json"
	"attestry/internal/transport/http/shared"
	"attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
)

// Service defines the interface for registry operations.
// Returns domain objects, not HTTP response DTOs. The acting caller travels
// in the context, placed there by the auth middleware.
type Service interface {
	RegisterIssuer(ctx context.Context, issuer domain.Address) error
	RemoveIssuer(ctx context.Context, issuer domain.Address) error
	TransferOwnership(ctx context.Context, newOwner domain.Address) error
	AddCredential(ctx context.Context, credentialData string, client *events.ClientInfo) (models.Record, error)
	VerifyCredential(ctx context.Context, user domain.Address, id domain.CredentialID) error
	RevokeCredential(ctx context.Context, id domain.CredentialID) error
	IsCredentialValid(ctx context.Context, id domain.CredentialID) bool
	GetCredential(ctx context.Context, id domain.CredentialID) (models.Record, error)
	UserCredentialIDs(ctx context.Context, user domain.Address) []domain.CredentialID
	VerifiedCredentials(ctx context.Context, user domain.Address) models.VerifiedSet
	IsRegisteredIssuer(ctx context.Context, addr domain.Address) bool
	Owner(ctx context.Context) domain.Address
	ListEvents(ctx context.Context, addr *domain.Address) []events.Event
}

type Handler struct {
	service Service
	clients *clientinfo.Service
	logger  *slog.Logger
}

func New(service Service, clients *clientinfo.Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, clients: clients, logger: logger}
}

// RegisterPublic mounts the unauthenticated read surface.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/issuers/{address}", h.HandleGetIssuerStatus)
	r.Get("/owner", h.HandleGetOwner)
	r.Get("/credentials/{id}", h.HandleGetCredential)
	r.Get("/credentials/{id}/valid", h.HandleGetValidity)
	r.Get("/users/{address}/credentials", h.HandleListUserCredentials)
	r.Get("/users/{address}/credentials/verified", h.HandleListVerifiedCredentials)
	r.Get("/events", h.HandleListEvents)
}

// RegisterProtected mounts the mutation surface. The caller must wrap the
// router with auth middleware so the acting address is in the context.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Post("/issuers", h.HandleRegisterIssuer)
	r.Delete("/issuers/{address}", h.HandleRemoveIssuer)
	r.Post("/owner/transfer", h.HandleTransferOwnership)
	r.Post("/credentials", h.HandleAddCredential)
	r.Post("/credentials/{id}/verify", h.HandleVerifyCredential)
	r.Post("/credentials/{id}/revoke", h.HandleRevokeCredential)
}

// HandleRegisterIssuer registers an issuer address. Owner only.
func (h *Handler) HandleRegisterIssuer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := shared.DecodeAndPrepare[RegisterIssuerRequest](w, r, h.logger)
	if !ok {
		return
	}

	issuer, err := domain.ParseAddress(req.Address)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid issuer address"))
		return
	}

	if err := h.service.RegisterIssuer(ctx, issuer); err != nil {
		h.logger.ErrorContext(ctx, "register issuer failed", "error", err, "request_id", requestID)
		shared.WriteError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusCreated, &IssuerStatusResponse{
		Address:    issuer.String(),
		Registered: true,
	})
}

// HandleRemoveIssuer unmarks an issuer address. Owner only.
func (h *Handler) HandleRemoveIssuer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	issuer, err := domain.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid issuer address"))
		return
	}

	if err := h.service.RemoveIssuer(ctx, issuer); err != nil {
		h.logger.ErrorContext(ctx, "remove issuer failed", "error", err, "request_id", requestID)
		shared.WriteError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, &IssuerStatusResponse{
		Address:    issuer.String(),
		Registered: false,
	})
}

// HandleGetIssuerStatus reports whether an address is a registered issuer.
func (h *Handler) HandleGetIssuerStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	addr, err := domain.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid address"))
		return
	}

	json.WriteJSON(w, http.StatusOK, &IssuerStatusResponse{
		Address:    addr.String(),
		Registered: h.service.IsRegisteredIssuer(ctx, addr),
	})
}

// HandleTransferOwnership hands registry administration to a new owner.
func (h *Handler) HandleTransferOwnership(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := shared.DecodeAndPrepare[TransferOwnershipRequest](w, r, h.logger)
	if !ok {
		return
	}

	newOwner, err := domain.ParseAddress(req.Address)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid owner address"))
		return
	}

	if err := h.service.TransferOwnership(ctx, newOwner); err != nil {
		h.logger.ErrorContext(ctx, "transfer ownership failed", "error", err, "request_id", requestID)
		shared.WriteError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, &OwnerResponse{Owner: newOwner.String()})
}

// HandleGetOwner returns the current registry owner.
func (h *Handler) HandleGetOwner(w http.ResponseWriter, r *http.Request) {
	json.WriteJSON(w, http.StatusOK, &OwnerResponse{
		Owner: h.service.Owner(r.Context()).String(),
	})
}

// HandleAddCredential submits a credential for the authenticated caller.
func (h *Handler) HandleAddCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	req, ok := shared.DecodeAndPrepare[AddCredentialRequest](w, r, h.logger)
	if !ok {
		return
	}

	client := h.clients.FromUserAgent(r.UserAgent())
	rec, err := h.service.AddCredential(ctx, req.CredentialData, client)
	if err != nil {
		h.logger.ErrorContext(ctx, "add credential failed", "error", err, "request_id", requestID)
		shared.WriteError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusCreated, toCredentialResponse(rec))
}

// HandleVerifyCredential marks a credential verified by the calling issuer.
func (h *Handler) HandleVerifyCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	id, err := domain.ParseCredentialID(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid credential id"))
		return
	}

	req, ok := shared.DecodeAndPrepare[VerifyCredentialRequest](w, r, h.logger)
	if !ok {
		return
	}

	user, err := domain.ParseAddress(req.User)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid user address"))
		return
	}

	if err := h.service.VerifyCredential(ctx, user, id); err != nil {
		h.logger.ErrorContext(ctx, "verify credential failed", "error", err, "request_id", requestID, "credential_id", id.String())
		shared.WriteError(w, err)
		return
	}

	rec, err := h.service.GetCredential(ctx, id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	json.WriteJSON(w, http.StatusOK, toCredentialResponse(rec))
}

// HandleRevokeCredential revokes a verified credential. Only the issuer that
// performed the verification may revoke it.
func (h *Handler) HandleRevokeCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	id, err := domain.ParseCredentialID(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid credential id"))
		return
	}

	if err := h.service.RevokeCredential(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "revoke credential failed", "error", err, "request_id", requestID, "credential_id", id.String())
		shared.WriteError(w, err)
		return
	}

	rec, err := h.service.GetCredential(ctx, id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	json.WriteJSON(w, http.StatusOK, toCredentialResponse(rec))
}

// HandleGetCredential returns a stored credential record, 404 when unknown.
func (h *Handler) HandleGetCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParseCredentialID(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid credential id"))
		return
	}

	rec, err := h.service.GetCredential(ctx, id)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	json.WriteJSON(w, http.StatusOK, toCredentialResponse(rec))
}

// HandleGetValidity reports validity. Unknown ids answer false, never 404.
func (h *Handler) HandleGetValidity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := domain.ParseCredentialID(chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid credential id"))
		return
	}

	json.WriteJSON(w, http.StatusOK, &ValidityResponse{
		CredentialID: id.String(),
		Valid:        h.service.IsCredentialValid(ctx, id),
	})
}

// HandleListUserCredentials returns a user's credential ids in submission order.
func (h *Handler) HandleListUserCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := domain.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid user address"))
		return
	}

	ids := h.service.UserCredentialIDs(ctx, user)
	resp := &CredentialListResponse{
		User:          user.String(),
		CredentialIDs: make([]string, len(ids)),
	}
	for i, id := range ids {
		resp.CredentialIDs[i] = id.String()
	}
	json.WriteJSON(w, http.StatusOK, resp)
}

// HandleListVerifiedCredentials returns the parallel arrays of a user's
// currently valid credentials.
func (h *Handler) HandleListVerifiedCredentials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := domain.ParseAddress(chi.URLParam(r, "address"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid user address"))
		return
	}

	set := h.service.VerifiedCredentials(ctx, user)
	json.WriteJSON(w, http.StatusOK, toVerifiedCredentialsResponse(user.String(), set))
}

// HandleListEvents returns the audit tail, optionally filtered by address.
func (h *Handler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var filter *domain.Address
	if raw := r.URL.Query().Get("user"); raw != "" {
		addr, err := domain.ParseAddress(raw)
		if err != nil {
			shared.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid user address"))
			return
		}
		filter = &addr
	}

	trail := h.service.ListEvents(ctx, filter)
	json.WriteJSON(w, http.StatusOK, map[string]any{"events": trail})
}
