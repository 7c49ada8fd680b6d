// Package service exposes the registry ledger as a context-aware API with
// authorization, metrics, and tracing. Handlers talk to this layer; the
// ledger below it stays free of transport and observability concerns.
package service

import (
	"context"
	"log/slog"

	registrycontract "attestry/contracts/registry"
	"attestry/internal/platform/middleware"
	"attestry/internal/registry/events"
	"attestry/internal/registry/ledger"
	"attestry/internal/registry/models"
	"attestry/internal/registry/tracer"
	"attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
)

// Metrics is the subset of platform metrics the service emits.
type Metrics interface {
	IncrementCredentialsSubmitted()
	IncrementCredentialsVerified()
	IncrementCredentialsRevoked()
	AddRegisteredIssuers(delta int)
	IncrementAuthorizationDenied(operation string)
	IncrementEventsAppended(kind string)
}

// Service wraps the ledger with caller resolution and observability.
type Service struct {
	ledger  *ledger.Ledger
	log     *events.Log
	metrics Metrics
	tracer  tracer.Tracer
	logger  *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithMetrics configures metric emission.
func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTracer configures span emission.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithLogger configures a logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New creates a registry service over the given ledger and event log.
func New(l *ledger.Ledger, log *events.Log, opts ...Option) (*Service, error) {
	if l == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "ledger is required")
	}
	if log == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "event log is required")
	}
	s := &Service{
		ledger: l,
		log:    log,
		tracer: tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// caller resolves the authenticated caller from the context.
func (s *Service) caller(ctx context.Context) (domain.Address, error) {
	caller := middleware.Caller(ctx)
	if caller.IsZero() {
		return domain.Address{}, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	return caller, nil
}

// RegisterIssuer marks the address as a registered issuer. Owner only.
func (s *Service) RegisterIssuer(ctx context.Context, issuer domain.Address) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	_, span := s.tracer.Start(ctx, tracer.SpanRegisterIssuer,
		tracer.String(tracer.AttrCaller, caller.String()),
		tracer.String(tracer.AttrIssuer, issuer.String()),
	)

	changed, err := s.ledger.RegisterIssuer(caller, issuer)
	span.End(err)
	if err != nil {
		s.denied(err, "register_issuer", caller)
		return err
	}

	if s.metrics != nil {
		if changed {
			s.metrics.AddRegisteredIssuers(1)
		}
		s.metrics.IncrementEventsAppended(string(registrycontract.EventIssuerRegistered))
	}
	s.info(ctx, "issuer registered", "issuer", issuer.String(), "caller", caller.String())
	return nil
}

// RemoveIssuer unmarks the address. Owner only.
func (s *Service) RemoveIssuer(ctx context.Context, issuer domain.Address) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	_, span := s.tracer.Start(ctx, tracer.SpanRemoveIssuer,
		tracer.String(tracer.AttrCaller, caller.String()),
		tracer.String(tracer.AttrIssuer, issuer.String()),
	)

	changed, err := s.ledger.RemoveIssuer(caller, issuer)
	span.End(err)
	if err != nil {
		s.denied(err, "remove_issuer", caller)
		return err
	}

	if s.metrics != nil {
		if changed {
			s.metrics.AddRegisteredIssuers(-1)
		}
		s.metrics.IncrementEventsAppended(string(registrycontract.EventIssuerRemoved))
	}
	s.info(ctx, "issuer removed", "issuer", issuer.String(), "caller", caller.String())
	return nil
}

// TransferOwnership hands registry administration to a new owner address.
func (s *Service) TransferOwnership(ctx context.Context, newOwner domain.Address) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	_, span := s.tracer.Start(ctx, tracer.SpanTransferOwner,
		tracer.String(tracer.AttrCaller, caller.String()),
		tracer.String(tracer.AttrUser, newOwner.String()),
	)
	err = s.ledger.TransferOwnership(caller, newOwner)
	span.End(err)
	if err != nil {
		s.denied(err, "transfer_ownership", caller)
		return err
	}

	if s.metrics != nil {
		s.metrics.IncrementEventsAppended(string(registrycontract.EventOwnershipTransferred))
	}
	s.info(ctx, "ownership transferred", "new_owner", newOwner.String())
	return nil
}

// AddCredential records a new unverified credential owned by the caller.
func (s *Service) AddCredential(ctx context.Context, credentialData string, client *events.ClientInfo) (models.Record, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return models.Record{}, err
	}

	_, span := s.tracer.Start(ctx, tracer.SpanAddCredential,
		tracer.String(tracer.AttrCaller, caller.String()),
		tracer.String(tracer.AttrDataDigest, tracer.HashData(credentialData)),
	)
	rec, err := s.ledger.AddCredential(caller, credentialData, client)
	if err != nil {
		span.End(err)
		return models.Record{}, err
	}
	span.SetAttributes(tracer.String(tracer.AttrCredentialID, rec.ID.String()))
	span.End(nil)

	if s.metrics != nil {
		s.metrics.IncrementCredentialsSubmitted()
		s.metrics.IncrementEventsAppended(string(registrycontract.EventCredentialAdded))
	}
	s.info(ctx, "credential added",
		"credential_id", rec.ID.String(),
		"owner", caller.String(),
	)
	return rec, nil
}

// VerifyCredential marks the user's credential as verified by the caller.
func (s *Service) VerifyCredential(ctx context.Context, user domain.Address, id domain.CredentialID) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	_, span := s.tracer.Start(ctx, tracer.SpanVerify,
		tracer.String(tracer.AttrCaller, caller.String()),
		tracer.String(tracer.AttrUser, user.String()),
		tracer.String(tracer.AttrCredentialID, id.String()),
	)
	err = s.ledger.VerifyCredential(caller, user, id)
	span.End(err)
	if err != nil {
		s.denied(err, "verify_credential", caller)
		return err
	}

	if s.metrics != nil {
		s.metrics.IncrementCredentialsVerified()
		s.metrics.IncrementEventsAppended(string(registrycontract.EventCredentialVerified))
	}
	s.info(ctx, "credential verified",
		"credential_id", id.String(),
		"user", user.String(),
		"issuer", caller.String(),
	)
	return nil
}

// RevokeCredential invalidates a credential the caller verified.
func (s *Service) RevokeCredential(ctx context.Context, id domain.CredentialID) error {
	caller, err := s.caller(ctx)
	if err != nil {
		return err
	}

	_, span := s.tracer.Start(ctx, tracer.SpanRevoke,
		tracer.String(tracer.AttrCaller, caller.String()),
		tracer.String(tracer.AttrCredentialID, id.String()),
	)
	err = s.ledger.RevokeCredential(caller, id)
	span.End(err)
	if err != nil {
		s.denied(err, "revoke_credential", caller)
		return err
	}

	if s.metrics != nil {
		s.metrics.IncrementCredentialsRevoked()
		s.metrics.IncrementEventsAppended(string(registrycontract.EventCredentialRevoked))
	}
	s.info(ctx, "credential revoked",
		"credential_id", id.String(),
		"issuer", caller.String(),
	)
	return nil
}

// IsCredentialValid reports current validity; false for unknown ids.
func (s *Service) IsCredentialValid(_ context.Context, id domain.CredentialID) bool {
	return s.ledger.IsCredentialValid(id)
}

// GetCredential returns the record snapshot or not_found.
func (s *Service) GetCredential(_ context.Context, id domain.CredentialID) (models.Record, error) {
	return s.ledger.GetCredential(id)
}

// UserCredentialIDs returns the user's submissions in order.
func (s *Service) UserCredentialIDs(_ context.Context, user domain.Address) []domain.CredentialID {
	return s.ledger.UserCredentialIDs(user)
}

// VerifiedCredentials returns the user's currently valid records as
// parallel sequences in submission order.
func (s *Service) VerifiedCredentials(_ context.Context, user domain.Address) models.VerifiedSet {
	return s.ledger.VerifiedCredentials(user)
}

// IsRegisteredIssuer reports current issuer registration.
func (s *Service) IsRegisteredIssuer(_ context.Context, addr domain.Address) bool {
	return s.ledger.IsRegisteredIssuer(addr)
}

// Owner returns the current registry owner.
func (s *Service) Owner(_ context.Context) domain.Address {
	return s.ledger.Owner()
}

// ListEvents returns the audit trail, optionally filtered to one address.
func (s *Service) ListEvents(_ context.Context, addr *domain.Address) []events.Event {
	if addr != nil {
		return s.log.ListByAddress(*addr)
	}
	return s.log.List()
}

func (s *Service) denied(err error, operation string, caller domain.Address) {
	if s.metrics != nil && dErrors.HasCode(err, dErrors.CodeUnauthorized) {
		s.metrics.IncrementAuthorizationDenied(operation)
	}
	if s.logger != nil && dErrors.HasCode(err, dErrors.CodeUnauthorized) {
		s.logger.Warn("operation denied",
			"operation", operation,
			"caller", caller.String(),
		)
	}
}

func (s *Service) info(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.InfoContext(ctx, msg, args...)
	}
}
