// Package ledger holds the authoritative credential registry state.
//
// The entire state is one shared object guarded by a single mutex: every
// operation acquires the lock, performs all of its checks, mutations, and
// event appends, and releases the lock. That serializes all state-changing
// calls into one total order and makes each call atomic: a failing call
// leaves both the state and the event log untouched.
package ledger

import (
	"sync"
	"time"

	registrycontract "attestry/contracts/registry"
	"attestry/internal/registry/domain/credential"
	"attestry/internal/registry/events"
	"attestry/internal/registry/models"
	"attestry/pkg/domain"
	dErrors "attestry/pkg/domain-errors"
)

// Ledger is the single authoritative store of registry facts.
type Ledger struct {
	mu sync.Mutex

	owner       domain.Address
	issuers     map[domain.Address]bool
	credentials map[domain.CredentialID]*credential.Credential
	// userCredentials preserves submission order per user. Ids are unique so
	// duplicates are impossible.
	userCredentials map[domain.Address][]domain.CredentialID
	nonce           uint64

	log   *events.Log
	clock func() time.Time
}

// Option configures the Ledger.
type Option func(*Ledger)

// WithClock overrides the event timestamp source. Used in tests.
func WithClock(clock func() time.Time) Option {
	return func(l *Ledger) {
		if clock != nil {
			l.clock = clock
		}
	}
}

// New creates a ledger owned by the given address, appending events to log.
func New(owner domain.Address, log *events.Log, opts ...Option) (*Ledger, error) {
	if owner.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "owner address is required")
	}
	if log == nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "event log is required")
	}
	l := &Ledger{
		owner:           owner,
		issuers:         make(map[domain.Address]bool),
		credentials:     make(map[domain.CredentialID]*credential.Credential),
		userCredentials: make(map[domain.Address][]domain.CredentialID),
		log:             log,
		clock:           time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// RegisterIssuer marks the address as a registered issuer. Owner only.
// Re-registering succeeds without state change but still appends an event,
// so the trail records every owner action. The returned flag reports whether
// the issuer set actually changed; it is decided under the same lock as the
// mutation so callers can trust it for gauge accounting.
func (l *Ledger) RegisterIssuer(caller, issuer domain.Address) (bool, error) {
	if issuer.IsZero() {
		return false, dErrors.New(dErrors.CodeInvalidInput, "issuer address is required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireOwner(caller); err != nil {
		return false, err
	}
	changed := !l.issuers[issuer]
	l.issuers[issuer] = true
	l.append(events.Event{
		Kind: registrycontract.EventIssuerRegistered,
		User: issuer,
	})
	return changed, nil
}

// RemoveIssuer unmarks the address. Owner only. Credentials the issuer
// already verified keep their status and their stored issuer. The returned
// flag reports whether the issuer set actually changed.
func (l *Ledger) RemoveIssuer(caller, issuer domain.Address) (bool, error) {
	if issuer.IsZero() {
		return false, dErrors.New(dErrors.CodeInvalidInput, "issuer address is required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireOwner(caller); err != nil {
		return false, err
	}
	changed := l.issuers[issuer]
	delete(l.issuers, issuer)
	l.append(events.Event{
		Kind: registrycontract.EventIssuerRemoved,
		User: issuer,
	})
	return changed, nil
}

// TransferOwnership hands the issuer-registry administration to newOwner.
func (l *Ledger) TransferOwnership(caller, newOwner domain.Address) error {
	if newOwner.IsZero() {
		return dErrors.New(dErrors.CodeInvalidInput, "new owner address is required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.requireOwner(caller); err != nil {
		return err
	}
	l.owner = newOwner
	l.append(events.Event{
		Kind: registrycontract.EventOwnershipTransferred,
		User: newOwner,
	})
	return nil
}

// AddCredential records a new unverified credential owned by the caller and
// returns its id and data hash. The ledger nonce feeds id derivation, so two
// submissions of identical content always get distinct ids.
func (l *Ledger) AddCredential(caller domain.Address, credentialData string, client *events.ClientInfo) (models.Record, error) {
	if caller.IsZero() {
		return models.Record{}, dErrors.New(dErrors.CodeUnauthorized, "caller address is required")
	}
	if credentialData == "" {
		return models.Record{}, dErrors.New(dErrors.CodeInvalidInput, "credential data is required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.nonce++
	id := domain.DeriveCredentialID(credentialData, caller, l.nonce)
	if _, exists := l.credentials[id]; exists {
		// Unreachable while the nonce is strictly increasing; kept as a hard
		// stop because id reuse would corrupt the ledger.
		return models.Record{}, dErrors.New(dErrors.CodeInternal, "credential id collision")
	}

	rec, err := credential.New(id, domain.HashCredentialData(credentialData), caller)
	if err != nil {
		return models.Record{}, err
	}

	l.credentials[id] = rec
	l.userCredentials[caller] = append(l.userCredentials[caller], id)
	l.append(events.Event{
		Kind:         registrycontract.EventCredentialAdded,
		CredentialID: id,
		User:         caller,
		Client:       client,
	})
	return snapshot(rec), nil
}

// VerifyCredential marks the user's credential verified by the caller.
// The caller must be a registered issuer at the time of the call.
func (l *Ledger) VerifyCredential(caller, user domain.Address, id domain.CredentialID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.issuers[caller] {
		return dErrors.New(dErrors.CodeUnauthorized, "not a registered issuer")
	}
	rec, ok := l.credentials[id]
	if !ok || rec.Owner() != user {
		return dErrors.New(dErrors.CodeNotFound, "credential not found for user")
	}
	if err := rec.Verify(caller); err != nil {
		return err
	}
	l.append(events.Event{
		Kind:         registrycontract.EventCredentialVerified,
		CredentialID: id,
		User:         user,
		Issuer:       caller,
	})
	return nil
}

// RevokeCredential invalidates a credential. Only the issuer stored at
// verification time may revoke; the owner has no override.
func (l *Ledger) RevokeCredential(caller domain.Address, id domain.CredentialID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.credentials[id]
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "credential not found")
	}
	if err := rec.Revoke(caller); err != nil {
		return err
	}
	l.append(events.Event{
		Kind:         registrycontract.EventCredentialRevoked,
		CredentialID: id,
		User:         rec.Owner(),
		Issuer:       caller,
	})
	return nil
}

// IsCredentialValid reports whether the credential is verified and not
// revoked. Unknown ids are simply not valid; this call never fails.
func (l *Ledger) IsCredentialValid(id domain.CredentialID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.credentials[id]
	return ok && rec.Valid()
}

// GetCredential returns a snapshot of the record, or not_found for unknown
// ids. Callers distinguish validity via IsCredentialValid, not via this error.
func (l *Ledger) GetCredential(id domain.CredentialID) (models.Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.credentials[id]
	if !ok {
		return models.Record{}, dErrors.New(dErrors.CodeNotFound, "credential not found")
	}
	return snapshot(rec), nil
}

// UserCredentialIDs returns the ids the user has submitted, in submission
// order. Possibly empty, never an error.
func (l *Ledger) UserCredentialIDs(user domain.Address) []domain.CredentialID {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]domain.CredentialID{}, l.userCredentials[user]...)
}

// VerifiedCredentials returns the parallel sequences for the user's currently
// valid credentials, preserving relative submission order.
func (l *Ledger) VerifiedCredentials(user domain.Address) models.VerifiedSet {
	l.mu.Lock()
	defer l.mu.Unlock()

	var set models.VerifiedSet
	for _, id := range l.userCredentials[user] {
		rec := l.credentials[id]
		if rec == nil || !rec.Valid() {
			continue
		}
		set.IDs = append(set.IDs, rec.ID())
		set.Hashes = append(set.Hashes, rec.DataHash())
		set.Issuers = append(set.Issuers, rec.Issuer())
	}
	return set
}

// IsRegisteredIssuer reports current issuer registration.
func (l *Ledger) IsRegisteredIssuer(addr domain.Address) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.issuers[addr]
}

// Owner returns the current owner address.
func (l *Ledger) Owner() domain.Address {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.owner
}

// requireOwner must be called with the lock held.
func (l *Ledger) requireOwner(caller domain.Address) error {
	if caller != l.owner {
		return dErrors.New(dErrors.CodeUnauthorized, "caller is not the owner")
	}
	return nil
}

// append must be called with the lock held so event order matches the
// transaction order.
func (l *Ledger) append(event events.Event) {
	event.Timestamp = l.clock()
	l.log.Append(event)
}

func snapshot(rec *credential.Credential) models.Record {
	return models.Record{
		ID:       rec.ID(),
		DataHash: rec.DataHash(),
		Owner:    rec.Owner(),
		Issuer:   rec.Issuer(),
		Valid:    rec.Valid(),
	}
}
