// Package tracer provides a lightweight tracing abstraction for the registry.
//
// The registry emits spans without depending on OpenTelemetry APIs directly;
// the otel adapter lives behind this interface so tests can run with the noop
// implementation at zero overhead.
package tracer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording any error that occurred.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)

	// AddEvent records a timestamped event within the span.
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes. The
	// returned context carries the span and should flow to child operations.
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int64 creates an int64 attribute.
func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// HashData returns a short SHA-256 digest of submitted credential data for
// safe span annotation. Raw credential content never enters traces.
func HashData(credentialData string) string {
	if credentialData == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(credentialData))
	return hex.EncodeToString(sum[:8])
}

// Span names used by the registry.
const (
	SpanRegisterIssuer = "registry.issuer.register"
	SpanRemoveIssuer   = "registry.issuer.remove"
	SpanTransferOwner  = "registry.owner.transfer"
	SpanAddCredential  = "registry.credential.add"
	SpanVerify         = "registry.credential.verify"
	SpanRevoke         = "registry.credential.revoke"
)

// Attribute keys used by the registry.
const (
	AttrCaller       = "caller"
	AttrCredentialID = "credential_id"
	AttrUser         = "user"
	AttrIssuer       = "issuer"
	AttrDataDigest   = "data_digest"
	AttrValid        = "valid"
)

// Event names used by the registry.
const (
	EventAppended = "event.appended"
)
