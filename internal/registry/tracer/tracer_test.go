package tracer_test

import (
	"context"
	"errors"
	"testing"

	"attestry/internal/registry/tracer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopTracer_Start(t *testing.T) {
	tr := tracer.NewNoop()
	ctx := context.Background()

	newCtx, span := tr.Start(ctx, "test.span",
		tracer.String("key", "value"),
		tracer.Bool("flag", true),
	)

	// Context should be returned unchanged
	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)

	// Span methods should not panic
	span.SetAttributes(tracer.String("another", "attr"))
	span.AddEvent("test.event", tracer.Int64("count", 42))
	span.End(nil)
}

func TestNoopTracer_SpanEndWithError(t *testing.T) {
	tr := tracer.NewNoop()

	_, span := tr.Start(context.Background(), "test.span")
	require.NotNil(t, span)

	span.End(errors.New("test error"))
}

func TestHashData(t *testing.T) {
	t.Run("empty input returns empty", func(t *testing.T) {
		assert.Empty(t, tracer.HashData(""))
	})

	t.Run("digest is 16 hex chars regardless of input size", func(t *testing.T) {
		assert.Len(t, tracer.HashData("x"), 16)
		assert.Len(t, tracer.HashData("BSc CS, XYZ University, 2022"), 16)
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t,
			tracer.HashData("BSc CS, XYZ University, 2022"),
			tracer.HashData("BSc CS, XYZ University, 2022"),
		)
	})

	t.Run("different data produces different digests", func(t *testing.T) {
		assert.NotEqual(t, tracer.HashData("a"), tracer.HashData("b"))
	})
}

func TestOTelTracer_Start(t *testing.T) {
	tr := tracer.NewOTel()

	ctx, span := tr.Start(context.Background(), "registry.credential.add",
		tracer.String(tracer.AttrCaller, "0xabc"),
		tracer.Int64("nonce", 7),
	)
	require.NotNil(t, ctx)
	require.NotNil(t, span)

	span.SetAttributes(tracer.Bool(tracer.AttrValid, true))
	span.AddEvent(tracer.EventAppended, tracer.Duration("took", 0))
	span.End(nil)
}
