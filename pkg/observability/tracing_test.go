package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureWithoutActiveSegment(t *testing.T) {
	tracer := NewTracer("pagecompiler-test")
	ctx := context.Background()

	called := false
	err := tracer.Capture(ctx, "store.load", func(ctx context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called, "traced function must run even without a segment")

	wantErr := errors.New("store unavailable")
	err = tracer.Capture(ctx, "store.save", func(ctx context.Context) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestSegmentHelpersAreNoOpsWithoutSegment(t *testing.T) {
	tracer := NewTracer("pagecompiler-test")
	ctx := context.Background()

	// Must not panic when no segment is active.
	tracer.AddAnnotation(ctx, "path", "/api/v1/elements")
	tracer.AddMetadata(ctx, "userAgent", "test")
	tracer.RecordError(ctx, errors.New("ignored"))
}
