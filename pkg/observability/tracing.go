package observability

import (
	"context"

	"github.com/aws/aws-xray-sdk-go/xray"
)

// Tracer wraps X-Ray segment handling for the request and store paths. Every
// method degrades to a no-op when no segment is active, so traced code runs
// unchanged in tests and local development.
type Tracer struct {
	serviceName string
}

// NewTracer creates a tracer for the named service.
func NewTracer(serviceName string) *Tracer {
	return &Tracer{serviceName: serviceName}
}

// StartSegment opens a root segment for an incoming request.
func (t *Tracer) StartSegment(ctx context.Context, name string) (context.Context, *xray.Segment) {
	return xray.BeginSegment(ctx, t.serviceName+"."+name)
}

// Capture runs fn inside a subsegment of the active segment, recording its
// error and duration. Without an active segment fn runs untraced.
func (t *Tracer) Capture(ctx context.Context, name string, fn func(context.Context) error) error {
	if xray.GetSegment(ctx) == nil {
		return fn(ctx)
	}
	subCtx, seg := xray.BeginSubsegment(ctx, name)
	err := fn(subCtx)
	if err != nil {
		seg.AddError(err)
	}
	seg.Close(nil)
	return err
}

// AddAnnotation attaches an indexed annotation to the active segment.
func (t *Tracer) AddAnnotation(ctx context.Context, key string, value string) {
	if seg := xray.GetSegment(ctx); seg != nil {
		seg.AddAnnotation(key, value)
	}
}

// AddMetadata attaches unindexed metadata to the active segment.
func (t *Tracer) AddMetadata(ctx context.Context, key string, value interface{}) {
	if seg := xray.GetSegment(ctx); seg != nil {
		seg.AddMetadata(key, value)
	}
}

// RecordError marks the active segment as failed.
func (t *Tracer) RecordError(ctx context.Context, err error) {
	if seg := xray.GetSegment(ctx); seg != nil {
		seg.AddError(err)
	}
}
