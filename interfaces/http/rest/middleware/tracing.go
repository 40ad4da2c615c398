package middleware

import (
	"net/http"

	"pagecompiler/pkg/observability"
)

// Tracing wraps each request in a trace segment. When disabled it passes
// requests straight through.
func Tracing(tracer *observability.Tracer, enabled bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, seg := tracer.StartSegment(r.Context(), r.Method+" "+r.URL.Path)
			defer seg.Close(nil)

			tracer.AddAnnotation(ctx, "method", r.Method)
			tracer.AddAnnotation(ctx, "path", r.URL.Path)
			tracer.AddMetadata(ctx, "userAgent", r.UserAgent())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
