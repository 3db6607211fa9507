// Package middleware provides HTTP middleware for the API, including
// request tracing and CORS handling.
package middleware

import (
	"net/http"

	"github.com/dpoletti/pokertrain/internal/api/shared"
)

// TraceMiddleware attaches a unique trace ID to each request's context and
// echoes it in the X-Trace-ID response header so clients can quote it when
// reporting problems.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		w.Header().Set("X-Trace-ID", shared.GetTraceID(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
