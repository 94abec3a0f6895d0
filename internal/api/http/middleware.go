package http

import (
	"context"
	"net/http"
	"time"
)

// NewTimeoutMiddleware creates middleware that cancels requests context after given time.
func NewTimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)
			h.ServeHTTP(w, r)
		})
	}
}
