package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout sets a deadline on the request context. Handlers observe it through
// ctx and answer 504 via rest.WriteError; the response itself is never cut off.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
