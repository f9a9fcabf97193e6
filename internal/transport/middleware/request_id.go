package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/braindump-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request ID to and from clients.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that propagates the incoming request ID, or
// generates one, and echoes it back in the response header.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
