package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/saudaghar/marketplace-backend/pkg/ctxutil"
)

const (
	requestIDHeader   = "X-Request-Id"
	maxRequestIDBytes = 128
)

// RequestID propagates the caller's X-Request-Id, or mints one, and echoes
// it on the response. Oversized or non-printable IDs are replaced. The peer
// address is stored alongside for the rate limiter and access log.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if !validRequestID(id) {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := ctxutil.WithRequestID(r.Context(), id)
		ctx = ctxutil.WithClientIP(ctx, clientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDBytes {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
