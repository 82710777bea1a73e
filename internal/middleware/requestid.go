package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/templui/healthjournal/internal/ctxkeys"
)

const requestIDHeader = "X-Request-ID"

// RequestID adds a request id to the context and the response headers. A
// client supplied id is reused when it is short enough to log.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxkeys.WithRequestID(r.Context(), id)))
	})
}
