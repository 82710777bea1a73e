package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/templui/healthjournal/internal/response"
)

// Recover turns a panic in a handler into a 500 envelope.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			slog.ErrorContext(r.Context(), "panic",
				"reason", rec,
				"stack", string(debug.Stack()),
				"method", r.Method,
				"path", r.URL.Path,
			)
			response.JSON(w, http.StatusInternalServerError, response.InternalMessage, nil)
		}()
		next.ServeHTTP(w, r)
	})
}
