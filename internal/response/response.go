// Package response writes the JSON envelope every API endpoint answers with
// and translates classified failures into it.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/templui/healthjournal/internal/apperr"
	"github.com/templui/healthjournal/internal/metrics"
)

// InternalMessage is shown to callers for every server-class failure.
const InternalMessage = "Internal server error"

type Envelope struct {
	StatusCode int               `json:"statusCode"`
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Data       any               `json:"data,omitempty"`
	Errors     map[string]string `json:"errors,omitempty"`
}

// JSON writes a success envelope. A nil data omits the data member; an empty
// slice is written as [].
func JSON(w http.ResponseWriter, status int, message string, data any) {
	write(w, Envelope{
		StatusCode: status,
		Success:    status < http.StatusBadRequest,
		Message:    message,
		Data:       data,
	})
}

// Error translates err into a failure envelope. Client-class failures keep
// their message; anything unclassified is logged and reported generically.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	status := StatusFor(kind)
	metrics.RecordFailure(kind.String())

	env := Envelope{StatusCode: status, Success: false, Message: InternalMessage}

	switch {
	case !kind.ClientError():
		slog.ErrorContext(r.Context(), "request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
		)
	default:
		if e, ok := apperr.As(err); ok {
			env.Message = e.Message
			env.Errors = e.Fields
		}
		if kind == apperr.Unauthenticated {
			slog.WarnContext(r.Context(), "unauthenticated request", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
		}
	}

	write(w, env)
}

// StatusFor maps a failure kind to its HTTP status.
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.Unauthenticated:
		return http.StatusUnauthorized
	case apperr.ValidationFailed, apperr.InvalidDate:
		return http.StatusBadRequest
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Conflict:
		return http.StatusConflict
	case apperr.RateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func write(w http.ResponseWriter, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(env.StatusCode)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
