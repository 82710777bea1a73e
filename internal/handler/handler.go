package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/templui/healthjournal/internal/apperr"
	"github.com/templui/healthjournal/internal/ctxkeys"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

var (
	ErrInvalidBody = apperr.Validation("Invalid request body", nil)
)

// decodeJSON reads a single JSON object from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrInvalidBody
		}
		return apperr.Wrap(apperr.ValidationFailed, "Invalid request body", err)
	}
	return nil
}

// userID returns the verified caller's id, or "" when there is none. Routes
// are wrapped in RequireAuth, services reject an empty id again.
func userID(r *http.Request) string {
	identity, _ := ctxkeys.Identity(r.Context())
	return identity.UserID
}

// listMessage picks the message for a listing depending on whether it found anything.
func listMessage(n int, found, empty string) string {
	if n == 0 {
		return empty
	}
	return found
}
