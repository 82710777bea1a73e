package service

import (
	"errors"
	"strings"
	"time"

	"github.com/templui/healthjournal/internal/apperr"
	"github.com/templui/healthjournal/internal/metrics"
	"github.com/templui/healthjournal/internal/repository"
)

var (
	ErrMissingOwner = apperr.Unauthorized("Authentication required.")
)

// now is the clock for CreatedAt/UpdatedAt. Stored timestamps are UTC.
var now = func() time.Time {
	return time.Now().UTC()
}

// requireOwner rejects calls without a resolved owner.
func requireOwner(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrMissingOwner
	}
	return nil
}

// storageErr classifies a repository failure. Unique violations become
// Conflict; everything else is Internal with the cause kept for logs.
func storageErr(message string, err error) error {
	if errors.Is(err, repository.ErrConflict) {
		return apperr.Wrap(apperr.Conflict, "Record already exists.", err)
	}
	return apperr.Wrap(apperr.Internal, message, err)
}

func recordWrite(entity string, err error, outcome string) {
	if err != nil {
		metrics.RecordWrite(entity, "failed")
		return
	}
	metrics.RecordWrite(entity, outcome)
}
