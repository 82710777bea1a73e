package validation

import (
	"strings"

	"github.com/templui/healthjournal/internal/apperr"
	"github.com/templui/healthjournal/internal/model"
)

// ParseDate parses a calendar-day field. An unparseable value is an
// InvalidDate failure naming field.
func ParseDate(field, value string) (model.Date, error) {
	d, err := model.ParseDate(value)
	if err != nil {
		return model.Date{}, apperr.InvalidDateField(field, value)
	}
	return d, nil
}

// DateRange is an inclusive [Start, End] range of calendar days.
type DateRange struct {
	Start model.Date
	End   model.Date
}

// ParseRange parses startDate and endDate. Both are always parsed; when
// requireBoth is set, a missing bound is a ValidationFailed error reported
// before any parsing happens.
func ParseRange(start, end string, requireBoth bool) (DateRange, error) {
	if requireBoth && (strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "") {
		fields := map[string]string{}
		if strings.TrimSpace(start) == "" {
			fields["startDate"] = required
		}
		if strings.TrimSpace(end) == "" {
			fields["endDate"] = required
		}
		return DateRange{}, apperr.Validation("Start date and end date are required.", fields)
	}

	s, err := ParseDate("startDate", start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate("endDate", end)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{Start: s, End: e}, nil
}
