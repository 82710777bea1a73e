package validation

import (
	"encoding/json"
	"errors"
	"strings"
)

// FlexString decodes a JSON string or number into text. Fields such as
// dosage or severity arrive as either from existing clients.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("expected a string or a number")
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) Trimmed() string {
	return strings.TrimSpace(string(f))
}

// GoalInput is the payload of a create-goal request. GoalName is the field
// name used by older clients and is only read when Name is empty.
type GoalInput struct {
	Name      string     `json:"name"`
	GoalName  string     `json:"goalName"`
	Frequency FlexString `json:"frequency"`
	HowOften  FlexString `json:"howOften"`
	Notes     string     `json:"notes"`
	StartDate string     `json:"startDate"`
}

type ProgressInput struct {
	Progress *int `json:"progress"`
}

type MedicationInput struct {
	MedicationName string     `json:"medicationName"`
	Dosage         FlexString `json:"dosage"`
	TimeOfTheDay   string     `json:"timeOfTheDay"`
	Date           string     `json:"date"`
	Effects        []string   `json:"effects"`
}

type MoodInput struct {
	Mood *int   `json:"mood"`
	Date string `json:"date"`
}

type SymptomInput struct {
	Symptoms  []string   `json:"symptoms"`
	Date      string     `json:"date"`
	Severity  FlexString `json:"severity"`
	TimeOfDay string     `json:"timeOfDay"`
	Notes     string     `json:"notes"`
}
