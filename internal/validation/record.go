package validation

import (
	"strings"

	"github.com/templui/healthjournal/internal/apperr"
	"github.com/templui/healthjournal/internal/model"
)

const required = "is required"

// ValidateGoal checks a create-goal payload and returns the normalized goal
// fields. Ownership, ids and progress are left to the caller.
func ValidateGoal(in GoalInput) (model.Goal, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = strings.TrimSpace(in.GoalName)
	}

	missing := map[string]string{}
	if name == "" {
		missing["name"] = required
	}
	if in.Frequency.Trimmed() == "" {
		missing["frequency"] = required
	}
	if in.HowOften.Trimmed() == "" {
		missing["howOften"] = required
	}
	if strings.TrimSpace(in.StartDate) == "" {
		missing["startDate"] = required
	}
	if len(missing) > 0 {
		return model.Goal{}, apperr.Validation("All fields (name, frequency, howOften, startDate) are required.", missing)
	}

	startDate, err := ParseDate("startDate", in.StartDate)
	if err != nil {
		return model.Goal{}, err
	}

	return model.Goal{
		Name:      name,
		Frequency: in.Frequency.Trimmed(),
		HowOften:  in.HowOften.Trimmed(),
		Notes:     strings.TrimSpace(in.Notes),
		StartDate: startDate,
	}, nil
}

// ValidateProgress requires a non-negative progress value.
func ValidateProgress(in ProgressInput) (int, error) {
	if in.Progress == nil {
		return 0, apperr.Validation("Progress value is required.", map[string]string{"progress": required})
	}
	if *in.Progress < 0 {
		return 0, apperr.Validation("Progress cannot be negative.", map[string]string{"progress": "must be >= 0"})
	}
	return *in.Progress, nil
}

func ValidateMedication(in MedicationInput) (model.Medication, error) {
	effects := compact(in.Effects)

	missing := map[string]string{}
	if strings.TrimSpace(in.MedicationName) == "" {
		missing["medicationName"] = required
	}
	if in.Dosage.Trimmed() == "" {
		missing["dosage"] = required
	}
	if strings.TrimSpace(in.TimeOfTheDay) == "" {
		missing["timeOfTheDay"] = required
	}
	if len(effects) == 0 {
		missing["effects"] = "must contain at least one entry"
	}
	if strings.TrimSpace(in.Date) == "" {
		missing["date"] = required
	}
	if len(missing) > 0 {
		return model.Medication{}, apperr.Validation("All fields are required, and effects cannot be empty.", missing)
	}

	date, err := ParseDate("date", in.Date)
	if err != nil {
		return model.Medication{}, err
	}

	return model.Medication{
		MedicationName: strings.TrimSpace(in.MedicationName),
		Dosage:         in.Dosage.Trimmed(),
		TimeOfTheDay:   strings.TrimSpace(in.TimeOfTheDay),
		Date:           date,
		Effects:        effects,
	}, nil
}

// ValidateMood enforces MoodMin <= mood <= MoodMax on both ends.
func ValidateMood(in MoodInput) (model.Mood, error) {
	missing := map[string]string{}
	if in.Mood == nil {
		missing["mood"] = required
	}
	if strings.TrimSpace(in.Date) == "" {
		missing["date"] = required
	}
	if len(missing) > 0 {
		return model.Mood{}, apperr.Validation("Mood and date are required fields.", missing)
	}

	if *in.Mood < model.MoodMin || *in.Mood > model.MoodMax {
		return model.Mood{}, apperr.Validation("Mood must be between 1 and 3.", map[string]string{"mood": "must be between 1 and 3"})
	}

	date, err := ParseDate("date", in.Date)
	if err != nil {
		return model.Mood{}, err
	}

	return model.Mood{Mood: *in.Mood, Date: date}, nil
}

// ValidateSymptom requires at least one symptom. Severity and time of day
// are stored as given, without range checks.
func ValidateSymptom(in SymptomInput) (model.Symptom, error) {
	symptoms := compact(in.Symptoms)
	if len(symptoms) == 0 {
		return model.Symptom{}, apperr.Validation("Symptoms array cannot be empty.", map[string]string{"symptoms": "must contain at least one entry"})
	}
	if strings.TrimSpace(in.Date) == "" {
		return model.Symptom{}, apperr.Validation("Date is required.", map[string]string{"date": required})
	}

	date, err := ParseDate("date", in.Date)
	if err != nil {
		return model.Symptom{}, err
	}

	return model.Symptom{
		Symptoms:  symptoms,
		Date:      date,
		Severity:  in.Severity.Trimmed(),
		TimeOfDay: strings.TrimSpace(in.TimeOfDay),
		Notes:     strings.TrimSpace(in.Notes),
	}, nil
}

// compact trims entries and drops blank ones, keeping order.
func compact(items []string) model.StringList {
	out := make(model.StringList, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
