package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/templui/healthjournal/internal/apperr"
	"github.com/templui/healthjournal/internal/model"
	"github.com/templui/healthjournal/internal/repository"
	"github.com/templui/healthjournal/internal/validation"
)

type MedicationService struct {
	repo repository.MedicationRepository
}

func NewMedicationService(repo repository.MedicationRepository) *MedicationService {
	return &MedicationService{repo: repo}
}

func (s *MedicationService) Create(ctx context.Context, userID string, in validation.MedicationInput) (*model.Medication, error) {
	if err := requireOwner(userID); err != nil {
		return nil, err
	}

	fields, err := validation.ValidateMedication(in)
	if err != nil {
		return nil, err
	}

	ts := now()
	medication := &model.Medication{
		ID:             uuid.New().String(),
		UserID:         userID,
		MedicationName: fields.MedicationName,
		Dosage:         fields.Dosage,
		TimeOfTheDay:   fields.TimeOfTheDay,
		Date:           fields.Date,
		Effects:        fields.Effects,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}

	err = s.repo.Create(ctx, medication)
	recordWrite("medication", err, "created")
	if err != nil {
		return nil, storageErr("failed to create medication", err)
	}

	return medication, nil
}

// ByDate lists what userID took on the calendar day named by date.
func (s *MedicationService) ByDate(ctx context.Context, userID, date string) ([]*model.MedicationEntry, error) {
	if err := requireOwner(userID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(date) == "" {
		return nil, apperr.Validation("Date is required.", map[string]string{"date": "is required"})
	}

	day, err := validation.ParseDate("date", date)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.ByDate(ctx, userID, day)
	if err != nil {
		return nil, storageErr("failed to list medications", err)
	}

	return entries, nil
}
