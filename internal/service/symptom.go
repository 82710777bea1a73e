package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/templui/healthjournal/internal/model"
	"github.com/templui/healthjournal/internal/repository"
	"github.com/templui/healthjournal/internal/validation"
)

type SymptomService struct {
	repo repository.SymptomRepository
}

func NewSymptomService(repo repository.SymptomRepository) *SymptomService {
	return &SymptomService{repo: repo}
}

// Create always inserts; several entries for the same day are allowed.
func (s *SymptomService) Create(ctx context.Context, userID string, in validation.SymptomInput) (*model.Symptom, error) {
	if err := requireOwner(userID); err != nil {
		return nil, err
	}

	fields, err := validation.ValidateSymptom(in)
	if err != nil {
		return nil, err
	}

	ts := now()
	symptom := &model.Symptom{
		ID:        uuid.New().String(),
		UserID:    userID,
		Symptoms:  fields.Symptoms,
		Date:      fields.Date,
		Severity:  fields.Severity,
		TimeOfDay: fields.TimeOfDay,
		Notes:     fields.Notes,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	err = s.repo.Create(ctx, symptom)
	recordWrite("symptom", err, "created")
	if err != nil {
		return nil, storageErr("failed to store symptoms", err)
	}

	return symptom, nil
}

// Range lists userID's symptom entries between start and end inclusive,
// oldest day first. Both bounds are required.
func (s *SymptomService) Range(ctx context.Context, userID, start, end string) ([]*model.Symptom, error) {
	if err := requireOwner(userID); err != nil {
		return nil, err
	}

	r, err := validation.ParseRange(start, end, true)
	if err != nil {
		return nil, err
	}

	symptoms, err := s.repo.Range(ctx, userID, r.Start, r.End)
	if err != nil {
		return nil, storageErr("failed to list symptoms", err)
	}

	return symptoms, nil
}
