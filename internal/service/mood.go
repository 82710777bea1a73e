package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/templui/healthjournal/internal/model"
	"github.com/templui/healthjournal/internal/repository"
	"github.com/templui/healthjournal/internal/validation"
)

type MoodService struct {
	repo repository.MoodRepository
}

func NewMoodService(repo repository.MoodRepository) *MoodService {
	return &MoodService{repo: repo}
}

// Upsert records userID's mood for a day, replacing any earlier value for
// the same day. The bool is true when no record existed before.
func (s *MoodService) Upsert(ctx context.Context, userID string, in validation.MoodInput) (*model.Mood, bool, error) {
	if err := requireOwner(userID); err != nil {
		return nil, false, err
	}

	fields, err := validation.ValidateMood(in)
	if err != nil {
		return nil, false, err
	}

	ts := now()
	mood := &model.Mood{
		ID:        uuid.New().String(),
		UserID:    userID,
		Mood:      fields.Mood,
		Date:      fields.Date,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	stored, created, err := s.repo.Upsert(ctx, mood)
	outcome := "updated"
	if created {
		outcome = "created"
	}
	recordWrite("mood", err, outcome)
	if err != nil {
		return nil, false, storageErr("failed to save mood", err)
	}

	return stored, created, nil
}

// Range lists userID's moods between start and end inclusive. Both bounds
// must be valid dates.
func (s *MoodService) Range(ctx context.Context, userID, start, end string) ([]*model.Mood, error) {
	if err := requireOwner(userID); err != nil {
		return nil, err
	}

	r, err := validation.ParseRange(start, end, false)
	if err != nil {
		return nil, err
	}

	moods, err := s.repo.Range(ctx, userID, r.Start, r.End)
	if err != nil {
		return nil, storageErr("failed to list moods", err)
	}

	return moods, nil
}
