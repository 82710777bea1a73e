package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/templui/healthjournal/internal/apperr"
	"github.com/templui/healthjournal/internal/model"
	"github.com/templui/healthjournal/internal/repository"
	"github.com/templui/healthjournal/internal/validation"
)

var (
	ErrGoalNotFound = apperr.NotFoundf("Goal not found.")
)

type GoalService struct {
	repo repository.GoalRepository
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

// Create stores a new goal for userID with zero progress.
func (s *GoalService) Create(ctx context.Context, userID string, in validation.GoalInput) (*model.Goal, error) {
	if err := requireOwner(userID); err != nil {
		return nil, err
	}

	fields, err := validation.ValidateGoal(in)
	if err != nil {
		return nil, err
	}

	ts := now()
	goal := &model.Goal{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      fields.Name,
		Frequency: fields.Frequency,
		HowOften:  fields.HowOften,
		Notes:     fields.Notes,
		StartDate: fields.StartDate,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	goal.SetProgress(0)

	err = s.repo.Create(ctx, goal)
	recordWrite("goal", err, "created")
	if err != nil {
		return nil, storageErr("failed to create goal", err)
	}

	return goal, nil
}

// Goals lists userID's goals. A nil completed returns all of them.
func (s *GoalService) Goals(ctx context.Context, userID string, completed *bool) ([]*model.Goal, error) {
	if err := requireOwner(userID); err != nil {
		return nil, err
	}

	goals, err := s.repo.Goals(ctx, userID, completed)
	if err != nil {
		return nil, storageErr("failed to list goals", err)
	}

	return goals, nil
}

// UpdateProgress sets a goal's progress and recomputes its completed flag.
// Repeating the call with the same value leaves the goal unchanged apart
// from UpdatedAt. Goals of other users are reported as not found.
func (s *GoalService) UpdateProgress(ctx context.Context, userID, goalID string, in validation.ProgressInput) (*model.Goal, error) {
	if err := requireOwner(userID); err != nil {
		return nil, err
	}

	progress, err := validation.ValidateProgress(in)
	if err != nil {
		return nil, err
	}

	if goalID == "" {
		return nil, ErrGoalNotFound
	}

	goal, err := s.repo.UpdateProgress(ctx, userID, goalID, progress, now())
	if errors.Is(err, repository.ErrGoalNotFound) {
		return nil, ErrGoalNotFound
	}
	recordWrite("goal", err, "updated")
	if err != nil {
		return nil, storageErr("failed to update goal progress", err)
	}

	return goal, nil
}
