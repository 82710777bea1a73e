package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/healthjournal/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(ctx context.Context, goal *model.Goal) error
	Goals(ctx context.Context, userID string, completed *bool) ([]*model.Goal, error)
	UpdateProgress(ctx context.Context, userID, goalID string, progress int, updatedAt time.Time) (*model.Goal, error)
}

type goalRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewGoalRepository(db *sqlx.DB, timeout time.Duration) GoalRepository {
	return &goalRepository{db: db, timeout: timeout}
}

func (r *goalRepository) Create(ctx context.Context, goal *model.Goal) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `INSERT INTO goals (id, user_id, name, frequency, how_often, notes, start_date, progress, completed, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		goal.ID,
		goal.UserID,
		goal.Name,
		goal.Frequency,
		goal.HowOften,
		goal.Notes,
		goal.StartDate,
		goal.Progress,
		goal.Completed,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return insertErr(err)
}

// Goals lists a user's goals in insertion order, optionally filtered by completion.
func (r *goalRepository) Goals(ctx context.Context, userID string, completed *bool) ([]*model.Goal, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	goals := []*model.Goal{}
	query := `SELECT * FROM goals WHERE user_id = $1`
	args := []any{userID}
	if completed != nil {
		query += ` AND completed = $2`
		args = append(args, *completed)
	}
	query += ` ORDER BY created_at ASC, id ASC`

	err := r.db.SelectContext(ctx, &goals, query, args...)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

// UpdateProgress writes progress and the completed flag derived from it in a
// single statement, scoped to the owner. A goal owned by someone else is
// reported exactly like a missing one.
func (r *goalRepository) UpdateProgress(ctx context.Context, userID, goalID string, progress int, updatedAt time.Time) (*model.Goal, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `UPDATE goals
	          SET progress = $1, completed = $2, updated_at = $3
	          WHERE id = $4 AND user_id = $5`

	result, err := r.db.ExecContext(ctx, query, progress, model.IsGoalCompleted(progress), updatedAt, goalID, userID)
	if err != nil {
		return nil, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rows == 0 {
		return nil, ErrGoalNotFound
	}

	goal := &model.Goal{}
	err = r.db.GetContext(ctx, goal, `SELECT * FROM goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	return goal, nil
}
