package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/healthjournal/internal/model"
)

type SymptomRepository interface {
	Create(ctx context.Context, symptom *model.Symptom) error
	Range(ctx context.Context, userID string, start, end model.Date) ([]*model.Symptom, error)
}

type symptomRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewSymptomRepository(db *sqlx.DB, timeout time.Duration) SymptomRepository {
	return &symptomRepository{db: db, timeout: timeout}
}

func (r *symptomRepository) Create(ctx context.Context, s *model.Symptom) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `INSERT INTO symptoms (id, user_id, symptoms, date, severity, time_of_day, notes, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.UserID,
		s.Symptoms,
		s.Date,
		s.Severity,
		s.TimeOfDay,
		s.Notes,
		s.CreatedAt,
		s.UpdatedAt,
	)

	return insertErr(err)
}

// Range returns a user's symptom entries with start <= date <= end, oldest day first.
func (r *symptomRepository) Range(ctx context.Context, userID string, start, end model.Date) ([]*model.Symptom, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	symptoms := []*model.Symptom{}
	query := `SELECT * FROM symptoms
	          WHERE user_id = $1 AND date >= $2 AND date <= $3
	          ORDER BY date ASC, created_at ASC, id ASC`

	err := r.db.SelectContext(ctx, &symptoms, query, userID, start, end)
	if err != nil {
		return nil, err
	}

	return symptoms, nil
}
