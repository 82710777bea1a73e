package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/healthjournal/internal/model"
)

type MedicationRepository interface {
	Create(ctx context.Context, medication *model.Medication) error
	ByDate(ctx context.Context, userID string, date model.Date) ([]*model.MedicationEntry, error)
}

type medicationRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewMedicationRepository(db *sqlx.DB, timeout time.Duration) MedicationRepository {
	return &medicationRepository{db: db, timeout: timeout}
}

func (r *medicationRepository) Create(ctx context.Context, m *model.Medication) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `INSERT INTO medications (id, user_id, medication_name, dosage, time_of_the_day, date, effects, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.UserID,
		m.MedicationName,
		m.Dosage,
		m.TimeOfTheDay,
		m.Date,
		m.Effects,
		m.CreatedAt,
		m.UpdatedAt,
	)

	return insertErr(err)
}

// ByDate returns the medications a user recorded for exactly one calendar day.
func (r *medicationRepository) ByDate(ctx context.Context, userID string, date model.Date) ([]*model.MedicationEntry, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	entries := []*model.MedicationEntry{}
	query := `SELECT id, medication_name, dosage, time_of_the_day, effects
	          FROM medications
	          WHERE user_id = $1 AND date = $2
	          ORDER BY created_at ASC, id ASC`

	err := r.db.SelectContext(ctx, &entries, query, userID, date)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
