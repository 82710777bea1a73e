package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/templui/healthjournal/internal/model"
)

type MoodRepository interface {
	Upsert(ctx context.Context, mood *model.Mood) (*model.Mood, bool, error)
	Range(ctx context.Context, userID string, start, end model.Date) ([]*model.Mood, error)
}

type moodRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewMoodRepository(db *sqlx.DB, timeout time.Duration) MoodRepository {
	return &moodRepository{db: db, timeout: timeout}
}

// Upsert stores mood as the only record for (UserID, Date). The insert and
// the update of an existing record are one statement, so concurrent writers
// for the same day cannot both insert. The returned bool is true when this
// call created the record.
func (r *moodRepository) Upsert(ctx context.Context, mood *model.Mood) (*model.Mood, bool, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `INSERT INTO moods (id, user_id, mood, date, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (user_id, date) DO UPDATE
	          SET mood = excluded.mood, updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		mood.ID,
		mood.UserID,
		mood.Mood,
		mood.Date,
		mood.CreatedAt,
		mood.UpdatedAt,
	)
	if err != nil {
		return nil, false, err
	}

	stored := &model.Mood{}
	err = r.db.GetContext(ctx, stored, `SELECT * FROM moods WHERE user_id = $1 AND date = $2`, mood.UserID, mood.Date)
	if err != nil {
		return nil, false, err
	}

	return stored, stored.ID == mood.ID, nil
}

// Range returns a user's moods with start <= date <= end.
func (r *moodRepository) Range(ctx context.Context, userID string, start, end model.Date) ([]*model.Mood, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	moods := []*model.Mood{}
	query := `SELECT * FROM moods
	          WHERE user_id = $1 AND date >= $2 AND date <= $3
	          ORDER BY date ASC`

	err := r.db.SelectContext(ctx, &moods, query, userID, start, end)
	if err != nil {
		return nil, err
	}

	return moods, nil
}
