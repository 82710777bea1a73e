package model

import (
	"time"
)

// GoalCompletionThreshold is the progress at which a goal counts as completed.
const GoalCompletionThreshold = 4

type Goal struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Frequency string    `db:"frequency" json:"frequency"`
	HowOften  string    `db:"how_often" json:"howOften"`
	Notes     string    `db:"notes" json:"notes"`
	StartDate Date      `db:"start_date" json:"startDate"`
	Progress  int       `db:"progress" json:"progress"`
	Completed bool      `db:"completed" json:"completed"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// IsGoalCompleted is the only source of a goal's completed flag.
func IsGoalCompleted(progress int) bool {
	return progress >= GoalCompletionThreshold
}

// SetProgress updates progress and recomputes Completed from it.
func (g *Goal) SetProgress(progress int) {
	g.Progress = progress
	g.Completed = IsGoalCompleted(progress)
}
