package model

import (
	"time"
)

type Symptom struct {
	ID        string     `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"userId"`
	Symptoms  StringList `db:"symptoms" json:"symptoms"`
	Date      Date       `db:"date" json:"date"`
	Severity  string     `db:"severity" json:"severity"`
	TimeOfDay string     `db:"time_of_day" json:"timeOfDay"`
	Notes     string     `db:"notes" json:"notes"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`
}
