package model

import (
	"time"
)

const (
	MoodMin = 1
	MoodMax = 3
)

// Mood is unique per (UserID, Date).
type Mood struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"userId"`
	Mood      int       `db:"mood" json:"mood"`
	Date      Date      `db:"date" json:"date"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
