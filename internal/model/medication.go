package model

import (
	"time"
)

type Medication struct {
	ID             string     `db:"id" json:"id"`
	UserID         string     `db:"user_id" json:"userId"`
	MedicationName string     `db:"medication_name" json:"medicationName"`
	Dosage         string     `db:"dosage" json:"dosage"`
	TimeOfTheDay   string     `db:"time_of_the_day" json:"timeOfTheDay"`
	Date           Date       `db:"date" json:"date"`
	Effects        StringList `db:"effects" json:"effects"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updatedAt"`
}

// MedicationEntry is the projection returned by date lookups.
type MedicationEntry struct {
	ID             string     `db:"id" json:"id"`
	MedicationName string     `db:"medication_name" json:"medicationName"`
	Dosage         string     `db:"dosage" json:"dosage"`
	TimeOfTheDay   string     `db:"time_of_the_day" json:"timeOfTheDay"`
	Effects        StringList `db:"effects" json:"effects"`
}
