package familyhistory

import (
	"time"

	"github.com/google/uuid"
)

// Status of a reported family condition.
var ValidStatuses = map[string]bool{
	"unknown": true, "confirmed": true, "suspected": true,
	"deceased": true, "resolved": true,
}

// Family members a condition can be reported for.
var ValidRelationships = map[string]bool{
	"Mother": true, "Father": true, "Sister": true, "Brother": true,
	"Maternal Grandmother": true, "Maternal Grandfather": true,
	"Paternal Grandmother": true, "Paternal Grandfather": true,
	"Maternal Aunt": true, "Maternal Uncle": true,
	"Paternal Aunt": true, "Paternal Uncle": true,
	"Daughter": true, "Son": true, "Cousin": true,
}

// FamilyHistory maps to the family_history table. AgeOfOnset is entered as
// text and persisted as an integer, or NULL when left blank.
type FamilyHistory struct {
	ID            uuid.UUID `db:"id" json:"id"`
	PatientID     uuid.UUID `db:"patient_id" json:"patient_id"`
	Relationship  string    `db:"relationship" json:"relationship"`
	ConditionName string    `db:"condition_name" json:"condition_name"`
	AgeOfOnset    *int      `db:"age_of_onset" json:"age_of_onset,omitempty"`
	Status        string    `db:"status" json:"status"`
	Notes         *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type NewFamilyHistory struct {
	PatientID     uuid.UUID
	Relationship  string
	ConditionName string
	AgeOfOnset    *int
	Status        string
	Notes         *string
}
