package immunization

import (
	"time"

	"github.com/google/uuid"
)

// Body sites a dose can be administered at.
var ValidSites = map[string]bool{
	"left arm": true, "right arm": true, "left thigh": true, "right thigh": true,
	"left deltoid": true, "right deltoid": true, "oral": true, "nasal": true,
}

// Immunization maps to the immunizations table.
type Immunization struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	PatientID          uuid.UUID  `db:"patient_id" json:"patient_id"`
	VaccineName        string     `db:"vaccine_name" json:"vaccine_name"`
	VaccineType        *string    `db:"vaccine_type" json:"vaccine_type,omitempty"`
	AdministrationDate time.Time  `db:"administration_date" json:"administration_date"`
	AdministeredBy     string     `db:"administered_by" json:"administered_by"`
	Manufacturer       *string    `db:"manufacturer" json:"manufacturer,omitempty"`
	LotNumber          *string    `db:"lot_number" json:"lot_number,omitempty"`
	ExpirationDate     *time.Time `db:"expiration_date" json:"expiration_date,omitempty"`
	DoseNumber         int        `db:"dose_number" json:"dose_number"`
	AdministrationSite string     `db:"administration_site" json:"administration_site"`
	AdverseReactions   *string    `db:"adverse_reactions" json:"adverse_reactions,omitempty"`
	NextDoseDue        *time.Time `db:"next_dose_due" json:"next_dose_due,omitempty"`
	Notes              *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
}

type NewImmunization struct {
	PatientID          uuid.UUID
	VaccineName        string
	VaccineType        *string
	AdministrationDate time.Time
	AdministeredBy     string
	Manufacturer       *string
	LotNumber          *string
	ExpirationDate     *time.Time
	DoseNumber         int
	AdministrationSite string
	AdverseReactions   *string
	NextDoseDue        *time.Time
	Notes              *string
}
