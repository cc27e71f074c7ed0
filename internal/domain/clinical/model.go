// Package clinical holds the visit-driven record types: medical records,
// the prescriptions written against them, and chronic condition entries.
package clinical

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord maps to the medical_records table.
type MedicalRecord struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PatientID  uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorName string    `db:"doctor_name" json:"doctor_name"`
	VisitDate  time.Time `db:"visit_date" json:"visit_date"`
	Diagnosis  *string   `db:"diagnosis" json:"diagnosis,omitempty"`
	Symptoms   *string   `db:"symptoms" json:"symptoms,omitempty"`
	Treatment  *string   `db:"treatment" json:"treatment,omitempty"`
	Notes      *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// NewMedicalRecord is the insert shape; the store assigns id and created_at.
type NewMedicalRecord struct {
	PatientID  uuid.UUID
	DoctorName string
	VisitDate  time.Time
	Diagnosis  *string
	Symptoms   *string
	Treatment  *string
	Notes      *string
}

// Prescription maps to the prescriptions table. MedicalRecordID is a weak
// back-reference that is reserved but never populated or read anywhere.
type Prescription struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	PatientID       uuid.UUID  `db:"patient_id" json:"patient_id"`
	MedicalRecordID *uuid.UUID `db:"medical_record_id" json:"medical_record_id,omitempty"`
	MedicationName  string     `db:"medication_name" json:"medication_name"`
	Dosage          string     `db:"dosage" json:"dosage"`
	Frequency       string     `db:"frequency" json:"frequency"`
	Duration        *string    `db:"duration" json:"duration,omitempty"`
	PrescribedDate  time.Time  `db:"prescribed_date" json:"prescribed_date"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

type NewPrescription struct {
	PatientID       uuid.UUID
	MedicalRecordID *uuid.UUID
	MedicationName  string
	Dosage          string
	Frequency       string
	Duration        *string
	PrescribedDate  time.Time
}

// ChronicCondition severity levels.
var ValidSeverities = map[string]bool{
	"mild": true, "moderate": true, "severe": true, "critical": true,
}

// ChronicCondition lifecycle states.
var ValidConditionStatuses = map[string]bool{
	"active": true, "managed": true, "resolved": true, "inactive": true,
}

// ChronicCondition maps to the chronic_conditions table.
type ChronicCondition struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	PatientID     uuid.UUID  `db:"patient_id" json:"patient_id"`
	ConditionName string     `db:"condition_name" json:"condition_name"`
	ICD10Code     *string    `db:"icd_10_code" json:"icd_10_code,omitempty"`
	DiagnosedDate *time.Time `db:"diagnosed_date" json:"diagnosed_date,omitempty"`
	DiagnosedBy   *string    `db:"diagnosed_by" json:"diagnosed_by,omitempty"`
	Severity      string     `db:"severity" json:"severity"`
	Status        string     `db:"status" json:"status"`
	TreatmentPlan *string    `db:"treatment_plan" json:"treatment_plan,omitempty"`
	Notes         *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

type NewChronicCondition struct {
	PatientID     uuid.UUID
	ConditionName string
	ICD10Code     *string
	DiagnosedDate *time.Time
	DiagnosedBy   *string
	Severity      string
	Status        string
	TreatmentPlan *string
	Notes         *string
}
