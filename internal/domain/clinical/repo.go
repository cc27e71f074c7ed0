package clinical

import (
	"context"

	"github.com/google/uuid"
)

// Child records are insert-only: no update or delete operations exist for
// them anywhere in the system. ListByPatient returns an empty result, never
// an error, when the patient has no rows.

// MedicalRecordRepository lists records by visit_date descending.
type MedicalRecordRepository interface {
	Create(ctx context.Context, n NewMedicalRecord) (*MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*MedicalRecord, error)
}

// PrescriptionRepository lists records by prescribed_date descending.
type PrescriptionRepository interface {
	Create(ctx context.Context, n NewPrescription) (*Prescription, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Prescription, error)
}

// ChronicConditionRepository lists records by created_at descending.
type ChronicConditionRepository interface {
	Create(ctx context.Context, n NewChronicCondition) (*ChronicCondition, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*ChronicCondition, error)
}
