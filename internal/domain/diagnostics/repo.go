package diagnostics

import (
	"context"

	"github.com/google/uuid"
)

// LabResultRepository lists records by test_date descending.
type LabResultRepository interface {
	Create(ctx context.Context, n NewLabResult) (*LabResult, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*LabResult, error)
}

// VitalSignsRepository lists records by recorded_date descending. Note that
// the insert carries the bmi the service derived: the repository persists it
// verbatim and never recomputes it.
type VitalSignsRepository interface {
	Create(ctx context.Context, n NewVitalSigns, bmi *float64) (*VitalSigns, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*VitalSigns, error)
}
