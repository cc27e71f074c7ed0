package immunization

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines store operations for Immunization rows. Inserts only;
// ListByPatient orders by administration_date descending.
type Repository interface {
	Create(ctx context.Context, n NewImmunization) (*Immunization, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Immunization, error)
}
