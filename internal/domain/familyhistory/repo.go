package familyhistory

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines store operations for FamilyHistory rows. Inserts only;
// ListByPatient orders by created_at descending.
type Repository interface {
	Create(ctx context.Context, n NewFamilyHistory) (*FamilyHistory, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*FamilyHistory, error)
}
