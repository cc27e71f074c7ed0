package documents

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines store operations for Document rows. Inserts only;
// ListByPatient orders by uploaded_at descending.
type Repository interface {
	Create(ctx context.Context, n NewDocument) (*Document, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Document, error)
}
