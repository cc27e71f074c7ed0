package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no patient row exists for the given id.
var ErrNotFound = errors.New("patient not found")

// Repository defines store operations for Patient rows. Patient is the only
// entity with an update path; children are insert-only.
type Repository interface {
	Create(ctx context.Context, n NewPatient) (*Patient, error)
	Update(ctx context.Context, id uuid.UUID, n NewPatient) (*Patient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	// List returns all patients ordered by created_at descending. No rows is
	// an empty result, never an error.
	List(ctx context.Context) ([]*Patient, error)
}
