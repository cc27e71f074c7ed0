package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service provides business logic for the Patient root entity.
type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func validateNewPatient(n NewPatient) error {
	if n.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if n.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	if n.DateOfBirth.IsZero() {
		return fmt.Errorf("date_of_birth is required")
	}
	if n.Gender == "" {
		return fmt.Errorf("gender is required")
	}
	return nil
}

func (s *Service) CreatePatient(ctx context.Context, n NewPatient) (*Patient, error) {
	if err := validateNewPatient(n); err != nil {
		return nil, err
	}
	return s.patients.Create(ctx, n)
}

func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, n NewPatient) (*Patient, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("patient id is required")
	}
	if err := validateNewPatient(n); err != nil {
		return nil, err
	}
	return s.patients.Update(ctx, id, n)
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.patients.List(ctx)
}
