package immunization

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service provides business logic for the Immunization domain.
type Service struct {
	immunizations Repository
}

func NewService(immunizations Repository) *Service {
	return &Service{immunizations: immunizations}
}

func (s *Service) CreateImmunization(ctx context.Context, n NewImmunization) (*Immunization, error) {
	if n.PatientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if n.VaccineName == "" {
		return nil, fmt.Errorf("vaccine_name is required")
	}
	if n.AdministrationDate.IsZero() {
		return nil, fmt.Errorf("administration_date is required")
	}
	if n.AdministeredBy == "" {
		return nil, fmt.Errorf("administered_by is required")
	}
	if n.DoseNumber < 1 {
		return nil, fmt.Errorf("dose_number must be at least 1, got %d", n.DoseNumber)
	}
	if n.AdministrationSite == "" {
		n.AdministrationSite = "left arm"
	}
	if !ValidSites[n.AdministrationSite] {
		return nil, fmt.Errorf("invalid administration_site: %s", n.AdministrationSite)
	}
	return s.immunizations.Create(ctx, n)
}

func (s *Service) ListImmunizations(ctx context.Context, patientID uuid.UUID) ([]*Immunization, error) {
	return s.immunizations.ListByPatient(ctx, patientID)
}
