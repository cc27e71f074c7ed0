package diagnostics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medichart/medichart/pkg/clinicalc"
)

// Service provides business logic for the diagnostics domain.
type Service struct {
	labs   LabResultRepository
	vitals VitalSignsRepository
}

func NewService(labs LabResultRepository, vitals VitalSignsRepository) *Service {
	return &Service{labs: labs, vitals: vitals}
}

func (s *Service) CreateLabResult(ctx context.Context, n NewLabResult) (*LabResult, error) {
	if n.PatientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if n.TestName == "" {
		return nil, fmt.Errorf("test_name is required")
	}
	if n.TestDate.IsZero() {
		return nil, fmt.Errorf("test_date is required")
	}
	if n.OrderedBy == "" {
		return nil, fmt.Errorf("ordered_by is required")
	}
	if n.TestCategory == "" {
		n.TestCategory = "general"
	}
	if !ValidTestCategories[n.TestCategory] {
		return nil, fmt.Errorf("invalid test_category: %s", n.TestCategory)
	}
	if n.Status == "" {
		n.Status = "normal"
	}
	if !ValidLabStatuses[n.Status] {
		return nil, fmt.Errorf("invalid status: %s", n.Status)
	}
	return s.labs.Create(ctx, n)
}

func (s *Service) ListLabResults(ctx context.Context, patientID uuid.UUID) ([]*LabResult, error) {
	return s.labs.ListByPatient(ctx, patientID)
}

// CreateVitalSigns persists one reading. BMI is derived here, exactly once,
// when both height and weight are present; there is no edit path that would
// ever recompute it.
func (s *Service) CreateVitalSigns(ctx context.Context, n NewVitalSigns) (*VitalSigns, error) {
	if n.PatientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if n.RecordedBy == "" {
		return nil, fmt.Errorf("recorded_by is required")
	}
	if n.RecordedDate.IsZero() {
		return nil, fmt.Errorf("recorded_date is required")
	}

	var bmi *float64
	if n.HeightCm != nil && n.WeightKg != nil {
		if v, ok := clinicalc.BMI(float64(*n.HeightCm), *n.WeightKg); ok {
			bmi = &v
		}
	}
	return s.vitals.Create(ctx, n, bmi)
}

func (s *Service) ListVitalSigns(ctx context.Context, patientID uuid.UUID) ([]*VitalSigns, error) {
	return s.vitals.ListByPatient(ctx, patientID)
}
