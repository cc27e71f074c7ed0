package familyhistory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service provides business logic for the FamilyHistory domain.
type Service struct {
	histories Repository
}

func NewService(histories Repository) *Service {
	return &Service{histories: histories}
}

func (s *Service) CreateFamilyHistory(ctx context.Context, n NewFamilyHistory) (*FamilyHistory, error) {
	if n.PatientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if n.Relationship == "" {
		return nil, fmt.Errorf("relationship is required")
	}
	if !ValidRelationships[n.Relationship] {
		return nil, fmt.Errorf("invalid relationship: %s", n.Relationship)
	}
	if n.ConditionName == "" {
		return nil, fmt.Errorf("condition_name is required")
	}
	if n.Status == "" {
		n.Status = "unknown"
	}
	if !ValidStatuses[n.Status] {
		return nil, fmt.Errorf("invalid status: %s", n.Status)
	}
	if n.AgeOfOnset != nil && (*n.AgeOfOnset < 0 || *n.AgeOfOnset > 120) {
		return nil, fmt.Errorf("age_of_onset must be between 0 and 120, got %d", *n.AgeOfOnset)
	}
	return s.histories.Create(ctx, n)
}

func (s *Service) ListFamilyHistory(ctx context.Context, patientID uuid.UUID) ([]*FamilyHistory, error) {
	return s.histories.ListByPatient(ctx, patientID)
}
