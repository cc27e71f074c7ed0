package clinical

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service provides business logic for the clinical domain.
type Service struct {
	records       MedicalRecordRepository
	prescriptions PrescriptionRepository
	conditions    ChronicConditionRepository
}

func NewService(records MedicalRecordRepository, prescriptions PrescriptionRepository, conditions ChronicConditionRepository) *Service {
	return &Service{records: records, prescriptions: prescriptions, conditions: conditions}
}

func (s *Service) CreateMedicalRecord(ctx context.Context, n NewMedicalRecord) (*MedicalRecord, error) {
	if n.PatientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if n.DoctorName == "" {
		return nil, fmt.Errorf("doctor_name is required")
	}
	if n.VisitDate.IsZero() {
		return nil, fmt.Errorf("visit_date is required")
	}
	return s.records.Create(ctx, n)
}

func (s *Service) ListMedicalRecords(ctx context.Context, patientID uuid.UUID) ([]*MedicalRecord, error) {
	return s.records.ListByPatient(ctx, patientID)
}

func (s *Service) CreatePrescription(ctx context.Context, n NewPrescription) (*Prescription, error) {
	if n.PatientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if n.MedicationName == "" {
		return nil, fmt.Errorf("medication_name is required")
	}
	if n.Dosage == "" {
		return nil, fmt.Errorf("dosage is required")
	}
	if n.Frequency == "" {
		return nil, fmt.Errorf("frequency is required")
	}
	if n.PrescribedDate.IsZero() {
		return nil, fmt.Errorf("prescribed_date is required")
	}
	return s.prescriptions.Create(ctx, n)
}

func (s *Service) ListPrescriptions(ctx context.Context, patientID uuid.UUID) ([]*Prescription, error) {
	return s.prescriptions.ListByPatient(ctx, patientID)
}

func (s *Service) CreateChronicCondition(ctx context.Context, n NewChronicCondition) (*ChronicCondition, error) {
	if n.PatientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if n.ConditionName == "" {
		return nil, fmt.Errorf("condition_name is required")
	}
	if n.Severity == "" {
		n.Severity = "mild"
	}
	if !ValidSeverities[n.Severity] {
		return nil, fmt.Errorf("invalid severity: %s", n.Severity)
	}
	if n.Status == "" {
		n.Status = "active"
	}
	if !ValidConditionStatuses[n.Status] {
		return nil, fmt.Errorf("invalid status: %s", n.Status)
	}
	return s.conditions.Create(ctx, n)
}

func (s *Service) ListChronicConditions(ctx context.Context, patientID uuid.UUID) ([]*ChronicCondition, error) {
	return s.conditions.ListByPatient(ctx, patientID)
}
