package forms

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medichart/medichart/internal/domain/clinical"
)

// ChronicConditionForm records a long-running condition for one patient.
// Severity and status are left blank by most users and default downstream.
type ChronicConditionForm struct {
	PatientID     uuid.UUID
	ConditionName string
	ICD10Code     string
	DiagnosedDate string
	DiagnosedBy   string
	Severity      string
	Status        string
	TreatmentPlan string
	Notes         string

	state  State
	err    error
	result *clinical.ChronicCondition

	svc *clinical.Service
	log zerolog.Logger
}

func NewChronicConditionForm(svc *clinical.Service, log zerolog.Logger, patientID uuid.UUID) *ChronicConditionForm {
	return &ChronicConditionForm{
		PatientID: patientID,
		state:     StateEditing,
		svc:       svc,
		log:       log,
	}
}

func (f *ChronicConditionForm) State() State                       { return f.state }
func (f *ChronicConditionForm) Err() error                         { return f.err }
func (f *ChronicConditionForm) Result() *clinical.ChronicCondition { return f.result }

func (f *ChronicConditionForm) Submit(ctx context.Context) error {
	if err := validate(validation.Errors{
		"condition_name": validation.Validate(f.ConditionName, validation.Required),
	}); err != nil {
		f.err = err
		return err
	}

	diagnosedDate, err := parseOptionalDate("diagnosed_date", f.DiagnosedDate)
	if err != nil {
		f.err = err
		return err
	}

	f.state = StateSubmitting
	cc, err := f.svc.CreateChronicCondition(ctx, clinical.NewChronicCondition{
		PatientID:     f.PatientID,
		ConditionName: f.ConditionName,
		ICD10Code:     optionalString(f.ICD10Code),
		DiagnosedDate: diagnosedDate,
		DiagnosedBy:   optionalString(f.DiagnosedBy),
		Severity:      f.Severity,
		Status:        f.Status,
		TreatmentPlan: optionalString(f.TreatmentPlan),
		Notes:         optionalString(f.Notes),
	})
	if err != nil {
		f.state = StateFailed
		f.err = err
		f.log.Error().Err(err).Msg("chronic condition form submit failed")
		return err
	}

	f.state = StateSuccess
	f.err = nil
	f.result = cc
	return nil
}
