package forms

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medichart/medichart/internal/domain/familyhistory"
)

// FamilyHistoryForm records a condition reported in a patient's family.
// AgeOfOnset is text input coerced to an integer, NULL when blank.
type FamilyHistoryForm struct {
	PatientID     uuid.UUID
	Relationship  string
	ConditionName string
	AgeOfOnset    string
	Status        string
	Notes         string

	state  State
	err    error
	result *familyhistory.FamilyHistory

	svc *familyhistory.Service
	log zerolog.Logger
}

func NewFamilyHistoryForm(svc *familyhistory.Service, log zerolog.Logger, patientID uuid.UUID) *FamilyHistoryForm {
	return &FamilyHistoryForm{
		PatientID: patientID,
		state:     StateEditing,
		svc:       svc,
		log:       log,
	}
}

func (f *FamilyHistoryForm) State() State                         { return f.state }
func (f *FamilyHistoryForm) Err() error                           { return f.err }
func (f *FamilyHistoryForm) Result() *familyhistory.FamilyHistory { return f.result }

func (f *FamilyHistoryForm) Submit(ctx context.Context) error {
	if err := validate(validation.Errors{
		"relationship":   validation.Validate(f.Relationship, validation.Required),
		"condition_name": validation.Validate(f.ConditionName, validation.Required),
	}); err != nil {
		f.err = err
		return err
	}

	ageOfOnset, err := parseOptionalInt("age_of_onset", f.AgeOfOnset)
	if err != nil {
		f.err = err
		return err
	}

	f.state = StateSubmitting
	fh, err := f.svc.CreateFamilyHistory(ctx, familyhistory.NewFamilyHistory{
		PatientID:     f.PatientID,
		Relationship:  f.Relationship,
		ConditionName: f.ConditionName,
		AgeOfOnset:    ageOfOnset,
		Status:        f.Status,
		Notes:         optionalString(f.Notes),
	})
	if err != nil {
		f.state = StateFailed
		f.err = err
		f.log.Error().Err(err).Msg("family history form submit failed")
		return err
	}

	f.state = StateSuccess
	f.err = nil
	f.result = fh
	return nil
}
