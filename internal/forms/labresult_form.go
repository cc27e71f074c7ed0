package forms

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medichart/medichart/internal/domain/diagnostics"
)

// LabResultForm records a laboratory test result for one patient.
type LabResultForm struct {
	PatientID          uuid.UUID
	TestName           string
	TestCategory       string
	TestDate           string
	OrderedBy          string
	ResultValue        string
	ResultUnit         string
	ReferenceRange     string
	Status             string
	LabName            string
	LabReferenceNumber string
	Notes              string

	state  State
	err    error
	result *diagnostics.LabResult

	svc *diagnostics.Service
	log zerolog.Logger
}

func NewLabResultForm(svc *diagnostics.Service, log zerolog.Logger, patientID uuid.UUID) *LabResultForm {
	return &LabResultForm{
		PatientID: patientID,
		TestDate:  today(),
		state:     StateEditing,
		svc:       svc,
		log:       log,
	}
}

func (f *LabResultForm) State() State                   { return f.state }
func (f *LabResultForm) Err() error                     { return f.err }
func (f *LabResultForm) Result() *diagnostics.LabResult { return f.result }

func (f *LabResultForm) Submit(ctx context.Context) error {
	if err := validate(validation.Errors{
		"test_name":  validation.Validate(f.TestName, validation.Required),
		"test_date":  validation.Validate(f.TestDate, validation.Required),
		"ordered_by": validation.Validate(f.OrderedBy, validation.Required),
	}); err != nil {
		f.err = err
		return err
	}

	testDate, err := parseDate("test_date", f.TestDate)
	if err != nil {
		f.err = err
		return err
	}

	f.state = StateSubmitting
	lr, err := f.svc.CreateLabResult(ctx, diagnostics.NewLabResult{
		PatientID:          f.PatientID,
		TestName:           f.TestName,
		TestCategory:       f.TestCategory,
		TestDate:           testDate,
		OrderedBy:          f.OrderedBy,
		ResultValue:        optionalString(f.ResultValue),
		ResultUnit:         optionalString(f.ResultUnit),
		ReferenceRange:     optionalString(f.ReferenceRange),
		Status:             f.Status,
		LabName:            optionalString(f.LabName),
		LabReferenceNumber: optionalString(f.LabReferenceNumber),
		Notes:              optionalString(f.Notes),
	})
	if err != nil {
		f.state = StateFailed
		f.err = err
		f.log.Error().Err(err).Msg("lab result form submit failed")
		return err
	}

	f.state = StateSuccess
	f.err = nil
	f.result = lr
	return nil
}
