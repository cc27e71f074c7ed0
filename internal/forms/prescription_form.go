package forms

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medichart/medichart/internal/domain/clinical"
)

// PrescriptionForm records a medication prescribed to one patient.
type PrescriptionForm struct {
	PatientID      uuid.UUID
	MedicationName string
	Dosage         string
	Frequency      string
	Duration       string
	PrescribedDate string

	state  State
	err    error
	result *clinical.Prescription

	svc *clinical.Service
	log zerolog.Logger
}

func NewPrescriptionForm(svc *clinical.Service, log zerolog.Logger, patientID uuid.UUID) *PrescriptionForm {
	return &PrescriptionForm{
		PatientID:      patientID,
		PrescribedDate: today(),
		state:          StateEditing,
		svc:            svc,
		log:            log,
	}
}

func (f *PrescriptionForm) State() State                   { return f.state }
func (f *PrescriptionForm) Err() error                     { return f.err }
func (f *PrescriptionForm) Result() *clinical.Prescription { return f.result }

func (f *PrescriptionForm) Submit(ctx context.Context) error {
	if err := validate(validation.Errors{
		"medication_name": validation.Validate(f.MedicationName, validation.Required),
		"dosage":          validation.Validate(f.Dosage, validation.Required),
		"frequency":       validation.Validate(f.Frequency, validation.Required),
		"prescribed_date": validation.Validate(f.PrescribedDate, validation.Required),
	}); err != nil {
		f.err = err
		return err
	}

	prescribedDate, err := parseDate("prescribed_date", f.PrescribedDate)
	if err != nil {
		f.err = err
		return err
	}

	f.state = StateSubmitting
	p, err := f.svc.CreatePrescription(ctx, clinical.NewPrescription{
		PatientID:      f.PatientID,
		MedicationName: f.MedicationName,
		Dosage:         f.Dosage,
		Frequency:      f.Frequency,
		Duration:       optionalString(f.Duration),
		PrescribedDate: prescribedDate,
	})
	if err != nil {
		f.state = StateFailed
		f.err = err
		f.log.Error().Err(err).Msg("prescription form submit failed")
		return err
	}

	f.state = StateSuccess
	f.err = nil
	f.result = p
	return nil
}
