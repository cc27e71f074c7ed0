package forms

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medichart/medichart/internal/domain/clinical"
)

// MedicalRecordForm records a clinical visit for one patient.
type MedicalRecordForm struct {
	PatientID  uuid.UUID
	DoctorName string
	VisitDate  string
	Diagnosis  string
	Symptoms   string
	Treatment  string
	Notes      string

	state  State
	err    error
	result *clinical.MedicalRecord

	svc *clinical.Service
	log zerolog.Logger
}

func NewMedicalRecordForm(svc *clinical.Service, log zerolog.Logger, patientID uuid.UUID) *MedicalRecordForm {
	return &MedicalRecordForm{
		PatientID: patientID,
		VisitDate: today(),
		state:     StateEditing,
		svc:       svc,
		log:       log,
	}
}

func (f *MedicalRecordForm) State() State                    { return f.state }
func (f *MedicalRecordForm) Err() error                      { return f.err }
func (f *MedicalRecordForm) Result() *clinical.MedicalRecord { return f.result }

func (f *MedicalRecordForm) Submit(ctx context.Context) error {
	if err := validate(validation.Errors{
		"doctor_name": validation.Validate(f.DoctorName, validation.Required),
		"visit_date":  validation.Validate(f.VisitDate, validation.Required),
	}); err != nil {
		f.err = err
		return err
	}

	visitDate, err := parseDate("visit_date", f.VisitDate)
	if err != nil {
		f.err = err
		return err
	}

	f.state = StateSubmitting
	rec, err := f.svc.CreateMedicalRecord(ctx, clinical.NewMedicalRecord{
		PatientID:  f.PatientID,
		DoctorName: f.DoctorName,
		VisitDate:  visitDate,
		Diagnosis:  optionalString(f.Diagnosis),
		Symptoms:   optionalString(f.Symptoms),
		Treatment:  optionalString(f.Treatment),
		Notes:      optionalString(f.Notes),
	})
	if err != nil {
		f.state = StateFailed
		f.err = err
		f.log.Error().Err(err).Msg("medical record form submit failed")
		return err
	}

	f.state = StateSuccess
	f.err = nil
	f.result = rec
	return nil
}
