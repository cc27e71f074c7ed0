package forms

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medichart/medichart/internal/domain/patient"
)

// PatientForm creates or edits a patient. An edit form is prefilled from the
// existing row and submits through the update path; everything else is a
// create.
type PatientForm struct {
	FirstName             string
	LastName              string
	DateOfBirth           string
	Gender                string
	Phone                 string
	Email                 string
	Address               string
	EmergencyContactName  string
	EmergencyContactPhone string
	BloodType             string
	Allergies             string

	editID uuid.UUID

	state  State
	err    error
	result *patient.Patient

	svc *patient.Service
	log zerolog.Logger
}

func NewPatientForm(svc *patient.Service, log zerolog.Logger) *PatientForm {
	return &PatientForm{state: StateEditing, svc: svc, log: log}
}

// EditPatientForm returns a form prefilled from p whose Submit updates the
// existing row instead of inserting a new one.
func EditPatientForm(svc *patient.Service, log zerolog.Logger, p *patient.Patient) *PatientForm {
	f := NewPatientForm(svc, log)
	f.editID = p.ID
	f.FirstName = p.FirstName
	f.LastName = p.LastName
	f.DateOfBirth = p.DateOfBirth.Format(dateLayout)
	f.Gender = p.Gender
	f.Phone = deref(p.Phone)
	f.Email = deref(p.Email)
	f.Address = deref(p.Address)
	f.EmergencyContactName = deref(p.EmergencyContactName)
	f.EmergencyContactPhone = deref(p.EmergencyContactPhone)
	f.BloodType = deref(p.BloodType)
	f.Allergies = deref(p.Allergies)
	return f
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (f *PatientForm) State() State             { return f.state }
func (f *PatientForm) Err() error               { return f.err }
func (f *PatientForm) Result() *patient.Patient { return f.result }

func (f *PatientForm) Submit(ctx context.Context) error {
	if err := validate(validation.Errors{
		"first_name":    validation.Validate(f.FirstName, validation.Required),
		"last_name":     validation.Validate(f.LastName, validation.Required),
		"date_of_birth": validation.Validate(f.DateOfBirth, validation.Required),
		"gender":        validation.Validate(f.Gender, validation.Required),
	}); err != nil {
		f.err = err
		return err
	}

	dob, err := parseDate("date_of_birth", f.DateOfBirth)
	if err != nil {
		f.err = err
		return err
	}

	n := patient.NewPatient{
		FirstName:             f.FirstName,
		LastName:              f.LastName,
		DateOfBirth:           dob,
		Gender:                f.Gender,
		Phone:                 optionalString(f.Phone),
		Email:                 optionalString(f.Email),
		Address:               optionalString(f.Address),
		EmergencyContactName:  optionalString(f.EmergencyContactName),
		EmergencyContactPhone: optionalString(f.EmergencyContactPhone),
		BloodType:             optionalString(f.BloodType),
		Allergies:             optionalString(f.Allergies),
	}

	f.state = StateSubmitting
	var p *patient.Patient
	if f.editID != uuid.Nil {
		p, err = f.svc.UpdatePatient(ctx, f.editID, n)
	} else {
		p, err = f.svc.CreatePatient(ctx, n)
	}
	if err != nil {
		f.state = StateFailed
		f.err = err
		f.log.Error().Err(err).Msg("patient form submit failed")
		return err
	}

	f.state = StateSuccess
	f.err = nil
	f.result = p
	return nil
}
