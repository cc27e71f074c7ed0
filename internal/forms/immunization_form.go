package forms

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medichart/medichart/internal/domain/immunization"
)

// ImmunizationForm records an administered vaccine dose. DoseNumber is text
// input defaulting to "1".
type ImmunizationForm struct {
	PatientID          uuid.UUID
	VaccineName        string
	VaccineType        string
	AdministrationDate string
	AdministeredBy     string
	Manufacturer       string
	LotNumber          string
	ExpirationDate     string
	DoseNumber         string
	AdministrationSite string
	AdverseReactions   string
	NextDoseDue        string
	Notes              string

	state  State
	err    error
	result *immunization.Immunization

	svc *immunization.Service
	log zerolog.Logger
}

func NewImmunizationForm(svc *immunization.Service, log zerolog.Logger, patientID uuid.UUID) *ImmunizationForm {
	return &ImmunizationForm{
		PatientID:          patientID,
		AdministrationDate: today(),
		DoseNumber:         "1",
		state:              StateEditing,
		svc:                svc,
		log:                log,
	}
}

func (f *ImmunizationForm) State() State                       { return f.state }
func (f *ImmunizationForm) Err() error                         { return f.err }
func (f *ImmunizationForm) Result() *immunization.Immunization { return f.result }

func (f *ImmunizationForm) Submit(ctx context.Context) error {
	if err := validate(validation.Errors{
		"vaccine_name":        validation.Validate(f.VaccineName, validation.Required),
		"administration_date": validation.Validate(f.AdministrationDate, validation.Required),
		"administered_by":     validation.Validate(f.AdministeredBy, validation.Required),
	}); err != nil {
		f.err = err
		return err
	}

	adminDate, err := parseDate("administration_date", f.AdministrationDate)
	if err != nil {
		f.err = err
		return err
	}
	expiration, err := parseOptionalDate("expiration_date", f.ExpirationDate)
	if err != nil {
		f.err = err
		return err
	}
	nextDose, err := parseOptionalDate("next_dose_due", f.NextDoseDue)
	if err != nil {
		f.err = err
		return err
	}

	doseNumber, err := parseOptionalInt("dose_number", f.DoseNumber)
	if err != nil {
		f.err = err
		return err
	}
	dose := 1
	if doseNumber != nil {
		dose = *doseNumber
	}

	f.state = StateSubmitting
	im, err := f.svc.CreateImmunization(ctx, immunization.NewImmunization{
		PatientID:          f.PatientID,
		VaccineName:        f.VaccineName,
		VaccineType:        optionalString(f.VaccineType),
		AdministrationDate: adminDate,
		AdministeredBy:     f.AdministeredBy,
		Manufacturer:       optionalString(f.Manufacturer),
		LotNumber:          optionalString(f.LotNumber),
		ExpirationDate:     expiration,
		DoseNumber:         dose,
		AdministrationSite: f.AdministrationSite,
		AdverseReactions:   optionalString(f.AdverseReactions),
		NextDoseDue:        nextDose,
		Notes:              optionalString(f.Notes),
	})
	if err != nil {
		f.state = StateFailed
		f.err = err
		f.log.Error().Err(err).Msg("immunization form submit failed")
		return err
	}

	f.state = StateSuccess
	f.err = nil
	f.result = im
	return nil
}
