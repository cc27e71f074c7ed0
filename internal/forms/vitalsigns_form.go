package forms

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medichart/medichart/internal/domain/diagnostics"
)

// VitalSignsForm records a set of vital sign measurements. Every measurement
// is optional text input; blank fields persist as NULL. The bmi is derived
// downstream from height and weight, never entered here.
type VitalSignsForm struct {
	PatientID          uuid.UUID
	RecordedDate       string
	RecordedBy         string
	SystolicBP         string
	DiastolicBP        string
	HeartRate          string
	RespiratoryRate    string
	TemperatureCelsius string
	OxygenSaturation   string
	BloodGlucose       string
	HeightCm           string
	WeightKg           string
	Notes              string

	state  State
	err    error
	result *diagnostics.VitalSigns

	svc *diagnostics.Service
	log zerolog.Logger
}

func NewVitalSignsForm(svc *diagnostics.Service, log zerolog.Logger, patientID uuid.UUID) *VitalSignsForm {
	return &VitalSignsForm{
		PatientID:    patientID,
		RecordedDate: today(),
		state:        StateEditing,
		svc:          svc,
		log:          log,
	}
}

func (f *VitalSignsForm) State() State                    { return f.state }
func (f *VitalSignsForm) Err() error                      { return f.err }
func (f *VitalSignsForm) Result() *diagnostics.VitalSigns { return f.result }

func (f *VitalSignsForm) Submit(ctx context.Context) error {
	if err := validate(validation.Errors{
		"recorded_date": validation.Validate(f.RecordedDate, validation.Required),
		"recorded_by":   validation.Validate(f.RecordedBy, validation.Required),
	}); err != nil {
		f.err = err
		return err
	}

	recordedDate, err := parseDate("recorded_date", f.RecordedDate)
	if err != nil {
		f.err = err
		return err
	}

	n := diagnostics.NewVitalSigns{
		PatientID:    f.PatientID,
		RecordedDate: recordedDate,
		RecordedBy:   f.RecordedBy,
		Notes:        optionalString(f.Notes),
	}
	if n.SystolicBP, err = parseOptionalInt("systolic_bp", f.SystolicBP); err != nil {
		f.err = err
		return err
	}
	if n.DiastolicBP, err = parseOptionalInt("diastolic_bp", f.DiastolicBP); err != nil {
		f.err = err
		return err
	}
	if n.HeartRate, err = parseOptionalInt("heart_rate", f.HeartRate); err != nil {
		f.err = err
		return err
	}
	if n.RespiratoryRate, err = parseOptionalInt("respiratory_rate", f.RespiratoryRate); err != nil {
		f.err = err
		return err
	}
	if n.TemperatureCelsius, err = parseOptionalFloat("temperature_celsius", f.TemperatureCelsius); err != nil {
		f.err = err
		return err
	}
	if n.OxygenSaturation, err = parseOptionalInt("oxygen_saturation", f.OxygenSaturation); err != nil {
		f.err = err
		return err
	}
	if n.BloodGlucose, err = parseOptionalInt("blood_glucose", f.BloodGlucose); err != nil {
		f.err = err
		return err
	}
	if n.HeightCm, err = parseOptionalInt("height_cm", f.HeightCm); err != nil {
		f.err = err
		return err
	}
	if n.WeightKg, err = parseOptionalFloat("weight_kg", f.WeightKg); err != nil {
		f.err = err
		return err
	}

	f.state = StateSubmitting
	vs, err := f.svc.CreateVitalSigns(ctx, n)
	if err != nil {
		f.state = StateFailed
		f.err = err
		f.log.Error().Err(err).Msg("vital signs form submit failed")
		return err
	}

	f.state = StateSuccess
	f.err = nil
	f.result = vs
	return nil
}
