// Package diagnostics holds measurement-driven record types: lab results and
// vital sign readings.
package diagnostics

import (
	"time"

	"github.com/google/uuid"
)

// LabResult result flags.
var ValidLabStatuses = map[string]bool{
	"normal": true, "abnormal": true, "high": true,
	"low": true, "critical": true, "pending": true,
}

// LabResult test categories.
var ValidTestCategories = map[string]bool{
	"general": true, "blood_chemistry": true, "hematology": true,
	"lipid_panel": true, "liver_function": true, "kidney_function": true,
	"thyroid_function": true, "cardiac_markers": true, "diabetes_markers": true,
	"inflammatory_markers": true, "tumor_markers": true, "hormones": true,
	"vitamins": true, "microbiology": true, "pathology": true,
}

// LabResult maps to the lab_results table.
type LabResult struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	PatientID          uuid.UUID `db:"patient_id" json:"patient_id"`
	TestName           string    `db:"test_name" json:"test_name"`
	TestCategory       string    `db:"test_category" json:"test_category"`
	TestDate           time.Time `db:"test_date" json:"test_date"`
	OrderedBy          string    `db:"ordered_by" json:"ordered_by"`
	ResultValue        *string   `db:"result_value" json:"result_value,omitempty"`
	ResultUnit         *string   `db:"result_unit" json:"result_unit,omitempty"`
	ReferenceRange     *string   `db:"reference_range" json:"reference_range,omitempty"`
	Status             string    `db:"status" json:"status"`
	LabName            *string   `db:"lab_name" json:"lab_name,omitempty"`
	LabReferenceNumber *string   `db:"lab_reference_number" json:"lab_reference_number,omitempty"`
	Notes              *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

type NewLabResult struct {
	PatientID          uuid.UUID
	TestName           string
	TestCategory       string
	TestDate           time.Time
	OrderedBy          string
	ResultValue        *string
	ResultUnit         *string
	ReferenceRange     *string
	Status             string
	LabName            *string
	LabReferenceNumber *string
	Notes              *string
}

// VitalSigns maps to the vital_signs table. All measurements are optional;
// a blank entry in the form persists as NULL, never as zero. BMI is derived
// once at creation time from height and weight and is never recomputed.
type VitalSigns struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	PatientID          uuid.UUID `db:"patient_id" json:"patient_id"`
	RecordedDate       time.Time `db:"recorded_date" json:"recorded_date"`
	RecordedBy         string    `db:"recorded_by" json:"recorded_by"`
	SystolicBP         *int      `db:"systolic_bp" json:"systolic_bp,omitempty"`
	DiastolicBP        *int      `db:"diastolic_bp" json:"diastolic_bp,omitempty"`
	HeartRate          *int      `db:"heart_rate" json:"heart_rate,omitempty"`
	RespiratoryRate    *int      `db:"respiratory_rate" json:"respiratory_rate,omitempty"`
	TemperatureCelsius *float64  `db:"temperature_celsius" json:"temperature_celsius,omitempty"`
	OxygenSaturation   *int      `db:"oxygen_saturation" json:"oxygen_saturation,omitempty"`
	BloodGlucose       *int      `db:"blood_glucose" json:"blood_glucose,omitempty"`
	HeightCm           *int      `db:"height_cm" json:"height_cm,omitempty"`
	WeightKg           *float64  `db:"weight_kg" json:"weight_kg,omitempty"`
	BMI                *float64  `db:"bmi" json:"bmi,omitempty"`
	Notes              *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

type NewVitalSigns struct {
	PatientID          uuid.UUID
	RecordedDate       time.Time
	RecordedBy         string
	SystolicBP         *int
	DiastolicBP        *int
	HeartRate          *int
	RespiratoryRate    *int
	TemperatureCelsius *float64
	OxygenSaturation   *int
	BloodGlucose       *int
	HeightCm           *int
	WeightKg           *float64
	Notes              *string
}
