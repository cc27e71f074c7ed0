package views

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medichart/medichart/internal/domain/chart"
)

// Tab identifies one section of the detail view.
type Tab string

const (
	TabOverview          Tab = "overview"
	TabMedicalRecords    Tab = "medical_records"
	TabPrescriptions     Tab = "prescriptions"
	TabDocuments         Tab = "documents"
	TabVitalSigns        Tab = "vital_signs"
	TabChronicConditions Tab = "chronic_conditions"
	TabLabResults        Tab = "lab_results"
	TabImmunizations     Tab = "immunizations"
	TabFamilyHistory     Tab = "family_history"
)

// Tabs in display order.
var Tabs = []Tab{
	TabOverview, TabMedicalRecords, TabPrescriptions, TabDocuments,
	TabVitalSigns, TabChronicConditions, TabLabResults,
	TabImmunizations, TabFamilyHistory,
}

// PatientDetail is the per-patient screen: the aggregate chart plus which
// tab is showing. Saving any child record reloads the whole aggregate so
// every count stays consistent.
type PatientDetail struct {
	loader    *chart.Loader
	patientID uuid.UUID
	chart     *chart.Chart
	active    Tab
}

func NewPatientDetail(loader *chart.Loader, patientID uuid.UUID) *PatientDetail {
	return &PatientDetail{
		loader:    loader,
		patientID: patientID,
		active:    TabOverview,
	}
}

// Load fetches the aggregate. Must succeed before any accessor is used.
func (d *PatientDetail) Load(ctx context.Context) error {
	c, err := d.loader.Load(ctx, d.patientID)
	if err != nil {
		return err
	}
	d.chart = c
	return nil
}

// Reload refetches everything, including collections whose earlier fetch
// degraded to empty.
func (d *PatientDetail) Reload(ctx context.Context) error {
	return d.Load(ctx)
}

// OnChildSaved is called after any successful form submit for this patient.
func (d *PatientDetail) OnChildSaved(ctx context.Context) error {
	return d.Reload(ctx)
}

func (d *PatientDetail) Chart() *chart.Chart { return d.chart }
func (d *PatientDetail) ActiveTab() Tab      { return d.active }

func (d *PatientDetail) SetTab(t Tab) {
	d.active = t
}

// Count returns the number of records behind a tab, for tab badges. The
// overview tab has no count.
func (d *PatientDetail) Count(t Tab) int {
	if d.chart == nil {
		return 0
	}
	switch t {
	case TabMedicalRecords:
		return len(d.chart.MedicalRecords)
	case TabPrescriptions:
		return len(d.chart.Prescriptions)
	case TabDocuments:
		return len(d.chart.Documents)
	case TabVitalSigns:
		return len(d.chart.VitalSigns)
	case TabChronicConditions:
		return len(d.chart.ChronicConditions)
	case TabLabResults:
		return len(d.chart.LabResults)
	case TabImmunizations:
		return len(d.chart.Immunizations)
	case TabFamilyHistory:
		return len(d.chart.FamilyHistory)
	default:
		return 0
	}
}

// Header summarizes the patient for the top of the screen.
func (d *PatientDetail) Header() string {
	if d.chart == nil {
		return ""
	}
	p := d.chart.Patient
	return fmt.Sprintf("%s, %d, %s", p.FullName(), d.chart.Age, p.Gender)
}
