// Package chart assembles the full clinical picture of one patient: the
// patient row plus every child collection, fetched concurrently.
package chart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medichart/medichart/internal/domain/clinical"
	"github.com/medichart/medichart/internal/domain/diagnostics"
	"github.com/medichart/medichart/internal/domain/documents"
	"github.com/medichart/medichart/internal/domain/familyhistory"
	"github.com/medichart/medichart/internal/domain/immunization"
	"github.com/medichart/medichart/internal/domain/patient"
	"github.com/medichart/medichart/pkg/clinicalc"
)

// Repositories bundles every store the loader reads from. The loader only
// lists; it never writes.
type Repositories struct {
	Patients          patient.Repository
	MedicalRecords    clinical.MedicalRecordRepository
	Prescriptions     clinical.PrescriptionRepository
	ChronicConditions clinical.ChronicConditionRepository
	LabResults        diagnostics.LabResultRepository
	VitalSigns        diagnostics.VitalSignsRepository
	Immunizations     immunization.Repository
	FamilyHistory     familyhistory.Repository
	Documents         documents.Repository
}

// Chart is the aggregate read model for one patient. Collections are always
// non-nil: a fetch that failed or returned nothing shows up as an empty
// slice, so rendering code never branches on nil.
type Chart struct {
	Patient           *patient.Patient
	Age               int
	MedicalRecords    []*clinical.MedicalRecord
	Prescriptions     []*clinical.Prescription
	ChronicConditions []*clinical.ChronicCondition
	LabResults        []*diagnostics.LabResult
	VitalSigns        []*diagnostics.VitalSigns
	Immunizations     []*immunization.Immunization
	FamilyHistory     []*familyhistory.FamilyHistory
	Documents         []*documents.Document
}

// LatestBMI returns the bmi of the most recent vital signs reading that has
// one, or false when no reading carries a derived bmi.
func (c *Chart) LatestBMI() (float64, bool) {
	for _, v := range c.VitalSigns {
		if v.BMI != nil {
			return *v.BMI, true
		}
	}
	return 0, false
}

// Loader fetches patient aggregates. Safe for concurrent use.
type Loader struct {
	repos Repositories
	log   zerolog.Logger
}

func NewLoader(repos Repositories, log zerolog.Logger) *Loader {
	return &Loader{repos: repos, log: log}
}

// Load fetches the patient row and all eight child collections. The patient
// fetch is the only hard dependency: if it fails the whole load fails. Child
// fetches run concurrently and degrade independently; a failed one is logged
// and its collection comes back empty rather than poisoning the rest.
func (l *Loader) Load(ctx context.Context, patientID uuid.UUID) (*Chart, error) {
	p, err := l.repos.Patients.GetByID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("load patient %s: %w", patientID, err)
	}

	c := &Chart{
		Patient: p,
		Age:     clinicalc.Age(p.DateOfBirth, time.Now()),
	}

	var wg sync.WaitGroup
	fetch := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				l.log.Warn().Err(err).
					Str("patient_id", patientID.String()).
					Str("collection", name).
					Msg("chart collection fetch failed, continuing with empty result")
			}
		}()
	}

	fetch("medical_records", func() error {
		var err error
		c.MedicalRecords, err = l.repos.MedicalRecords.ListByPatient(ctx, patientID)
		return err
	})
	fetch("prescriptions", func() error {
		var err error
		c.Prescriptions, err = l.repos.Prescriptions.ListByPatient(ctx, patientID)
		return err
	})
	fetch("chronic_conditions", func() error {
		var err error
		c.ChronicConditions, err = l.repos.ChronicConditions.ListByPatient(ctx, patientID)
		return err
	})
	fetch("lab_results", func() error {
		var err error
		c.LabResults, err = l.repos.LabResults.ListByPatient(ctx, patientID)
		return err
	})
	fetch("vital_signs", func() error {
		var err error
		c.VitalSigns, err = l.repos.VitalSigns.ListByPatient(ctx, patientID)
		return err
	})
	fetch("immunizations", func() error {
		var err error
		c.Immunizations, err = l.repos.Immunizations.ListByPatient(ctx, patientID)
		return err
	})
	fetch("family_history", func() error {
		var err error
		c.FamilyHistory, err = l.repos.FamilyHistory.ListByPatient(ctx, patientID)
		return err
	})
	fetch("documents", func() error {
		var err error
		c.Documents, err = l.repos.Documents.ListByPatient(ctx, patientID)
		return err
	})

	wg.Wait()

	if c.MedicalRecords == nil {
		c.MedicalRecords = []*clinical.MedicalRecord{}
	}
	if c.Prescriptions == nil {
		c.Prescriptions = []*clinical.Prescription{}
	}
	if c.ChronicConditions == nil {
		c.ChronicConditions = []*clinical.ChronicCondition{}
	}
	if c.LabResults == nil {
		c.LabResults = []*diagnostics.LabResult{}
	}
	if c.VitalSigns == nil {
		c.VitalSigns = []*diagnostics.VitalSigns{}
	}
	if c.Immunizations == nil {
		c.Immunizations = []*immunization.Immunization{}
	}
	if c.FamilyHistory == nil {
		c.FamilyHistory = []*familyhistory.FamilyHistory{}
	}
	if c.Documents == nil {
		c.Documents = []*documents.Document{}
	}

	return c, nil
}
