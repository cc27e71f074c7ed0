package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/medichart/medichart/internal/domain/clinical"
	"github.com/medichart/medichart/internal/domain/diagnostics"
	"github.com/medichart/medichart/internal/domain/patient"
)

func createTestPatient(t *testing.T, ctx context.Context) *patient.Patient {
	t.Helper()
	repo := patient.NewRepoPG(globalPool)
	p, err := repo.Create(ctx, patient.NewPatient{
		FirstName:   "Integration",
		LastName:    "Patient",
		DateOfBirth: time.Date(1985, 3, 20, 0, 0, 0, 0, time.UTC),
		Gender:      "female",
	})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return p
}

func TestPatientCreate_StoreAssignsIDAndTimestamps(t *testing.T) {
	ctx := context.Background()
	p := createTestPatient(t, ctx)

	if p.ID == uuid.Nil {
		t.Fatal("expected store-assigned id")
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Fatal("expected store-assigned timestamps")
	}
}

func TestPatientGetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := patient.NewRepoPG(globalPool)
	if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, patient.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPatientUpdate(t *testing.T) {
	ctx := context.Background()
	p := createTestPatient(t, ctx)

	repo := patient.NewRepoPG(globalPool)
	phone := "555-0199"
	updated, err := repo.Update(ctx, p.ID, patient.NewPatient{
		FirstName:   p.FirstName,
		LastName:    "Renamed",
		DateOfBirth: p.DateOfBirth,
		Gender:      p.Gender,
		Phone:       &phone,
	})
	if err != nil {
		t.Fatalf("update patient: %v", err)
	}
	if updated.LastName != "Renamed" {
		t.Errorf("LastName = %q", updated.LastName)
	}
	if updated.Phone == nil || *updated.Phone != phone {
		t.Errorf("Phone = %v", updated.Phone)
	}
	if updated.UpdatedAt.Before(p.UpdatedAt) {
		t.Error("expected updated_at not to move backwards")
	}
}

func TestMedicalRecords_OrderedByVisitDateDesc(t *testing.T) {
	ctx := context.Background()
	p := createTestPatient(t, ctx)
	repo := clinical.NewMedicalRecordRepoPG(globalPool)

	dates := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		if _, err := repo.Create(ctx, clinical.NewMedicalRecord{
			PatientID:  p.ID,
			DoctorName: "Dr. Chen",
			VisitDate:  d,
		}); err != nil {
			t.Fatalf("create medical record: %v", err)
		}
	}

	records, err := repo.ListByPatient(ctx, p.ID)
	if err != nil {
		t.Fatalf("list medical records: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	want := []time.Time{dates[1], dates[2], dates[0]}
	for i, r := range records {
		if !r.VisitDate.Equal(want[i]) {
			t.Errorf("records[%d].VisitDate = %v, want %v", i, r.VisitDate, want[i])
		}
	}
}

func TestListByPatient_EmptyIsNotAnError(t *testing.T) {
	ctx := context.Background()
	p := createTestPatient(t, ctx)

	records, err := clinical.NewMedicalRecordRepoPG(globalPool).ListByPatient(ctx, p.ID)
	if err != nil {
		t.Fatalf("list medical records: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}

	labs, err := diagnostics.NewLabResultRepoPG(globalPool).ListByPatient(ctx, p.ID)
	if err != nil {
		t.Fatalf("list lab results: %v", err)
	}
	if len(labs) != 0 {
		t.Errorf("got %d lab results, want 0", len(labs))
	}
}

func TestVitalSigns_BMIRoundTrips(t *testing.T) {
	ctx := context.Background()
	p := createTestPatient(t, ctx)

	svc := diagnostics.NewService(
		diagnostics.NewLabResultRepoPG(globalPool),
		diagnostics.NewVitalSignsRepoPG(globalPool),
	)

	height := 180
	weight := 81.0
	vs, err := svc.CreateVitalSigns(ctx, diagnostics.NewVitalSigns{
		PatientID:    p.ID,
		RecordedDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		RecordedBy:   "Nurse Park",
		HeightCm:     &height,
		WeightKg:     &weight,
	})
	if err != nil {
		t.Fatalf("create vital signs: %v", err)
	}
	if vs.BMI == nil || *vs.BMI != 25.0 {
		t.Fatalf("BMI = %v, want 25.0", vs.BMI)
	}

	listed, err := diagnostics.NewVitalSignsRepoPG(globalPool).ListByPatient(ctx, p.ID)
	if err != nil {
		t.Fatalf("list vital signs: %v", err)
	}
	if len(listed) != 1 || listed[0].BMI == nil || *listed[0].BMI != 25.0 {
		t.Fatal("expected the stored bmi to read back unchanged")
	}
}
