package forms

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medichart/medichart/internal/domain/diagnostics"
	"github.com/medichart/medichart/internal/domain/documents"
	"github.com/medichart/medichart/internal/domain/familyhistory"
	"github.com/medichart/medichart/internal/domain/immunization"
	"github.com/medichart/medichart/internal/domain/patient"
	"github.com/medichart/medichart/internal/platform/ocr"
)

type mockPatientRepo struct {
	created *patient.NewPatient
	updated *patient.NewPatient
	err     error
}

func (m *mockPatientRepo) Create(_ context.Context, n patient.NewPatient) (*patient.Patient, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = &n
	return &patient.Patient{ID: uuid.New(), FirstName: n.FirstName, LastName: n.LastName}, nil
}

func (m *mockPatientRepo) Update(_ context.Context, id uuid.UUID, n patient.NewPatient) (*patient.Patient, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.updated = &n
	return &patient.Patient{ID: id, FirstName: n.FirstName, LastName: n.LastName}, nil
}

func (m *mockPatientRepo) GetByID(context.Context, uuid.UUID) (*patient.Patient, error) {
	return nil, patient.ErrNotFound
}

func (m *mockPatientRepo) List(context.Context) ([]*patient.Patient, error) { return nil, nil }

func TestPatientForm_SubmitSuccess(t *testing.T) {
	repo := &mockPatientRepo{}
	f := NewPatientForm(patient.NewService(repo), zerolog.Nop())
	f.FirstName = "Ann"
	f.LastName = "Lee"
	f.DateOfBirth = "1990-06-15"
	f.Gender = "female"
	f.Phone = "  "

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.State() != StateSuccess {
		t.Errorf("state = %q, want success", f.State())
	}
	if repo.created == nil {
		t.Fatal("expected create to reach the store")
	}
	if repo.created.Phone != nil {
		t.Errorf("blank phone persisted as %q, want nil", *repo.created.Phone)
	}
	if !repo.created.DateOfBirth.Equal(time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("DateOfBirth = %v", repo.created.DateOfBirth)
	}
}

func TestPatientForm_ValidationBlocksSubmit(t *testing.T) {
	repo := &mockPatientRepo{}
	f := NewPatientForm(patient.NewService(repo), zerolog.Nop())
	f.FirstName = "Ann"

	if err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected validation error")
	}
	var ve *ValidationError
	if !errors.As(f.Err(), &ve) {
		t.Fatalf("Err() = %v, want *ValidationError", f.Err())
	}
	if f.State() != StateEditing {
		t.Errorf("state = %q, want editing after validation failure", f.State())
	}
	if repo.created != nil {
		t.Error("store call must not happen on validation failure")
	}
}

func TestPatientForm_StoreFailureKeepsValues(t *testing.T) {
	repo := &mockPatientRepo{err: errors.New("connection refused")}
	f := NewPatientForm(patient.NewService(repo), zerolog.Nop())
	f.FirstName = "Ann"
	f.LastName = "Lee"
	f.DateOfBirth = "1990-06-15"
	f.Gender = "female"

	if err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected store error")
	}
	if f.State() != StateFailed {
		t.Errorf("state = %q, want failed", f.State())
	}
	if f.FirstName != "Ann" || f.DateOfBirth != "1990-06-15" {
		t.Error("entered values must survive a failed submit")
	}
	if f.Err() == nil {
		t.Error("Err() must report the failure")
	}
}

func TestEditPatientForm_Prefills(t *testing.T) {
	phone := "555-0101"
	p := &patient.Patient{
		ID:          uuid.New(),
		FirstName:   "Ann",
		LastName:    "Lee",
		DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		Gender:      "female",
		Phone:       &phone,
	}
	repo := &mockPatientRepo{}
	f := EditPatientForm(patient.NewService(repo), zerolog.Nop(), p)
	if f.FirstName != "Ann" || f.DateOfBirth != "1990-06-15" || f.Phone != "555-0101" {
		t.Errorf("prefill wrong: %q %q %q", f.FirstName, f.DateOfBirth, f.Phone)
	}

	f.Phone = ""
	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.updated == nil {
		t.Fatal("expected update, not create")
	}
	if repo.updated.Phone != nil {
		t.Error("cleared phone must persist as nil")
	}
}

type mockVitalsRepo struct{ got *diagnostics.NewVitalSigns }

func (m *mockVitalsRepo) Create(_ context.Context, n diagnostics.NewVitalSigns, bmi *float64) (*diagnostics.VitalSigns, error) {
	m.got = &n
	return &diagnostics.VitalSigns{ID: uuid.New(), PatientID: n.PatientID, BMI: bmi}, nil
}

func (m *mockVitalsRepo) ListByPatient(context.Context, uuid.UUID) ([]*diagnostics.VitalSigns, error) {
	return nil, nil
}

type mockLabRepo struct{}

func (m *mockLabRepo) Create(_ context.Context, n diagnostics.NewLabResult) (*diagnostics.LabResult, error) {
	return &diagnostics.LabResult{ID: uuid.New()}, nil
}

func (m *mockLabRepo) ListByPatient(context.Context, uuid.UUID) ([]*diagnostics.LabResult, error) {
	return nil, nil
}

func TestVitalSignsForm_BlankMeasurementsAreNil(t *testing.T) {
	repo := &mockVitalsRepo{}
	svc := diagnostics.NewService(&mockLabRepo{}, repo)
	f := NewVitalSignsForm(svc, zerolog.Nop(), uuid.New())
	f.RecordedBy = "Dr. Chen"
	f.HeartRate = "72"

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.got.HeartRate == nil || *repo.got.HeartRate != 72 {
		t.Errorf("HeartRate = %v, want 72", repo.got.HeartRate)
	}
	if repo.got.SystolicBP != nil || repo.got.WeightKg != nil {
		t.Error("blank measurements must persist as nil, never zero")
	}
}

func TestVitalSignsForm_DefaultsRecordedDateToToday(t *testing.T) {
	f := NewVitalSignsForm(diagnostics.NewService(&mockLabRepo{}, &mockVitalsRepo{}), zerolog.Nop(), uuid.New())
	if f.RecordedDate != time.Now().Format("2006-01-02") {
		t.Errorf("RecordedDate = %q, want today", f.RecordedDate)
	}
}

func TestVitalSignsForm_RejectsNonNumericInput(t *testing.T) {
	f := NewVitalSignsForm(diagnostics.NewService(&mockLabRepo{}, &mockVitalsRepo{}), zerolog.Nop(), uuid.New())
	f.RecordedBy = "Dr. Chen"
	f.HeartRate = "fast"
	if err := f.Submit(context.Background()); err == nil {
		t.Fatal("expected error for non-numeric heart rate")
	}
}

type mockFamilyRepo struct {
	got *familyhistory.NewFamilyHistory
}

func (m *mockFamilyRepo) Create(_ context.Context, n familyhistory.NewFamilyHistory) (*familyhistory.FamilyHistory, error) {
	m.got = &n
	return &familyhistory.FamilyHistory{ID: uuid.New(), Status: n.Status}, nil
}

func (m *mockFamilyRepo) ListByPatient(context.Context, uuid.UUID) ([]*familyhistory.FamilyHistory, error) {
	return nil, nil
}

func TestFamilyHistoryForm_BlankAgeOfOnsetIsNil(t *testing.T) {
	repo := &mockFamilyRepo{}
	f := NewFamilyHistoryForm(familyhistory.NewService(repo), zerolog.Nop(), uuid.New())
	f.Relationship = "Mother"
	f.ConditionName = "hypertension"
	f.AgeOfOnset = ""

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.got.AgeOfOnset != nil {
		t.Errorf("AgeOfOnset = %v, want nil for blank input", *repo.got.AgeOfOnset)
	}

	f2 := NewFamilyHistoryForm(familyhistory.NewService(repo), zerolog.Nop(), uuid.New())
	f2.Relationship = "Father"
	f2.ConditionName = "diabetes"
	f2.AgeOfOnset = "52"
	if err := f2.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.got.AgeOfOnset == nil || *repo.got.AgeOfOnset != 52 {
		t.Errorf("AgeOfOnset = %v, want 52", repo.got.AgeOfOnset)
	}
}

type mockImmunizationRepo struct{ got *immunization.NewImmunization }

func (m *mockImmunizationRepo) Create(_ context.Context, n immunization.NewImmunization) (*immunization.Immunization, error) {
	m.got = &n
	return &immunization.Immunization{ID: uuid.New(), DoseNumber: n.DoseNumber}, nil
}

func (m *mockImmunizationRepo) ListByPatient(context.Context, uuid.UUID) ([]*immunization.Immunization, error) {
	return nil, nil
}

func TestImmunizationForm_DoseNumberDefaultsToOne(t *testing.T) {
	repo := &mockImmunizationRepo{}
	f := NewImmunizationForm(immunization.NewService(repo), zerolog.Nop(), uuid.New())
	if f.DoseNumber != "1" {
		t.Errorf("DoseNumber = %q, want default 1", f.DoseNumber)
	}
	f.VaccineName = "Influenza"
	f.AdministeredBy = "Nurse Park"
	f.DoseNumber = ""

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.got.DoseNumber != 1 {
		t.Errorf("DoseNumber = %d, want 1 when left blank", repo.got.DoseNumber)
	}
}

func TestImmunizationForm_RejectsNonNumericDose(t *testing.T) {
	f := NewImmunizationForm(immunization.NewService(&mockImmunizationRepo{}), zerolog.Nop(), uuid.New())
	f.VaccineName = "Influenza"
	f.AdministeredBy = "Nurse Park"
	f.DoseNumber = "second"

	err := f.Submit(context.Background())
	if err == nil {
		t.Fatal("expected error for non-numeric dose number")
	}
	if !strings.Contains(err.Error(), "dose_number must be a whole number") {
		t.Errorf("err = %q, want the coercion phrasing naming dose_number", err)
	}
}

type mockDocumentRepo struct{ got *documents.NewDocument }

func (m *mockDocumentRepo) Create(_ context.Context, n documents.NewDocument) (*documents.Document, error) {
	m.got = &n
	return &documents.Document{ID: uuid.New(), DocumentName: n.DocumentName}, nil
}

func (m *mockDocumentRepo) ListByPatient(context.Context, uuid.UUID) ([]*documents.Document, error) {
	return nil, nil
}

type fakeRecognizer struct {
	text string
	err  error
}

func (r *fakeRecognizer) Recognize(_ context.Context, file, _ string, progress ocr.ProgressFunc) (string, error) {
	if progress != nil {
		progress(0)
	}
	if r.err != nil {
		return "", &ocr.RecognitionError{File: file, Err: r.err}
	}
	if progress != nil {
		progress(100)
	}
	return r.text, nil
}

func TestDocumentForm_ImageRunsRecognition(t *testing.T) {
	repo := &mockDocumentRepo{}
	rec := &fakeRecognizer{text: "Take twice daily"}
	f := NewDocumentForm(documents.NewService(repo), rec, "eng", zerolog.Nop(), uuid.New())

	if err := f.SelectFile(context.Background(), "scan.png"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.OCRText() != "Take twice daily" {
		t.Errorf("OCRText = %q", f.OCRText())
	}
	if f.OCRProgress() != 100 {
		t.Errorf("OCRProgress = %d, want 100", f.OCRProgress())
	}
	if f.PreviewURL() == "" {
		t.Error("expected a preview URL for an image")
	}
	if f.DocumentName != "scan" {
		t.Errorf("DocumentName = %q, want derived from file name", f.DocumentName)
	}

	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.got.OCRText == nil || *repo.got.OCRText != "Take twice daily" {
		t.Error("extracted text must reach the store")
	}
}

func TestDocumentForm_NonImageSkipsRecognition(t *testing.T) {
	rec := &fakeRecognizer{err: errors.New("must not be called")}
	f := NewDocumentForm(documents.NewService(&mockDocumentRepo{}), rec, "eng", zerolog.Nop(), uuid.New())

	if err := f.SelectFile(context.Background(), "report.pdf"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.OCRText() != "" {
		t.Error("non-image files must not get a recognition pass")
	}
	if f.PreviewURL() != "" {
		t.Error("non-image files must not get a preview URL")
	}
}

func TestDocumentForm_RecognitionFailureDoesNotBlock(t *testing.T) {
	repo := &mockDocumentRepo{}
	rec := &fakeRecognizer{err: errors.New("engine crashed")}
	f := NewDocumentForm(documents.NewService(repo), rec, "eng", zerolog.Nop(), uuid.New())

	if err := f.SelectFile(context.Background(), "scan.jpg"); err != nil {
		t.Fatalf("recognition failure must not fail file selection: %v", err)
	}
	if err := f.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.got.OCRText != nil {
		t.Error("failed recognition must persist as no text, not empty text")
	}
}

func TestDocumentForm_RejectsUnsupportedFileType(t *testing.T) {
	f := NewDocumentForm(documents.NewService(&mockDocumentRepo{}), &fakeRecognizer{}, "eng", zerolog.Nop(), uuid.New())
	if err := f.SelectFile(context.Background(), "malware.exe"); err == nil {
		t.Fatal("expected error for unsupported file type")
	}
}
