package immunization

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type mockRepo struct{ items []*Immunization }

func (m *mockRepo) Create(_ context.Context, n NewImmunization) (*Immunization, error) {
	im := &Immunization{
		ID: uuid.New(), PatientID: n.PatientID, VaccineName: n.VaccineName,
		AdministrationDate: n.AdministrationDate, AdministeredBy: n.AdministeredBy,
		DoseNumber: n.DoseNumber, AdministrationSite: n.AdministrationSite,
		CreatedAt: time.Now(),
	}
	m.items = append(m.items, im)
	return im, nil
}

func (m *mockRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*Immunization, error) {
	var result []*Immunization
	for _, im := range m.items {
		if im.PatientID == patientID {
			result = append(result, im)
		}
	}
	return result, nil
}

func validNew() NewImmunization {
	return NewImmunization{
		PatientID:          uuid.New(),
		VaccineName:        "Influenza (Flu)",
		AdministrationDate: time.Now(),
		AdministeredBy:     "Nurse Ito",
		DoseNumber:         1,
	}
}

func TestCreateImmunization_DefaultSite(t *testing.T) {
	svc := NewService(&mockRepo{})
	im, err := svc.CreateImmunization(context.Background(), validNew())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if im.AdministrationSite != "left arm" {
		t.Errorf("AdministrationSite = %q, want default \"left arm\"", im.AdministrationSite)
	}
}

func TestCreateImmunization_InvalidSite(t *testing.T) {
	svc := NewService(&mockRepo{})
	n := validNew()
	n.AdministrationSite = "forehead"
	if _, err := svc.CreateImmunization(context.Background(), n); err == nil {
		t.Fatal("expected error for invalid administration_site")
	}
}

func TestCreateImmunization_DoseNumberAtLeastOne(t *testing.T) {
	svc := NewService(&mockRepo{})
	for _, dose := range []int{0, -1} {
		n := validNew()
		n.DoseNumber = dose
		if _, err := svc.CreateImmunization(context.Background(), n); err == nil {
			t.Errorf("expected error for dose_number %d", dose)
		}
	}
}

func TestCreateImmunization_RequiredFields(t *testing.T) {
	svc := NewService(&mockRepo{})

	mutations := map[string]func(*NewImmunization){
		"patient_id":          func(n *NewImmunization) { n.PatientID = uuid.Nil },
		"vaccine_name":        func(n *NewImmunization) { n.VaccineName = "" },
		"administration_date": func(n *NewImmunization) { n.AdministrationDate = time.Time{} },
		"administered_by":     func(n *NewImmunization) { n.AdministeredBy = "" },
	}
	for field, mutate := range mutations {
		n := validNew()
		mutate(&n)
		if _, err := svc.CreateImmunization(context.Background(), n); err == nil {
			t.Errorf("expected error for missing %s", field)
		}
	}
}
