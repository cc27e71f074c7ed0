package patient

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

// =========== Mock Repository ===========

type mockRepo struct {
	store map[uuid.UUID]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{store: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) persisted(n NewPatient) *Patient {
	now := time.Now()
	return &Patient{
		ID:          uuid.New(),
		FirstName:   n.FirstName,
		LastName:    n.LastName,
		DateOfBirth: n.DateOfBirth,
		Gender:      n.Gender,
		Phone:       n.Phone,
		Email:       n.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (m *mockRepo) Create(_ context.Context, n NewPatient) (*Patient, error) {
	p := m.persisted(n)
	m.store[p.ID] = p
	return p, nil
}

func (m *mockRepo) Update(_ context.Context, id uuid.UUID, n NewPatient) (*Patient, error) {
	p, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	p.FirstName = n.FirstName
	p.LastName = n.LastName
	p.UpdatedAt = time.Now()
	return p, nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) List(_ context.Context) ([]*Patient, error) {
	var result []*Patient
	for _, p := range m.store {
		result = append(result, p)
	}
	return result, nil
}

func validNew() NewPatient {
	return NewPatient{
		FirstName:   "Ann",
		LastName:    "Lee",
		DateOfBirth: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		Gender:      "female",
	}
}

// =========== Tests ===========

func TestCreatePatient_Success(t *testing.T) {
	svc := NewService(newMockRepo())

	p, err := svc.CreatePatient(context.Background(), validNew())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected store-assigned id")
	}
	if p.CreatedAt.IsZero() {
		t.Error("expected store-assigned created_at")
	}
}

func TestCreatePatient_RequiredFields(t *testing.T) {
	svc := NewService(newMockRepo())

	mutations := map[string]func(*NewPatient){
		"first_name":    func(n *NewPatient) { n.FirstName = "" },
		"last_name":     func(n *NewPatient) { n.LastName = "" },
		"date_of_birth": func(n *NewPatient) { n.DateOfBirth = time.Time{} },
		"gender":        func(n *NewPatient) { n.Gender = "" },
	}
	for field, mutate := range mutations {
		n := validNew()
		mutate(&n)
		if _, err := svc.CreatePatient(context.Background(), n); err == nil {
			t.Errorf("expected error for missing %s", field)
		}
	}
}

func TestUpdatePatient_RequiresID(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.UpdatePatient(context.Background(), uuid.Nil, validNew()); err == nil {
		t.Fatal("expected error for nil id")
	}
}

func TestUpdatePatient_Success(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	p, err := svc.CreatePatient(context.Background(), validNew())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := validNew()
	n.LastName = "Nguyen"
	updated, err := svc.UpdatePatient(context.Background(), p.ID, n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.LastName != "Nguyen" {
		t.Errorf("LastName = %q, want Nguyen", updated.LastName)
	}
}

func TestFullName(t *testing.T) {
	p := &Patient{FirstName: "Ann", LastName: "Lee"}
	if got := p.FullName(); got != "Ann Lee" {
		t.Errorf("FullName() = %q", got)
	}
}
