// Package views holds the read models behind the two screens: the searchable
// patient roster and the tabbed per-patient detail view.
package views

import (
	"context"
	"strings"

	"github.com/medichart/medichart/internal/domain/patient"
)

// PatientList is the roster screen: every patient, newest first, narrowed by
// a free-text search term. The search never hits the store; it filters the
// loaded slice.
type PatientList struct {
	svc      *patient.Service
	patients []*patient.Patient
	search   string
}

func NewPatientList(svc *patient.Service) *PatientList {
	return &PatientList{svc: svc}
}

// Load fetches all patients ordered by creation time descending.
func (l *PatientList) Load(ctx context.Context) error {
	patients, err := l.svc.ListPatients(ctx)
	if err != nil {
		return err
	}
	if patients == nil {
		patients = []*patient.Patient{}
	}
	l.patients = patients
	return nil
}

func (l *PatientList) SetSearch(term string) {
	l.search = term
}

// Visible returns the patients matching the current search term. Matching is
// a case-insensitive substring test against first name, last name, full name
// and email, plus a raw substring test against the phone number. An empty
// term matches everyone.
func (l *PatientList) Visible() []*patient.Patient {
	term := strings.TrimSpace(l.search)
	if term == "" {
		return l.patients
	}
	lower := strings.ToLower(term)

	matched := []*patient.Patient{}
	for _, p := range l.patients {
		if matches(p, term, lower) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matches(p *patient.Patient, raw, lower string) bool {
	if strings.Contains(strings.ToLower(p.FirstName), lower) ||
		strings.Contains(strings.ToLower(p.LastName), lower) ||
		strings.Contains(strings.ToLower(p.FullName()), lower) {
		return true
	}
	if p.Email != nil && strings.Contains(strings.ToLower(*p.Email), lower) {
		return true
	}
	if p.Phone != nil && strings.Contains(*p.Phone, raw) {
		return true
	}
	return false
}
