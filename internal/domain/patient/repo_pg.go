package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medichart/medichart/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const patientCols = `id, first_name, last_name, date_of_birth, gender,
	phone, email, address, emergency_contact_name, emergency_contact_phone,
	blood_type, allergies, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.DateOfBirth, &p.Gender,
		&p.Phone, &p.Email, &p.Address, &p.EmergencyContactName, &p.EmergencyContactPhone,
		&p.BloodType, &p.Allergies, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, n NewPatient) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx, `
		INSERT INTO patients (first_name, last_name, date_of_birth, gender,
			phone, email, address, emergency_contact_name, emergency_contact_phone,
			blood_type, allergies)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING `+patientCols,
		n.FirstName, n.LastName, n.DateOfBirth, n.Gender,
		n.Phone, n.Email, n.Address, n.EmergencyContactName, n.EmergencyContactPhone,
		n.BloodType, n.Allergies))
	if err != nil {
		return nil, db.Persistence("insert", "patients", err)
	}
	return p, nil
}

func (r *repoPG) Update(ctx context.Context, id uuid.UUID, n NewPatient) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx, `
		UPDATE patients SET first_name=$2, last_name=$3, date_of_birth=$4, gender=$5,
			phone=$6, email=$7, address=$8, emergency_contact_name=$9,
			emergency_contact_phone=$10, blood_type=$11, allergies=$12, updated_at=NOW()
		WHERE id = $1
		RETURNING `+patientCols,
		id, n.FirstName, n.LastName, n.DateOfBirth, n.Gender,
		n.Phone, n.Email, n.Address, n.EmergencyContactName, n.EmergencyContactPhone,
		n.BloodType, n.Allergies))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, db.Persistence("update", "patients", err)
	}
	return p, nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, db.Persistence("select", "patients", err)
	}
	return p, nil
}

func (r *repoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+patientCols+` FROM patients ORDER BY created_at DESC`)
	if err != nil {
		return nil, db.Persistence("select", "patients", err)
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, db.Persistence("select", "patients", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Persistence("select", "patients", err)
	}
	return items, nil
}
