package familyhistory

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medichart/medichart/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const familyHistoryCols = `id, patient_id, relationship, condition_name,
	age_of_onset, status, notes, created_at`

func scanFamilyHistory(row pgx.Row) (*FamilyHistory, error) {
	var f FamilyHistory
	err := row.Scan(&f.ID, &f.PatientID, &f.Relationship, &f.ConditionName,
		&f.AgeOfOnset, &f.Status, &f.Notes, &f.CreatedAt)
	return &f, err
}

func (r *repoPG) Create(ctx context.Context, n NewFamilyHistory) (*FamilyHistory, error) {
	f, err := scanFamilyHistory(r.pool.QueryRow(ctx, `
		INSERT INTO family_history (patient_id, relationship, condition_name,
			age_of_onset, status, notes)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING `+familyHistoryCols,
		n.PatientID, n.Relationship, n.ConditionName,
		n.AgeOfOnset, n.Status, n.Notes))
	if err != nil {
		return nil, db.Persistence("insert", "family_history", err)
	}
	return f, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*FamilyHistory, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+familyHistoryCols+` FROM family_history
		WHERE patient_id = $1 ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, db.Persistence("select", "family_history", err)
	}
	defer rows.Close()

	var items []*FamilyHistory
	for rows.Next() {
		f, err := scanFamilyHistory(rows)
		if err != nil {
			return nil, db.Persistence("select", "family_history", err)
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Persistence("select", "family_history", err)
	}
	return items, nil
}
