package immunization

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

const immunizationCols = `id, patient_id, vaccine_name, vaccine_type,
	administration_date, administered_by, manufacturer, lot_number, expiration_date,
	dose_number, administration_site, adverse_reactions, next_dose_due, notes, created_at`

func scanImmunization(row pgx.Row) (*Immunization, error) {
	var im Immunization
	err := row.Scan(&im.ID, &im.PatientID, &im.VaccineName, &im.VaccineType,
		&im.AdministrationDate, &im.AdministeredBy, &im.Manufacturer, &im.LotNumber, &im.ExpirationDate,
		&im.DoseNumber, &im.AdministrationSite, &im.AdverseReactions, &im.NextDoseDue, &im.Notes, &im.CreatedAt)
	return &im, err
}

func (r *repoPG) Create(ctx context.Context, n NewImmunization) (*Immunization, error) {
	im, err := scanImmunization(r.pool.QueryRow(ctx, `
		INSERT INTO immunizations (patient_id, vaccine_name, vaccine_type,
			administration_date, administered_by, manufacturer, lot_number, expiration_date,
			dose_number, administration_site, adverse_reactions, next_dose_due, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING `+immunizationCols,
		n.PatientID, n.VaccineName, n.VaccineType,
		n.AdministrationDate, n.AdministeredBy, n.Manufacturer, n.LotNumber, n.ExpirationDate,
		n.DoseNumber, n.AdministrationSite, n.AdverseReactions, n.NextDoseDue, n.Notes))
	if err != nil {
		return nil, db.Persistence("insert", "immunizations", err)
	}
	return im, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Immunization, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+immunizationCols+` FROM immunizations
		WHERE patient_id = $1 ORDER BY administration_date DESC`, patientID)
	if err != nil {
		return nil, db.Persistence("select", "immunizations", err)
	}
	defer rows.Close()

	var items []*Immunization
	for rows.Next() {
		im, err := scanImmunization(rows)
		if err != nil {
			return nil, db.Persistence("select", "immunizations", err)
		}
		items = append(items, im)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Persistence("select", "immunizations", err)
	}
	return items, nil
}
