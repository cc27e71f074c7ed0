package diagnostics

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medichart/medichart/internal/platform/db"
)

// =========== LabResult Repository ===========

type labResultRepoPG struct{ pool *pgxpool.Pool }

func NewLabResultRepoPG(pool *pgxpool.Pool) LabResultRepository {
	return &labResultRepoPG{pool: pool}
}

const labResultCols = `id, patient_id, test_name, test_category, test_date,
	ordered_by, result_value, result_unit, reference_range, status,
	lab_name, lab_reference_number, notes, created_at`

func scanLabResult(row pgx.Row) (*LabResult, error) {
	var l LabResult
	err := row.Scan(&l.ID, &l.PatientID, &l.TestName, &l.TestCategory, &l.TestDate,
		&l.OrderedBy, &l.ResultValue, &l.ResultUnit, &l.ReferenceRange, &l.Status,
		&l.LabName, &l.LabReferenceNumber, &l.Notes, &l.CreatedAt)
	return &l, err
}

func (r *labResultRepoPG) Create(ctx context.Context, n NewLabResult) (*LabResult, error) {
	l, err := scanLabResult(r.pool.QueryRow(ctx, `
		INSERT INTO lab_results (patient_id, test_name, test_category, test_date,
			ordered_by, result_value, result_unit, reference_range, status,
			lab_name, lab_reference_number, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		RETURNING `+labResultCols,
		n.PatientID, n.TestName, n.TestCategory, n.TestDate,
		n.OrderedBy, n.ResultValue, n.ResultUnit, n.ReferenceRange, n.Status,
		n.LabName, n.LabReferenceNumber, n.Notes))
	if err != nil {
		return nil, db.Persistence("insert", "lab_results", err)
	}
	return l, nil
}

func (r *labResultRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*LabResult, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+labResultCols+` FROM lab_results
		WHERE patient_id = $1 ORDER BY test_date DESC`, patientID)
	if err != nil {
		return nil, db.Persistence("select", "lab_results", err)
	}
	defer rows.Close()

	var items []*LabResult
	for rows.Next() {
		l, err := scanLabResult(rows)
		if err != nil {
			return nil, db.Persistence("select", "lab_results", err)
		}
		items = append(items, l)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Persistence("select", "lab_results", err)
	}
	return items, nil
}

// =========== VitalSigns Repository ===========

type vitalSignsRepoPG struct{ pool *pgxpool.Pool }

func NewVitalSignsRepoPG(pool *pgxpool.Pool) VitalSignsRepository {
	return &vitalSignsRepoPG{pool: pool}
}

const vitalSignsCols = `id, patient_id, recorded_date, recorded_by,
	systolic_bp, diastolic_bp, heart_rate, respiratory_rate, temperature_celsius,
	oxygen_saturation, blood_glucose, height_cm, weight_kg, bmi, notes, created_at`

func scanVitalSigns(row pgx.Row) (*VitalSigns, error) {
	var v VitalSigns
	err := row.Scan(&v.ID, &v.PatientID, &v.RecordedDate, &v.RecordedBy,
		&v.SystolicBP, &v.DiastolicBP, &v.HeartRate, &v.RespiratoryRate, &v.TemperatureCelsius,
		&v.OxygenSaturation, &v.BloodGlucose, &v.HeightCm, &v.WeightKg, &v.BMI, &v.Notes, &v.CreatedAt)
	return &v, err
}

func (r *vitalSignsRepoPG) Create(ctx context.Context, n NewVitalSigns, bmi *float64) (*VitalSigns, error) {
	v, err := scanVitalSigns(r.pool.QueryRow(ctx, `
		INSERT INTO vital_signs (patient_id, recorded_date, recorded_by,
			systolic_bp, diastolic_bp, heart_rate, respiratory_rate, temperature_celsius,
			oxygen_saturation, blood_glucose, height_cm, weight_kg, bmi, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING `+vitalSignsCols,
		n.PatientID, n.RecordedDate, n.RecordedBy,
		n.SystolicBP, n.DiastolicBP, n.HeartRate, n.RespiratoryRate, n.TemperatureCelsius,
		n.OxygenSaturation, n.BloodGlucose, n.HeightCm, n.WeightKg, bmi, n.Notes))
	if err != nil {
		return nil, db.Persistence("insert", "vital_signs", err)
	}
	return v, nil
}

func (r *vitalSignsRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*VitalSigns, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+vitalSignsCols+` FROM vital_signs
		WHERE patient_id = $1 ORDER BY recorded_date DESC`, patientID)
	if err != nil {
		return nil, db.Persistence("select", "vital_signs", err)
	}
	defer rows.Close()

	var items []*VitalSigns
	for rows.Next() {
		v, err := scanVitalSigns(rows)
		if err != nil {
			return nil, db.Persistence("select", "vital_signs", err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Persistence("select", "vital_signs", err)
	}
	return items, nil
}
