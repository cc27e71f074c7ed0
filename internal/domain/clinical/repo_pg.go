package clinical

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medichart/medichart/internal/platform/db"
)

// =========== MedicalRecord Repository ===========

type medicalRecordRepoPG struct{ pool *pgxpool.Pool }

func NewMedicalRecordRepoPG(pool *pgxpool.Pool) MedicalRecordRepository {
	return &medicalRecordRepoPG{pool: pool}
}

const medicalRecordCols = `id, patient_id, doctor_name, visit_date,
	diagnosis, symptoms, treatment, notes, created_at`

func scanMedicalRecord(row pgx.Row) (*MedicalRecord, error) {
	var m MedicalRecord
	err := row.Scan(&m.ID, &m.PatientID, &m.DoctorName, &m.VisitDate,
		&m.Diagnosis, &m.Symptoms, &m.Treatment, &m.Notes, &m.CreatedAt)
	return &m, err
}

func (r *medicalRecordRepoPG) Create(ctx context.Context, n NewMedicalRecord) (*MedicalRecord, error) {
	m, err := scanMedicalRecord(r.pool.QueryRow(ctx, `
		INSERT INTO medical_records (patient_id, doctor_name, visit_date,
			diagnosis, symptoms, treatment, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING `+medicalRecordCols,
		n.PatientID, n.DoctorName, n.VisitDate,
		n.Diagnosis, n.Symptoms, n.Treatment, n.Notes))
	if err != nil {
		return nil, db.Persistence("insert", "medical_records", err)
	}
	return m, nil
}

func (r *medicalRecordRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*MedicalRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+medicalRecordCols+` FROM medical_records
		WHERE patient_id = $1 ORDER BY visit_date DESC`, patientID)
	if err != nil {
		return nil, db.Persistence("select", "medical_records", err)
	}
	defer rows.Close()

	var items []*MedicalRecord
	for rows.Next() {
		m, err := scanMedicalRecord(rows)
		if err != nil {
			return nil, db.Persistence("select", "medical_records", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Persistence("select", "medical_records", err)
	}
	return items, nil
}

// =========== Prescription Repository ===========

type prescriptionRepoPG struct{ pool *pgxpool.Pool }

func NewPrescriptionRepoPG(pool *pgxpool.Pool) PrescriptionRepository {
	return &prescriptionRepoPG{pool: pool}
}

const prescriptionCols = `id, patient_id, medical_record_id, medication_name,
	dosage, frequency, duration, prescribed_date, created_at`

func scanPrescription(row pgx.Row) (*Prescription, error) {
	var p Prescription
	err := row.Scan(&p.ID, &p.PatientID, &p.MedicalRecordID, &p.MedicationName,
		&p.Dosage, &p.Frequency, &p.Duration, &p.PrescribedDate, &p.CreatedAt)
	return &p, err
}

func (r *prescriptionRepoPG) Create(ctx context.Context, n NewPrescription) (*Prescription, error) {
	p, err := scanPrescription(r.pool.QueryRow(ctx, `
		INSERT INTO prescriptions (patient_id, medical_record_id, medication_name,
			dosage, frequency, duration, prescribed_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING `+prescriptionCols,
		n.PatientID, n.MedicalRecordID, n.MedicationName,
		n.Dosage, n.Frequency, n.Duration, n.PrescribedDate))
	if err != nil {
		return nil, db.Persistence("insert", "prescriptions", err)
	}
	return p, nil
}

func (r *prescriptionRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Prescription, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+prescriptionCols+` FROM prescriptions
		WHERE patient_id = $1 ORDER BY prescribed_date DESC`, patientID)
	if err != nil {
		return nil, db.Persistence("select", "prescriptions", err)
	}
	defer rows.Close()

	var items []*Prescription
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			return nil, db.Persistence("select", "prescriptions", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Persistence("select", "prescriptions", err)
	}
	return items, nil
}

// =========== ChronicCondition Repository ===========

type chronicConditionRepoPG struct{ pool *pgxpool.Pool }

func NewChronicConditionRepoPG(pool *pgxpool.Pool) ChronicConditionRepository {
	return &chronicConditionRepoPG{pool: pool}
}

const chronicConditionCols = `id, patient_id, condition_name, icd_10_code,
	diagnosed_date, diagnosed_by, severity, status, treatment_plan, notes,
	created_at, updated_at`

func scanChronicCondition(row pgx.Row) (*ChronicCondition, error) {
	var c ChronicCondition
	err := row.Scan(&c.ID, &c.PatientID, &c.ConditionName, &c.ICD10Code,
		&c.DiagnosedDate, &c.DiagnosedBy, &c.Severity, &c.Status, &c.TreatmentPlan, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt)
	return &c, err
}

func (r *chronicConditionRepoPG) Create(ctx context.Context, n NewChronicCondition) (*ChronicCondition, error) {
	c, err := scanChronicCondition(r.pool.QueryRow(ctx, `
		INSERT INTO chronic_conditions (patient_id, condition_name, icd_10_code,
			diagnosed_date, diagnosed_by, severity, status, treatment_plan, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING `+chronicConditionCols,
		n.PatientID, n.ConditionName, n.ICD10Code,
		n.DiagnosedDate, n.DiagnosedBy, n.Severity, n.Status, n.TreatmentPlan, n.Notes))
	if err != nil {
		return nil, db.Persistence("insert", "chronic_conditions", err)
	}
	return c, nil
}

func (r *chronicConditionRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*ChronicCondition, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+chronicConditionCols+` FROM chronic_conditions
		WHERE patient_id = $1 ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, db.Persistence("select", "chronic_conditions", err)
	}
	defer rows.Close()

	var items []*ChronicCondition
	for rows.Next() {
		c, err := scanChronicCondition(rows)
		if err != nil {
			return nil, db.Persistence("select", "chronic_conditions", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Persistence("select", "chronic_conditions", err)
	}
	return items, nil
}
