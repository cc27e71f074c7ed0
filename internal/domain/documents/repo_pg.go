package documents

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

const documentCols = `id, patient_id, document_name, document_type,
	file_url, ocr_text, uploaded_at`

func scanDocument(row pgx.Row) (*Document, error) {
	var d Document
	err := row.Scan(&d.ID, &d.PatientID, &d.DocumentName, &d.DocumentType,
		&d.FileURL, &d.OCRText, &d.UploadedAt)
	return &d, err
}

func (r *repoPG) Create(ctx context.Context, n NewDocument) (*Document, error) {
	d, err := scanDocument(r.pool.QueryRow(ctx, `
		INSERT INTO documents (patient_id, document_name, document_type, file_url, ocr_text)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING `+documentCols,
		n.PatientID, n.DocumentName, n.DocumentType, n.FileURL, n.OCRText))
	if err != nil {
		return nil, db.Persistence("insert", "documents", err)
	}
	return d, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Document, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+documentCols+` FROM documents
		WHERE patient_id = $1 ORDER BY uploaded_at DESC`, patientID)
	if err != nil {
		return nil, db.Persistence("select", "documents", err)
	}
	defer rows.Close()

	var items []*Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, db.Persistence("select", "documents", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, db.Persistence("select", "documents", err)
	}
	return items, nil
}
