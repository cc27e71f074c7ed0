package documents

import (
	"time"

	"github.com/google/uuid"
)

// Kinds of uploaded documents.
var ValidDocumentTypes = map[string]bool{
	"general": true, "lab_report": true, "prescription": true,
	"medical_report": true, "xray": true, "insurance": true,
	"referral": true, "discharge_summary": true,
}

// Document maps to the documents table. FileURL is a local preview location,
// not durable storage; OCRText is whatever the recognition pass extracted
// (empty for non-image files or when recognition failed).
type Document struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PatientID    uuid.UUID `db:"patient_id" json:"patient_id"`
	DocumentName string    `db:"document_name" json:"document_name"`
	DocumentType string    `db:"document_type" json:"document_type"`
	FileURL      *string   `db:"file_url" json:"file_url,omitempty"`
	OCRText      *string   `db:"ocr_text" json:"ocr_text,omitempty"`
	UploadedAt   time.Time `db:"uploaded_at" json:"uploaded_at"`
}

type NewDocument struct {
	PatientID    uuid.UUID
	DocumentName string
	DocumentType string
	FileURL      *string
	OCRText      *string
}
