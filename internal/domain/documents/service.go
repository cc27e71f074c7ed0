package documents

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service provides business logic for the Document domain.
type Service struct {
	documents Repository
}

func NewService(documents Repository) *Service {
	return &Service{documents: documents}
}

func (s *Service) CreateDocument(ctx context.Context, n NewDocument) (*Document, error) {
	if n.PatientID == uuid.Nil {
		return nil, fmt.Errorf("patient_id is required")
	}
	if n.DocumentName == "" {
		return nil, fmt.Errorf("document_name is required")
	}
	if n.DocumentType == "" {
		n.DocumentType = "general"
	}
	if !ValidDocumentTypes[n.DocumentType] {
		return nil, fmt.Errorf("invalid document_type: %s", n.DocumentType)
	}
	return s.documents.Create(ctx, n)
}

func (s *Service) ListDocuments(ctx context.Context, patientID uuid.UUID) ([]*Document, error) {
	return s.documents.ListByPatient(ctx, patientID)
}
