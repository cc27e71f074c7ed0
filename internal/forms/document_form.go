package forms

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medichart/medichart/internal/domain/documents"
	"github.com/medichart/medichart/internal/platform/ocr"
)

// Document files accepted beyond images.
var acceptedDocExts = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
}

// DocumentForm attaches a file to one patient. Selecting an image file kicks
// off a text recognition pass; its outcome never blocks the upload. The
// preview URL points at the local file and is not durable storage.
type DocumentForm struct {
	PatientID    uuid.UUID
	DocumentName string
	DocumentType string

	file        string
	previewURL  string
	ocrText     string
	ocrProgress int

	state  State
	err    error
	result *documents.Document

	svc        *documents.Service
	recognizer ocr.Recognizer
	language   string
	log        zerolog.Logger
}

func NewDocumentForm(svc *documents.Service, recognizer ocr.Recognizer, language string, log zerolog.Logger, patientID uuid.UUID) *DocumentForm {
	return &DocumentForm{
		PatientID:  patientID,
		state:      StateEditing,
		svc:        svc,
		recognizer: recognizer,
		language:   language,
		log:        log,
	}
}

func (f *DocumentForm) State() State                { return f.state }
func (f *DocumentForm) Err() error                  { return f.err }
func (f *DocumentForm) Result() *documents.Document { return f.result }
func (f *DocumentForm) File() string                { return f.file }
func (f *DocumentForm) PreviewURL() string          { return f.previewURL }
func (f *DocumentForm) OCRText() string             { return f.ocrText }
func (f *DocumentForm) OCRProgress() int            { return f.ocrProgress }

// SelectFile validates the file against the accepted extensions and, for
// images, builds a preview URL and runs text recognition. A recognition
// failure is logged and leaves the form usable; only an unacceptable file
// type is an error.
func (f *DocumentForm) SelectFile(ctx context.Context, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !ocr.IsImage(path) && !acceptedDocExts[ext] {
		f.err = fmt.Errorf("unsupported file type %s", ext)
		return f.err
	}

	f.file = path
	f.ocrText = ""
	f.ocrProgress = 0
	f.previewURL = ""
	if f.DocumentName == "" {
		f.DocumentName = strings.TrimSuffix(filepath.Base(path), ext)
	}

	if !ocr.IsImage(path) {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	f.previewURL = "file://" + abs

	text, err := f.recognizer.Recognize(ctx, path, f.language, func(percent int) {
		f.ocrProgress = percent
	})
	if err != nil {
		f.log.Warn().Err(err).Str("file", path).Msg("text recognition failed, uploading without extracted text")
		return nil
	}
	f.ocrText = text
	return nil
}

func (f *DocumentForm) Submit(ctx context.Context) error {
	if err := validate(validation.Errors{
		"document_name": validation.Validate(f.DocumentName, validation.Required),
		"file":          validation.Validate(f.file, validation.Required),
	}); err != nil {
		f.err = err
		return err
	}

	f.state = StateSubmitting
	d, err := f.svc.CreateDocument(ctx, documents.NewDocument{
		PatientID:    f.PatientID,
		DocumentName: f.DocumentName,
		DocumentType: f.DocumentType,
		FileURL:      optionalString(f.previewURL),
		OCRText:      optionalString(f.ocrText),
	})
	if err != nil {
		f.state = StateFailed
		f.err = err
		f.log.Error().Err(err).Msg("document form submit failed")
		return err
	}

	f.state = StateSuccess
	f.err = nil
	f.result = d
	return nil
}
