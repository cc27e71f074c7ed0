// Package ocr wraps optical character recognition for uploaded documents.
// Recognition runs only for image files; the engine reports coarse progress
// through a callback so a form can display it.
package ocr

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// ProgressFunc receives recognition progress in percent, 0 through 100.
type ProgressFunc func(percent int)

// RecognitionError wraps an OCR engine failure for one file.
type RecognitionError struct {
	File string
	Err  error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("recognize %s: %v", e.File, e.Err)
}

func (e *RecognitionError) Unwrap() error { return e.Err }

// Recognizer extracts text from an image file in the given language.
type Recognizer interface {
	Recognize(ctx context.Context, file, language string, progress ProgressFunc) (string, error)
}

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true,
	".bmp": true, ".webp": true, ".tif": true, ".tiff": true,
}

// IsImage reports whether the file is image-typed, by extension. Only images
// get a preview URL and an OCR pass.
func IsImage(file string) bool {
	return imageExts[strings.ToLower(filepath.Ext(file))]
}

// Tesseract is a Recognizer backed by a local Tesseract installation.
type Tesseract struct{}

// Recognize extracts text from one image file. Progress is coarse: gosseract
// exposes no mid-recognition callback, so only 0 (started) and 100 (finished)
// are reported.
func (Tesseract) Recognize(ctx context.Context, file, language string, progress ProgressFunc) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &RecognitionError{File: file, Err: err}
	}
	if progress != nil {
		progress(0)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if language != "" {
		if err := client.SetLanguage(language); err != nil {
			return "", &RecognitionError{File: file, Err: err}
		}
	}
	if err := client.SetImage(file); err != nil {
		return "", &RecognitionError{File: file, Err: err}
	}

	text, err := client.Text()
	if err != nil {
		return "", &RecognitionError{File: file, Err: err}
	}

	if progress != nil {
		progress(100)
	}
	return text, nil
}
