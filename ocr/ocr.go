//go:build ocr

// Package ocr recognizes word tokens from scanned timesheet images.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/Shudderr/timesheet-parser/model"
)

// minWordConfidence drops words Tesseract scores lower, on its 0-100 scale.
const minWordConfidence = 40

// Source recognizes word tokens from scanned timesheet images.
type Source struct {
	client *gosseract.Client
}

// NewSource creates a recognizer backed by a Tesseract client.
// The source should be closed when no longer needed to release resources.
func NewSource() (*Source, error) {
	return &Source{client: gosseract.NewClient()}, nil
}

// Close releases Tesseract resources. It is safe to call on a nil source.
func (s *Source) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// SetLanguage sets the language(s) used for recognition. Multiple
// languages can be specified as a "+" separated string (e.g. "eng+fra").
// Default is "eng" (English).
func (s *Source) SetLanguage(lang string) error {
	return s.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode. Sparse modes tend to
// segment timesheet grids better than the single-block default.
func (s *Source) SetPageSegMode(mode PageSegMode) error {
	return s.client.SetPageSegMode(gosseract.PageSegMode(mode))
}

// Recognize performs OCR on image data (PNG, JPEG or TIFF) and returns
// word tokens in top-down pixel coordinates together with the full
// recognized text. Words below the confidence floor are dropped. Small
// scans are upscaled first; see Prepare.
func (s *Source) Recognize(imageData []byte) ([]model.Token, string, error) {
	prepared, err := Prepare(imageData, DefaultMinWidth)
	if err != nil {
		return nil, "", err
	}
	if err := s.client.SetImageFromBytes(prepared); err != nil {
		return nil, "", fmt.Errorf("ocr: set image: %w", err)
	}

	boxes, err := s.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, "", fmt.Errorf("ocr: bounding boxes: %w", err)
	}
	text, err := s.client.Text()
	if err != nil {
		return nil, "", fmt.Errorf("ocr: text: %w", err)
	}

	tokens := make([]model.Token, 0, len(boxes))
	for _, box := range boxes {
		word := strings.TrimSpace(box.Word)
		if word == "" || box.Confidence < minWordConfidence {
			continue
		}
		tokens = append(tokens, model.Token{
			Text:   norm.NFC.String(word),
			X0:     float64(box.Box.Min.X),
			X1:     float64(box.Box.Max.X),
			Top:    float64(box.Box.Min.Y),
			Bottom: float64(box.Box.Max.Y),
		})
	}
	return tokens, norm.NFC.String(strings.TrimSpace(text)), nil
}
