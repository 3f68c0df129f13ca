//go:build !ocr

// Package ocr recognizes word tokens from scanned timesheet images.
//
// This is the stub implementation used when the "ocr" build tag is not
// set. Constructing a Source fails with ErrOCRNotEnabled.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"github.com/Shudderr/timesheet-parser/model"
)

// Source is a stub recognizer that returns errors for all operations.
type Source struct{}

// NewSource returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func NewSource() (*Source, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub source. It is safe to call on a nil source.
func (s *Source) Close() error {
	return nil
}

// SetLanguage returns an error indicating OCR support is not enabled.
func (s *Source) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}

// SetPageSegMode returns an error indicating OCR support is not enabled.
func (s *Source) SetPageSegMode(mode PageSegMode) error {
	return ErrOCRNotEnabled
}

// Recognize returns an error indicating OCR support is not enabled.
func (s *Source) Recognize(imageData []byte) ([]model.Token, string, error) {
	return nil, "", ErrOCRNotEnabled
}
