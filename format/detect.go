// Package format identifies uploaded timesheet files.
//
// Timesheets arrive either as PDF exports with embedded text or as
// scanned images (PNG, JPEG, TIFF) that need OCR. Detection prefers
// content sniffing over the filename, since browser uploads often carry
// generic or misleading names.
package format

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Format represents a supported upload format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document with embedded text.
	PDF
	// PNG indicates a PNG scan.
	PNG
	// JPEG indicates a JPEG scan.
	JPEG
	// TIFF indicates a TIFF scan.
	TIFF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case TIFF:
		return "TIFF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case TIFF:
		return ".tiff"
	default:
		return ""
	}
}

// IsImage reports whether the format is a scanned image that needs OCR
// rather than text extraction.
func (f Format) IsImage() bool {
	switch f {
	case PNG, JPEG, TIFF:
		return true
	default:
		return false
	}
}

// Detect determines the file format from the filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return PDF
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".tif", ".tiff":
		return TIFF
	default:
		return Unknown
	}
}

// DetectFromMagic sniffs content to determine the format. This is more
// reliable than extension-based detection and is what the upload
// handler uses. Returns Unknown for anything outside the supported
// set.
func DetectFromMagic(data []byte) Format {
	mt := mimetype.Detect(data)
	switch {
	case mt.Is("application/pdf"):
		return PDF
	case mt.Is("image/png"):
		return PNG
	case mt.Is("image/jpeg"):
		return JPEG
	case mt.Is("image/tiff"):
		return TIFF
	default:
		return Unknown
	}
}
