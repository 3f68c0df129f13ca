package api

import (
	"bytes"
	"errors"

	timesheet "github.com/Shudderr/timesheet-parser"
	"github.com/Shudderr/timesheet-parser/format"
	"github.com/Shudderr/timesheet-parser/model"
	"github.com/Shudderr/timesheet-parser/ocr"
)

// ErrUnsupportedFormat is returned for uploads that are neither PDFs
// nor supported scan formats.
var ErrUnsupportedFormat = errors.New("api: unsupported file format")

// ParseService turns uploaded timesheets into week records. PDF uploads
// go through text extraction; PNG, JPEG and TIFF scans go through OCR
// when the server is built with -tags ocr.
type ParseService struct {
	// OCRLanguage is the Tesseract language pack used for scans.
	OCRLanguage string
}

func (s *ParseService) Parse(data []byte, targetName string) (*model.WeekRecord, error) {
	f := format.DetectFromMagic(data)
	switch {
	case f == format.PDF:
		return timesheet.FromReader(bytes.NewReader(data), int64(len(data))).
			Target(targetName).
			Week()
	case f.IsImage():
		return s.parseScan(data, targetName)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func (s *ParseService) parseScan(data []byte, targetName string) (*model.WeekRecord, error) {
	src, err := ocr.NewSource()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if s.OCRLanguage != "" {
		if err := src.SetLanguage(s.OCRLanguage); err != nil {
			return nil, err
		}
	}
	if err := src.SetPageSegMode(ocr.PSM_SPARSE_TEXT); err != nil {
		return nil, err
	}

	tokens, text, err := src.Recognize(data)
	if err != nil {
		return nil, err
	}
	return timesheet.FromTokens(tokens, text).Target(targetName).Week()
}
