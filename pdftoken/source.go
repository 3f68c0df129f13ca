package pdftoken

import (
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/Shudderr/timesheet-parser/model"
	"github.com/Shudderr/timesheet-parser/schedule"
)

// Height assumed when no MediaBox is reachable, in points (US Letter).
const defaultPageHeight = 792

// Source reads word tokens from a text-layer PDF document.
type Source struct {
	reader *pdf.Reader
	file   *os.File
	config Config
}

// Open opens the PDF file at path. The caller must Close the source.
func Open(path string) (*Source, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pdftoken: open %s: %w", path, err)
	}
	return &Source{reader: reader, file: file, config: DefaultConfig()}, nil
}

// FromReader reads a PDF held in memory or any random-access reader.
func FromReader(r io.ReaderAt, size int64) (*Source, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("pdftoken: read pdf: %w", err)
	}
	return &Source{reader: reader, config: DefaultConfig()}, nil
}

// Configure sets the word assembly tunables.
func (s *Source) Configure(config Config) error {
	if config.LineTolerance < 0 || config.GapTolerance < 0 {
		return fmt.Errorf("pdftoken: tolerances must not be negative")
	}
	s.config = config
	return nil
}

// Close releases the underlying file, if the source owns one.
func (s *Source) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

// FirstPage returns the word tokens and plain text of page one.
//
// It returns [schedule.ErrNoPages] when the document has no readable
// first page. The underlying reader panics on some malformed documents;
// those are converted into errors here.
func (s *Source) FirstPage() (tokens []model.Token, text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			tokens, text = nil, ""
			err = fmt.Errorf("pdftoken: malformed document: %v", r)
		}
	}()

	if s.reader.NumPage() < 1 {
		return nil, "", schedule.ErrNoPages
	}
	page := s.reader.Page(1)
	if page.V.IsNull() {
		return nil, "", schedule.ErrNoPages
	}

	plain, err := page.GetPlainText(nil)
	if err != nil {
		return nil, "", fmt.Errorf("pdftoken: extract text: %w", err)
	}

	content := page.Content()
	tokens = assembleWords(content.Text, pageHeight(page), s.config)
	return tokens, nfc(plain), nil
}

// pageHeight resolves the page's MediaBox height, walking up the page
// tree for inherited boxes.
func pageHeight(page pdf.Page) float64 {
	for v := page.V; !v.IsNull(); v = v.Key("Parent") {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() == 4 {
			return box.Index(3).Float64() - box.Index(1).Float64()
		}
	}
	return defaultPageHeight
}

func nfc(s string) string {
	return norm.NFC.String(s)
}
