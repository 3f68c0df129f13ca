// Package timesheet provides a fluent API for extracting an employee's
// weekly schedule from roster timesheet PDFs.
//
// Basic usage:
//
//	week, err := timesheet.Open("roster.pdf").Target("Rohan").Week()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(*week.WeekEnding)
//
// With options:
//
//	week, err := timesheet.Open("roster.pdf").
//	    Target("Rohan").
//	    Weekdays("Mon", "Tue", "Wed", "Thu", "Fri").
//	    Markers("ATM", "SELFSCAN").
//	    Week()
//
// For advanced use cases, the lower-level schedule and pdftoken
// packages are also available.
package timesheet

import (
	"io"

	"github.com/Shudderr/timesheet-parser/model"
	"github.com/Shudderr/timesheet-parser/pdftoken"
	"github.com/Shudderr/timesheet-parser/schedule"
)

// Open prepares a Parser for a timesheet PDF on disk. The file is not
// read until a terminal operation like Week() runs.
//
// Example:
//
//	week, err := timesheet.Open("roster.pdf").Target("Rohan").Week()
func Open(filename string) *Parser {
	return &Parser{
		filename: filename,
		options:  schedule.DefaultOptions(),
	}
}

// FromReader creates a Parser over an already-loaded PDF, such as an
// upload held in memory.
//
// Example:
//
//	week, err := timesheet.FromReader(bytes.NewReader(data), int64(len(data))).
//	    Target("Rohan").
//	    Week()
func FromReader(r io.ReaderAt, size int64) *Parser {
	source, err := pdftoken.FromReader(r, size)
	return &Parser{
		source:       source,
		sourceOpened: err == nil,
		options:      schedule.DefaultOptions(),
		err:          err,
	}
}

// FromTokens creates a Parser over word tokens produced elsewhere, such
// as OCR output from a scanned roster. fullText is the page text used
// for the quick target presence check before any grid work.
func FromTokens(tokens []model.Token, fullText string) *Parser {
	return &Parser{
		tokens:     tokens,
		fullText:   fullText,
		haveTokens: true,
		options:    schedule.DefaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	week := timesheet.Must(timesheet.Open("roster.pdf").Target("Rohan").Week())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
