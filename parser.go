package timesheet

import (
	"fmt"

	"github.com/Shudderr/timesheet-parser/model"
	"github.com/Shudderr/timesheet-parser/pdftoken"
	"github.com/Shudderr/timesheet-parser/schedule"
)

// Parser provides a fluent interface for extracting a weekly schedule.
// Each configuration method returns a new Parser instance, so a
// configured base can be shared and specialized without interference.
type Parser struct {
	// Source
	filename string

	source       *pdftoken.Source
	sourceOpened bool

	// Injected tokens bypass the PDF source entirely.
	tokens     []model.Token
	fullText   string
	haveTokens bool

	// Configuration
	options schedule.Options

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Parser with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (p *Parser) clone() *Parser {
	return &Parser{
		filename:     p.filename,
		source:       p.source,
		sourceOpened: p.sourceOpened,
		tokens:       p.tokens,
		fullText:     p.fullText,
		haveTokens:   p.haveTokens,
		options:      cloneOptions(p.options),
		err:          p.err,
	}
}

// ensureSource opens the PDF source if not already open.
func (p *Parser) ensureSource() error {
	if p.sourceOpened {
		return nil
	}
	if p.filename == "" {
		return fmt.Errorf("timesheet: no input specified")
	}

	source, err := pdftoken.Open(p.filename)
	if err != nil {
		return fmt.Errorf("timesheet: open %s: %w", p.filename, err)
	}
	p.source = source
	p.sourceOpened = true
	return nil
}

// Close releases the underlying PDF source. It is safe to call Close
// multiple times, and it is a no-op for token-backed parsers.
func (p *Parser) Close() error {
	if p.source == nil {
		return nil
	}
	err := p.source.Close()
	p.source = nil
	p.sourceOpened = false
	return err
}

// Week extracts the weekly schedule for the configured target employee.
// This is a terminal operation: a parser reading from a file or reader
// closes its source before returning. Token-backed parsers can call
// Week repeatedly.
//
// When nothing could be extracted the error wraps schedule.ErrNoMatch;
// see the schedule package for the specific failure reasons.
func (p *Parser) Week() (*model.WeekRecord, error) {
	if p.err != nil {
		return nil, p.err
	}

	tokens, fullText := p.tokens, p.fullText
	if !p.haveTokens {
		if err := p.ensureSource(); err != nil {
			return nil, err
		}
		defer p.Close()

		var err error
		tokens, fullText, err = p.source.FirstPage()
		if err != nil {
			return nil, err
		}
	}

	return schedule.Extract(tokens, fullText, p.options)
}
