package schedule

import (
	"errors"
	"fmt"
)

// Extraction failures wrap [ErrNoMatch]: errors.Is matches both the
// concrete cause and the umbrella sentinel.
var (
	// ErrNoMatch is the umbrella failure: no schedule could be extracted.
	ErrNoMatch = errors.New("schedule: no schedule extracted")

	// ErrNoPages means the source document had no page to read.
	ErrNoPages = fmt.Errorf("%w: document has no pages", ErrNoMatch)

	// ErrTargetNotPresent means the target name appears nowhere in the
	// page text.
	ErrTargetNotPresent = fmt.Errorf("%w: target name not found on page", ErrNoMatch)

	// ErrLayoutNotDetected means the weekday header row could not be
	// found, so no column grid exists.
	ErrLayoutNotDetected = fmt.Errorf("%w: weekday column layout not detected", ErrNoMatch)
)
