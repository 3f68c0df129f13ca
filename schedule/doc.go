// Package schedule extracts one employee's weekly schedule from a
// positionally reconstructed timesheet page.
//
// [Extract] is the entry point. It takes the page's tokens and full text
// plus [Options] naming the target employee, and returns a
// [model.WeekRecord] or an error from the failure taxonomy in this
// package.
//
// # Row walk
//
// After the grid package has derived column boundaries and rows, the
// extractor walks the rows top to bottom with two pieces of sticky state:
// the shift ranges of the most recent shift-time row and the most recent
// non-empty area label. A shift-time row updates the ranges and is never
// scanned for names. Any other row is scanned for the target name per
// weekday cell; a hit records a [Capture] pairing the column's current
// shift range with the current area. Rows seen before the first shift-time
// row contribute nothing.
//
// # Resolution
//
// An employee can appear several times under one weekday when the sheet
// stacks multiple shift blocks. [ResolveDay] picks the capture with the
// latest start time; on a tie the earliest capture on the page wins. Note
// markers such as "ATM" accumulate across all of a day's sightings and are
// folded into one deduplicated, sorted list.
//
// # Failures
//
// Structural failures (no pages, target absent, no recognizable weekday
// header row) all wrap [ErrNoMatch]. Soft absences never fail: a missing
// date row, a column without a shift range or a day without sightings
// simply leave the corresponding fields null.
package schedule
