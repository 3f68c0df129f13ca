// Package classify decides what role a grid row plays on a timesheet.
//
// Rows on a sheet are not labeled, so their role is inferred from cell
// content: a row where most cells carry a date is the date header row, a
// row where most cells carry a shift range like "9:00 - 17:30" is a
// shift-time row, and everything else is content (names, markers, blanks).
//
// The matching expressions live in [Patterns] and the match-count
// thresholds in [Config], so sheets with different date formats or column
// counts can be handled by configuring a [Classifier] rather than by
// changing code.
package classify
