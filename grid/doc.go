// Package grid reconstructs the positional structure of a timesheet page.
//
// A timesheet page lays out one column per weekday with no reliable ruling
// lines, so the column structure has to be inferred from the text itself.
// The package derives it from the weekday header row and groups the
// remaining tokens into rows:
//
//   - [Detector] finds the weekday header tokens and converts their
//     horizontal centers into column [Boundaries]
//   - [Grouper] clusters tokens into [Row] values keyed by rounded top
//     coordinate, assembling per-column cell text
//
// # Boundary construction
//
// With the header centers sorted left to right, the boundary between two
// adjacent columns is the midpoint of their centers. The outer bounds
// mirror the first and last midpoint around the outermost centers, giving
// every column a symmetric catchment interval:
//
//	centers:      100   200   300   400   500
//	boundaries: 50   150   250   350   450   550
//
// Columns are half open: a token center on a boundary belongs to the column
// to its right. Centers left of the first boundary join the row's area
// gutter; centers right of the last boundary are dropped.
package grid
