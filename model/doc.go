// Package model provides the shared data types for timesheet extraction.
//
// Input side: a [Token] is a word with its position on the page, in
// top-down coordinates (Top grows downward). Token sources such as the
// pdftoken and ocr packages produce these; the grid and schedule packages
// consume them.
//
// Output side: a [WeekRecord] is the reconstructed week for one employee,
// holding the week-ending date, the per-column dates and a [DayInfo] per
// weekday. Pointer fields on [DayInfo] marshal to JSON null when a value
// is absent, which is the wire contract of the HTTP service.
package model
