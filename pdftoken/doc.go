// Package pdftoken reads positioned word tokens from text-layer PDFs.
//
// A [Source] wraps a PDF document and exposes its first page as the token
// slice and plain text that the schedule package consumes. The underlying
// reader reports individual glyph runs in bottom-up PDF user space; this
// package assembles them into words and flips them into the top-down
// coordinates of [model.Token]:
//
//	src, err := pdftoken.Open("roster.pdf")
//	if err != nil { ... }
//	defer src.Close()
//	tokens, text, err := src.FirstPage()
//
// Glyph runs that sit on the same baseline and closer together than
// [Config.GapTolerance] merge into one word, so "R", "o", "h", "a", "n"
// comes out as the single token "Rohan" while cell contents separated by
// real gaps stay apart. All extracted text is normalized to NFC.
package pdftoken
