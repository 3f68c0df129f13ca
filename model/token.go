package model

// Token is a positioned word on a page.
//
// Coordinates are top-down page points: Top is the distance from the top
// edge of the page, so Top < Bottom and a smaller Top means higher on the
// page. X0 and X1 are the left and right edges.
type Token struct {
	Text   string
	X0     float64
	X1     float64
	Top    float64
	Bottom float64
}

// Center returns the horizontal midpoint of the token.
func (t Token) Center() float64 {
	return (t.X0 + t.X1) / 2
}

// Width returns the horizontal extent of the token.
func (t Token) Width() float64 {
	return t.X1 - t.X0
}
