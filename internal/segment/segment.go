// Package segment holds the encoding table that maps a decimal digit to
// the on/off states of the seven strokes of a segment display.
package segment

// Role indexes a stroke within a Pattern. The order matches the drawing
// order of the renderer: clockwise from the top bar, middle bar last.
type Role int

const (
	Top Role = iota
	UpperRight
	LowerRight
	Bottom
	LowerLeft
	UpperLeft
	Middle

	// RoleCount is the number of strokes in a digit.
	RoleCount
)

// Pattern is the lit/unlit state of the seven strokes of one digit cell.
type Pattern [RoleCount]bool

// Blank is the all-off pattern, used for suppressed leading zeros.
var Blank = Pattern{}

// digits encodes 0 through 9.
var digits = [10]Pattern{
	{true, true, true, true, true, true, false},
	{false, true, true, false, false, false, false},
	{true, true, false, true, true, false, true},
	{true, true, true, true, false, false, true},
	{false, true, true, false, false, true, true},
	{true, false, true, true, false, true, true},
	{true, false, true, true, true, true, true},
	{true, true, true, false, false, false, false},
	{true, true, true, true, true, true, true},
	{true, true, true, true, false, true, true},
}

// ForDigit returns the pattern for a digit 0-9. Callers clamp their
// values before decomposition, so an out-of-range digit only occurs on
// misuse; it yields Blank rather than a panic.
func ForDigit(d int) Pattern {
	if d < 0 || d > 9 {
		return Blank
	}
	return digits[d]
}
