package render

import (
	"image"

	"segclock/internal/segment"
	"segclock/internal/theme"
)

const (
	// DigitSlotWidth is the horizontal space budgeted per digit: the
	// face bitmap is exactly DigitSlotWidth*digitCount wide.
	DigitSlotWidth = 32
	// FaceHeight is the fixed height of the face bitmap.
	FaceHeight = 36

	// cellStride is the x-advance between consecutive digit cells.
	cellStride = 7 * 2 * cellBaseWidth / 16
)

// SignificantDigits counts the decimal digits of v, at minimum 1
// (zero has one significant digit).
func SignificantDigits(v int) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// Decompose splits value into digitCount decimal digits, most
// significant first. The caller clamps value to [0, 10^digitCount-1],
// so every position yields a digit 0-9.
func Decompose(value, digitCount int) []int {
	out := make([]int, digitCount)
	rest := value
	for i := 0; i < digitCount; i++ {
		p := pow10(digitCount - 1 - i)
		out[i] = rest / p
		rest -= out[i] * p
	}
	return out
}

func pow10(n int) int {
	p := 1
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}

// Face renders the full display: digitCount cells left to right, with
// leading zeros suppressed. A lone zero value still shows its rightmost
// zero, and a single-digit face never suppresses anything. The result is
// purely a function of (value, digitCount, theme).
func Face(value, digitCount int, th theme.Theme) *image.RGBA {
	width := DigitSlotWidth * digitCount
	face := NewCanvas(width, FaceHeight)
	face.FillRect(0, 0, width, FaceHeight, th.Background)

	leadIndex := digitCount - SignificantDigits(value)
	x := width / 16
	y := FaceHeight / 9

	for i, d := range Decompose(value, digitCount) {
		pattern := segment.ForDigit(d)
		if i < leadIndex && d == 0 && digitCount > 1 {
			pattern = segment.Blank
		}
		face.DrawImage(DigitCell(pattern, th), x, y)
		x += cellStride
	}
	return face.Image()
}
