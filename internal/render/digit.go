package render

import (
	"image"
	"image/color"

	"segclock/internal/segment"
	"segclock/internal/theme"
)

// Cell geometry. A digit is laid out on a nominal 32x36 backboard; the
// drawn cell spans 3/4 of the width and 7/9 of the height. All segment
// rectangles are fixed fractions of the backboard.
const (
	cellBaseWidth  = 32
	cellBaseHeight = 36

	// CellWidth and CellHeight are the dimensions of one digit bitmap.
	CellWidth  = 3 * cellBaseWidth / 4
	CellHeight = 7 * cellBaseHeight / 9
)

// segmentRect gives the cell-local rectangle of each stroke, indexed by
// segment.Role. Horizontal bars are W/2 x H/9, vertical bars W/8 x 2H/9,
// with the vertical and middle bars nudged down one pixel.
var segmentRect = [segment.RoleCount]image.Rectangle{
	segment.Top:        rect(cellBaseWidth/8, 0, cellBaseWidth/2, cellBaseHeight/9),
	segment.UpperRight: rect(3*cellBaseWidth/4-cellBaseWidth/8, cellBaseHeight/9+1, cellBaseWidth/8, 2*cellBaseHeight/9),
	segment.LowerRight: rect(3*cellBaseWidth/4-cellBaseWidth/8, 4*cellBaseHeight/9+1, cellBaseWidth/8, 2*cellBaseHeight/9),
	segment.Bottom:     rect(cellBaseWidth/8, 2*cellBaseHeight/3, cellBaseWidth/2, cellBaseHeight/9),
	segment.LowerLeft:  rect(0, 4*cellBaseHeight/9+1, cellBaseWidth/8, 2*cellBaseHeight/9),
	segment.UpperLeft:  rect(0, cellBaseHeight/9+1, cellBaseWidth/8, 2*cellBaseHeight/9),
	segment.Middle:     rect(cellBaseWidth/8, cellBaseHeight/3+1, cellBaseWidth/2, cellBaseHeight/9),
}

func rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// DigitCell renders one digit cell. Every stroke is always drawn: lit
// strokes in the theme's on-color, unlit ones in the off-color, so the
// ghost-segment look of a real display is preserved. The area between
// strokes stays transparent and picks up the face background on blit.
func DigitCell(p segment.Pattern, th theme.Theme) *image.RGBA {
	cell := NewCanvas(CellWidth, CellHeight)
	for role := segment.Top; role < segment.RoleCount; role++ {
		r := segmentRect[role]
		cell.FillRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), segmentColor(p[role], th))
	}
	return cell.Image()
}

func segmentColor(lit bool, th theme.Theme) color.RGBA {
	if lit {
		return th.On
	}
	return th.Off
}
