// Package render turns a timer value into a themed seven-segment bitmap.
// It implements the drawing-surface port over an in-memory RGBA image
// and composes per-digit cells into the full face.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"segclock/internal/domain"
)

// Compile-time interface check.
var _ domain.Surface = (*Canvas)(nil)

// Canvas is an in-memory RGBA drawing surface. A fresh canvas is fully
// transparent until drawn on.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a transparent canvas of the given size.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// FillRect fills the rectangle at (x, y) with the given color.
func (c *Canvas) FillRect(x, y, w, h int, col color.Color) {
	draw.Draw(c.img, image.Rect(x, y, x+w, y+h), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawImage composites img onto the canvas with its top-left corner at
// (x, y). Transparent pixels in img leave the canvas untouched.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	target := img.Bounds().Sub(img.Bounds().Min).Add(image.Pt(x, y))
	draw.Draw(c.img, target, img, img.Bounds().Min, draw.Over)
}

// Bounds returns the canvas extent.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Image returns the backing bitmap.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}
