// Package domain defines the ports and shared types the timer widget is
// built against. Concrete collaborators (the drawing canvas, the audio
// device, the host frame loop) live in other packages and plug in here.
package domain

import (
	"image"
	"image/color"
)

// SoundID names an alarm sound. Each theme carries one.
type SoundID string

// Surface is the 2D drawing contract the renderer draws onto.
// Implementations can be in-memory bitmaps, hardware framebuffers, or
// anything else that can fill rectangles and compose images.
type Surface interface {
	FillRect(x, y, w, h int, c color.Color)
	DrawImage(img image.Image, x, y int)
	Bounds() image.Rectangle
}

// AlarmDevice plays looping alarm sounds. PlayLoop must be idempotent:
// calling it every frame while the sound is already looping keeps a
// single loop going rather than stacking playbacks.
type AlarmDevice interface {
	PlayLoop(sound SoundID)
	Stop(sound SoundID)
	SetVolume(sound SoundID, volume int)
}

// Tickable is driven by the host once per animation frame with a
// monotonic millisecond clock value.
type Tickable interface {
	Tick(nowMillis int64)
}

// Renderable exposes the most recently rendered bitmap. The returned
// image is replaced, never mutated, on visible state changes.
type Renderable interface {
	CurrentBitmap() *image.RGBA
}
