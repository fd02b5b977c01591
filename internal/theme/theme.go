// Package theme holds the five built-in timer palettes and the optional
// YAML override layer for user-supplied colors. A theme pairs the
// background, lit-segment, and unlit-segment colors with an alarm sound.
package theme

import (
	"fmt"
	"image/color"

	"segclock/internal/domain"
)

// Sound identifiers for the built-in themes.
const (
	SoundStandard domain.SoundID = "standard"
	SoundOcean    domain.SoundID = "ocean"
	SoundPlayful  domain.SoundID = "playful"
	SoundRegal    domain.SoundID = "regal"
	SoundStriking domain.SoundID = "striking"
)

// Theme is one display palette plus its alarm sound. Immutable after
// construction; lookups only.
type Theme struct {
	Name       string
	Background color.RGBA
	On         color.RGBA
	Off        color.RGBA
	Sound      domain.SoundID
}

// Count is the number of built-in themes. Valid indices are [0, Count).
const Count = 5

// builtins are the five stock palettes: standard, ocean, playful,
// regal, striking.
var builtins = [Count]Theme{
	{
		Name:       "standard",
		Background: color.RGBA{102, 102, 102, 255},
		On:         color.RGBA{255, 0, 0, 255},
		Off:        color.RGBA{128, 128, 128, 255},
		Sound:      SoundStandard,
	},
	{
		Name:       "ocean",
		Background: color.RGBA{19, 79, 92, 255},
		On:         color.RGBA{243, 243, 243, 255},
		Off:        color.RGBA{42, 109, 120, 255},
		Sound:      SoundOcean,
	},
	{
		Name:       "playful",
		Background: color.RGBA{103, 78, 167, 255},
		On:         color.RGBA{222, 7, 230, 255},
		Off:        color.RGBA{131, 102, 173, 255},
		Sound:      SoundPlayful,
	},
	{
		Name:       "regal",
		Background: color.RGBA{51, 42, 18, 255},
		On:         color.RGBA{199, 152, 56, 255},
		Off:        color.RGBA{105, 100, 86, 255},
		Sound:      SoundRegal,
	},
	{
		Name:       "striking",
		Background: color.RGBA{0, 0, 0, 255},
		On:         color.RGBA{0, 255, 0, 255},
		Off:        color.RGBA{38, 4, 2, 255},
		Sound:      SoundStriking,
	},
}

// Builtins returns a copy of the built-in theme set.
func Builtins() []Theme {
	out := make([]Theme, Count)
	copy(out[:], builtins[:])
	return out
}

// ByIndex returns the built-in theme at index i.
func ByIndex(i int) (Theme, error) {
	return From(Builtins(), i)
}

// From returns themes[i], validating the index against the given set.
func From(themes []Theme, i int) (Theme, error) {
	if i < 0 || i >= len(themes) {
		return Theme{}, fmt.Errorf("theme %d: %w", i, domain.ErrInvalidTheme)
	}
	return themes[i], nil
}
