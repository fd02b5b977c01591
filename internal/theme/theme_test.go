package theme

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"segclock/internal/domain"
)

func TestByIndexValid(t *testing.T) {
	names := []string{"standard", "ocean", "playful", "regal", "striking"}
	for i, want := range names {
		th, err := ByIndex(i)
		if err != nil {
			t.Fatalf("ByIndex(%d): %v", i, err)
		}
		if th.Name != want {
			t.Errorf("ByIndex(%d): got %q, want %q", i, th.Name, want)
		}
		if th.Sound == "" {
			t.Errorf("theme %q has no sound", th.Name)
		}
	}
}

func TestByIndexOutOfRange(t *testing.T) {
	for _, i := range []int{-1, Count, 99} {
		if _, err := ByIndex(i); !errors.Is(err, domain.ErrInvalidTheme) {
			t.Errorf("ByIndex(%d): got %v, want ErrInvalidTheme", i, err)
		}
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	themes, err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(themes) != Count {
		t.Fatalf("got %d themes, want %d", len(themes), Count)
	}
	if themes[0] != builtins[0] {
		t.Error("missing file should leave built-ins unchanged")
	}
}

func TestLoadOverridesMergesColors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.yaml")
	raw := "themes:\n" +
		"  - name: ocean\n" +
		"    background: \"#010203\"\n" +
		"    segment_on: \"#FFFFFF\"\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	themes, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}

	ocean := themes[1]
	if ocean.Background != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("background not overridden: %v", ocean.Background)
	}
	if ocean.On != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("on-color not overridden: %v", ocean.On)
	}
	// Fields absent from the file keep their built-in values.
	if ocean.Off != builtins[1].Off {
		t.Errorf("off-color should be untouched: %v", ocean.Off)
	}
	if ocean.Sound != SoundOcean {
		t.Errorf("sound should be untouched: %v", ocean.Sound)
	}
	// Other themes untouched.
	if themes[0] != builtins[0] {
		t.Error("standard theme should be untouched")
	}
}

func TestLoadOverridesRejectsUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.yaml")
	raw := "themes:\n  - name: neon\n    background: \"#000000\"\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOverrides(path); err == nil {
		t.Fatal("expected error for unknown theme name")
	}
}

func TestParseHexColorRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "#fff", "123456", "#GGGGGG"} {
		if _, err := parseHexColor(s); err == nil {
			t.Errorf("parseHexColor(%q): expected error", s)
		}
	}
}
