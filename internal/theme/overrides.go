package theme

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlThemes is the on-disk shape of a theme override file:
//
//	themes:
//	  - name: ocean
//	    background: "#134F5C"
//	    segment_on: "#F3F3F3"
//	    segment_off: "#2A6D78"
//
// Only named built-in themes can be overridden, and only the fields
// present in the file are replaced. Sounds stay bound to the theme.
type yamlThemes struct {
	Themes []yamlTheme `yaml:"themes"`
}

type yamlTheme struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	SegmentOn  string `yaml:"segment_on"`
	SegmentOff string `yaml:"segment_off"`
}

// LoadOverrides reads a YAML override file and returns the built-in
// theme set with the file's colors merged in. A missing file is not an
// error; the built-ins are returned unchanged.
func LoadOverrides(path string) ([]Theme, error) {
	themes := Builtins()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return themes, nil
		}
		return themes, fmt.Errorf("read themes file: %w", err)
	}

	var fileData yamlThemes
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return themes, fmt.Errorf("parse themes yaml: %w", err)
	}

	for _, entry := range fileData.Themes {
		idx := indexByName(themes, entry.Name)
		if idx < 0 {
			return themes, fmt.Errorf("themes file: unknown theme %q", entry.Name)
		}
		if err := applyOverride(&themes[idx], entry); err != nil {
			return themes, fmt.Errorf("themes file: theme %q: %w", entry.Name, err)
		}
	}
	return themes, nil
}

func indexByName(themes []Theme, name string) int {
	for i := range themes {
		if themes[i].Name == name {
			return i
		}
	}
	return -1
}

func applyOverride(t *Theme, entry yamlTheme) error {
	if entry.Background != "" {
		c, err := parseHexColor(entry.Background)
		if err != nil {
			return err
		}
		t.Background = c
	}
	if entry.SegmentOn != "" {
		c, err := parseHexColor(entry.SegmentOn)
		if err != nil {
			return err
		}
		t.On = c
	}
	if entry.SegmentOff != "" {
		c, err := parseHexColor(entry.SegmentOff)
		if err != nil {
			return err
		}
		t.Off = c
	}
	return nil
}

// parseHexColor parses "#RRGGBB" into an opaque RGBA color.
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("bad color %q, want #RRGGBB", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return color.RGBA{r, g, b, 255}, nil
}
