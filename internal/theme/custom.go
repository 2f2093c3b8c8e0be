package theme

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	tint "github.com/lrstanley/bubbletint/v2"
)

// GetThemesDir returns the custom themes directory
// (~/.config/gridboard/themes/), creating it if needed.
func GetThemesDir() (string, error) {
	keep, err := xdg.ConfigFile("gridboard/themes/.keep")
	if err != nil {
		return "", fmt.Errorf("failed to get themes directory: %w", err)
	}
	return filepath.Dir(keep), nil
}

// LoadCustomThemes registers every *.json theme in dir with bubbletint
// and returns the IDs it registered. A malformed file logs a warning
// and is skipped; startup never fails over a bad theme.
func LoadCustomThemes(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan themes directory: %w", err)
	}

	var loaded []string
	for _, path := range paths {
		t, err := LoadCustomThemeFile(path)
		if err != nil {
			log.Printf("Warning: skipping custom theme %s: %v", filepath.Base(path), err)
			continue
		}
		tint.Register(t)
		loaded = append(loaded, t.ID)
	}
	return loaded, nil
}

// LoadCustomThemeFile parses one theme JSON file. The ID falls back to
// the lowercased filename, the display name to the ID, and any missing
// colors to the xterm palette.
func LoadCustomThemeFile(path string) (*tint.Tint, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied theme files are the point
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var t tint.Tint
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse theme JSON: %w", err)
	}

	if t.ID == "" {
		base := filepath.Base(path)
		t.ID = strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if t.ID == "" {
		return nil, fmt.Errorf("theme has no ID")
	}
	if t.DisplayName == "" {
		t.DisplayName = t.ID
	}

	fillDefaults(&t)
	return &t, nil
}

// fillDefaults backfills missing colors: fg/bg and the normal ANSI row
// from the xterm palette, cursor from fg, bright variants from their
// normal counterparts.
func fillDefaults(t *tint.Tint) {
	base := []struct {
		slot **tint.Color
		hex  string
	}{
		{&t.Fg, "#e5e5e5"},
		{&t.Bg, "#000000"},
		{&t.Black, "#000000"},
		{&t.Red, "#cd0000"},
		{&t.Green, "#00cd00"},
		{&t.Yellow, "#cdcd00"},
		{&t.Blue, "#0000ee"},
		{&t.Purple, "#cd00cd"},
		{&t.Cyan, "#00cdcd"},
		{&t.White, "#e5e5e5"},
	}
	for _, c := range base {
		if *c.slot == nil {
			*c.slot = tint.FromHex(c.hex)
		}
	}

	if t.Cursor == nil {
		t.Cursor = copyColor(t.Fg)
	}

	bright := []struct {
		slot **tint.Color
		from *tint.Color
	}{
		{&t.BrightBlack, t.Black},
		{&t.BrightRed, t.Red},
		{&t.BrightGreen, t.Green},
		{&t.BrightYellow, t.Yellow},
		{&t.BrightBlue, t.Blue},
		{&t.BrightPurple, t.Purple},
		{&t.BrightCyan, t.Cyan},
		{&t.BrightWhite, t.White},
	}
	for _, c := range bright {
		if *c.slot == nil {
			*c.slot = copyColor(c.from)
		}
	}
}

func copyColor(c *tint.Color) *tint.Color {
	if c == nil {
		return nil
	}
	dup := *c
	return &dup
}
