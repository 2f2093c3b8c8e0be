package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tint "github.com/lrstanley/bubbletint/v2"

	"github.com/dodorz/gridboard/internal/card"
)

func writeTheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCustomThemeFileDerivesIDFromFilename(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "Midnight-Board.json", `{
		"fg": "#c0c0c0",
		"bg": "#1a1a1a"
	}`)

	theme, err := LoadCustomThemeFile(path)
	if err != nil {
		t.Fatalf("LoadCustomThemeFile failed: %v", err)
	}
	if theme.ID != "midnight-board" {
		t.Errorf("expected ID derived from filename, got %q", theme.ID)
	}
	if theme.DisplayName != "midnight-board" {
		t.Errorf("DisplayName should fall back to ID, got %q", theme.DisplayName)
	}
}

func TestLoadCustomThemeFileFillsMissingColors(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "sparse.json", `{
		"id": "sparse",
		"fg": "#d4d4d4",
		"bg": "#1e1e2e"
	}`)

	theme, err := LoadCustomThemeFile(path)
	if err != nil {
		t.Fatalf("LoadCustomThemeFile failed: %v", err)
	}
	if theme.Red == nil || theme.BrightCyan == nil || theme.White == nil {
		t.Error("fillDefaults should populate every ANSI color")
	}
	if theme.Cursor == nil {
		t.Fatal("cursor should default to fg")
	}
	if theme.Cursor.R != theme.Fg.R || theme.Cursor.G != theme.Fg.G || theme.Cursor.B != theme.Fg.B {
		t.Error("cursor should default to the fg color")
	}
}

func TestLoadCustomThemesSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "good.json", `{"id": "good", "fg": "#ffffff", "bg": "#000000"}`)
	writeTheme(t, dir, "broken.json", `{not json`)
	writeTheme(t, dir, "ignored.txt", `not a theme`)

	// Register needs the default registry in place.
	tint.NewDefaultRegistry()

	loaded, err := LoadCustomThemes(dir)
	if err != nil {
		t.Fatalf("LoadCustomThemes failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != "good" {
		t.Errorf("loaded = %v, want only the good theme", loaded)
	}
}

func TestLoadCustomThemeFileMissingFile(t *testing.T) {
	if _, err := LoadCustomThemeFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("missing file must error")
	}
}

func TestAccentsDistinguishKindsWhenDisabled(t *testing.T) {
	enabled = false
	seen := map[string]card.Kind{}
	for _, kind := range card.Kinds {
		r, g, b, a := AccentFor(kind).RGBA()
		key := fmt.Sprintf("%d-%d-%d-%d", r, g, b, a)
		if prev, ok := seen[key]; ok {
			t.Errorf("%s and %s share an accent color", prev, kind)
		}
		seen[key] = kind
	}
}
