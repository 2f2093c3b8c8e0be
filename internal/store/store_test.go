package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dodorz/gridboard/internal/card"
	"github.com/dodorz/gridboard/internal/grid"
	"github.com/dodorz/gridboard/internal/layout"
	"github.com/dodorz/gridboard/internal/workspace"
)

func testWorkspace() workspace.Workspace {
	w := workspace.New(24)
	l := layout.New(24)
	c := card.Placement{ID: "c1", Kind: card.KindSchedule, Rect: grid.Rect{X: 0, Y: 0, W: 8, H: 6}}
	l.Cards = []card.Placement{c.Normalize(24)}
	w.Commit(l, true)
	id := w.SaveProfile("Desk")
	w.SetProfileRatioRange(id, &workspace.RatioRange{Min: 1.2, Max: 2.0})
	return w
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")
	want := testWorkspace()

	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if !layout.Equal(got.Committed, want.Committed) {
		t.Error("committed layout did not survive the round trip")
	}
	if got.CurrentProfileID != want.CurrentProfileID {
		t.Errorf("current profile = %q, want %q", got.CurrentProfileID, want.CurrentProfileID)
	}
	if len(got.Profiles) != 1 {
		t.Fatalf("profiles = %d, want 1", len(got.Profiles))
	}
	p := got.Profiles[0]
	if p.Name != "Desk" || p.RatioRange == nil || p.RatioRange.Min != 1.2 || p.RatioRange.Max != 2.0 {
		t.Errorf("profile fields lost: %+v", p)
	}
	if !got.AutoSave {
		t.Error("autosave flag lost")
	}
}

func TestLoadMissingFile(t *testing.T) {
	w, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("missing file must not error, got %v", err)
	}
	if len(w.Committed.Cards) != 0 {
		t.Error("fresh workspace should start empty")
	}
	if w.Committed.Columns < 1 {
		t.Error("fresh workspace must carry sane grid metrics")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workspace.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("corrupt file must error")
	}
}

func TestLoadMigratesLegacySchema(t *testing.T) {
	// Schema 1 was a bare layout with no profile or history metadata.
	legacy := `{
  "version": 1,
  "layout": {
    "cards": [
      {"id": "old", "kind": "timer", "rect": {"x": 0, "y": 0, "w": 4, "h": 2}}
    ],
    "columns": 24,
    "row_height": 40,
    "gap": 8,
    "compact": "vertical",
    "version": 1
  }
}`
	path := filepath.Join(t.TempDir(), "workspace.json")
	if err := os.WriteFile(path, []byte(legacy), 0600); err != nil {
		t.Fatal(err)
	}

	w, err := Load(path)
	if err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	if i := w.Committed.CardByID("old"); i < 0 {
		t.Fatal("legacy card lost during migration")
	}
	if w.ProfileByID(w.CurrentProfileID) == nil {
		t.Error("migration should leave a selected profile holding the legacy layout")
	}

	// Re-saving writes the current schema; loading again stays stable.
	if err := Save(path, w); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), `"schema_version": 2`) {
		t.Error("re-saved file should carry the current schema version")
	}
}

func TestLoadRepairsBrokenGeometry(t *testing.T) {
	w := testWorkspace()
	// Corrupt the committed layout on disk: overlapping cards and an
	// out-of-range rect must be healed on load, never rejected.
	i := w.Committed.CardByID("c1")
	w.Committed.Cards = append(w.Committed.Cards, w.Committed.Cards[i])
	w.Committed.Cards[1].Rect = grid.Rect{X: -5, Y: -3, W: 99, H: 0}

	path := filepath.Join(t.TempDir(), "workspace.json")
	if err := Save(path, w); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rep := layout.Validate(got.Committed); !rep.Valid() {
		t.Errorf("loaded layout still invalid: %+v", rep.Issues)
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workspace.json")
	if err := Save(path, testWorkspace()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should be renamed away")
	}
}
