// Package store persists the workspace as JSON in the XDG data
// directory. The on-disk envelope carries a schema version so older
// files can be migrated forward instead of rejected.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/dodorz/gridboard/internal/config"
	"github.com/dodorz/gridboard/internal/layout"
	"github.com/dodorz/gridboard/internal/workspace"
)

// envelope is the on-disk shape. SchemaVersion gates migration.
type envelope struct {
	SchemaVersion int                 `json:"schema_version"`
	Workspace     workspace.Workspace `json:"workspace"`
}

// legacyFile is the schema 1 shape: a bare layout, no profiles and no
// history metadata.
type legacyFile struct {
	Version int           `json:"version"`
	Layout  layout.Layout `json:"layout"`
}

// DefaultPath returns the workspace file location under the XDG data
// directory, creating parent directories as needed.
func DefaultPath() (string, error) {
	path, err := xdg.DataFile("gridboard/workspace.json")
	if err != nil {
		return "", fmt.Errorf("failed to resolve data path: %w", err)
	}
	return path, nil
}

// Load reads a workspace from path. A missing file is not an error: it
// yields a fresh default workspace, so first launch just works. All
// loaded layouts are re-sanitized; the file is external input.
func Load(path string) (workspace.Workspace, error) {
	w, err := LoadRaw(path)
	if err != nil {
		return workspace.Workspace{}, err
	}

	w.Committed = layout.Sanitize(w.Committed)
	for i := range w.Profiles {
		w.Profiles[i].Layout = layout.Sanitize(w.Profiles[i].Layout)
	}
	if w.ProfileByID(w.CurrentProfileID) == nil {
		w.CurrentProfileID = ""
	}
	return w, nil
}

// LoadRaw reads a workspace from path without repairing its layouts.
// Diagnostics want the file as it is on disk; interactive use should
// go through Load.
func LoadRaw(path string) (workspace.Workspace, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from XDG resolution or an explicit flag
	if errors.Is(err, fs.ErrNotExist) {
		return workspace.New(config.DefaultColumns), nil
	}
	if err != nil {
		return workspace.Workspace{}, fmt.Errorf("failed to read workspace file: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return workspace.Workspace{}, fmt.Errorf("failed to parse workspace file: %w", err)
	}

	if env.SchemaVersion >= config.LayoutSchemaVersion {
		return env.Workspace, nil
	}

	// Schema 1 files predate the envelope; detect them by shape.
	var legacy legacyFile
	if err := json.Unmarshal(data, &legacy); err != nil {
		return workspace.Workspace{}, fmt.Errorf("failed to parse workspace file: %w", err)
	}
	return migrateLegacy(legacy), nil
}

// migrateLegacy lifts a schema 1 file into the current shape: its lone
// layout becomes the committed layout of a single default profile.
func migrateLegacy(f legacyFile) workspace.Workspace {
	w := workspace.New(config.DefaultColumns)
	w.Committed = f.Layout
	if len(f.Layout.Cards) > 0 {
		id := w.SaveProfile(config.DefaultProfileName)
		w.CurrentProfileID = id
	}
	return w
}

// Save writes the workspace to path, creating parent directories. The
// write goes through a temp file and rename so a crash mid-write never
// truncates the previous state.
func Save(path string, w workspace.Workspace) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	data, err := json.MarshalIndent(envelope{
		SchemaVersion: config.LayoutSchemaVersion,
		Workspace:     w,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode workspace: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write workspace file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace workspace file: %w", err)
	}
	return nil
}
