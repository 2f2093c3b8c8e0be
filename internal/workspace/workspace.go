// Package workspace owns the committed layout and everything around it:
// bounded undo/redo history, named profiles keyed by window aspect ratio,
// the last-known-stable recovery snapshot, and the autosave hook. All
// geometry work is delegated to the layout package; this package only
// decides what gets remembered.
package workspace

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dodorz/gridboard/internal/config"
	"github.com/dodorz/gridboard/internal/layout"
)

// RatioRange is the window width/height ratio band a profile prefers.
// Advisory metadata: the workspace stores and serves ranges, the UI
// decides when to switch.
type RatioRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether ratio falls inside the band (inclusive).
func (r RatioRange) Contains(ratio float64) bool {
	return ratio >= r.Min && ratio <= r.Max
}

// Profile is a named, savable layout snapshot.
type Profile struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	RatioRange *RatioRange   `json:"ratio_range,omitempty"`
	Layout     layout.Layout `json:"layout"`
	Pinned     bool          `json:"pinned"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// SaveFunc persists the workspace after a commit. Persistence failures
// are the callback's problem; the in-memory state is already committed
// by the time it runs.
type SaveFunc func(Workspace)

// Workspace is the top-level mutable state of the dashboard.
type Workspace struct {
	Committed        layout.Layout  `json:"layout"`
	CurrentProfileID string         `json:"current_profile_id"`
	Profiles         []Profile      `json:"profiles"`
	AutoSave         bool           `json:"auto_save"`
	LastStable       *layout.Layout `json:"last_stable,omitempty"`

	history []layout.Layout
	future  []layout.Layout

	// Save, when set, runs after every successful Commit.
	Save SaveFunc `json:"-"`
}

// New returns a workspace holding an empty sanitized layout.
func New(columns int) Workspace {
	l := layout.Sanitize(layout.New(columns))
	return Workspace{Committed: l, AutoSave: true}
}

// Commit sanitizes candidate and makes it the committed layout. When
// recordHistory is set and the layout actually changed, the previous
// committed layout is pushed onto the undo stack (bounded, oldest
// evicted) and the redo stack is cleared. A committed layout that
// passes validation becomes the new recovery snapshot. With autosave
// on, the current profile absorbs the new layout.
func (w *Workspace) Commit(candidate layout.Layout, recordHistory bool) {
	next := layout.Sanitize(candidate)
	if layout.Equal(next, w.Committed) {
		return
	}
	if recordHistory {
		w.history = append(w.history, w.Committed)
		if len(w.history) > config.HistoryLimit {
			w.history = w.history[len(w.history)-config.HistoryLimit:]
		}
		w.future = nil
	}
	w.Committed = next
	if layout.Validate(next).Valid() {
		stable := next
		w.LastStable = &stable
	}
	if w.AutoSave {
		if p := w.profileByID(w.CurrentProfileID); p != nil {
			p.Layout = next
			p.UpdatedAt = time.Now()
		}
	}
	if w.Save != nil {
		w.Save(*w)
	}
}

// CanUndo reports whether an undo step is available.
func (w *Workspace) CanUndo() bool { return len(w.history) > 0 }

// CanRedo reports whether a redo step is available.
func (w *Workspace) CanRedo() bool { return len(w.future) > 0 }

// HistoryLen returns the current undo stack depth.
func (w *Workspace) HistoryLen() int { return len(w.history) }

// Undo steps back to the previous committed layout, moving the current
// one onto the redo stack. No-op on an empty history.
func (w *Workspace) Undo() bool {
	if len(w.history) == 0 {
		return false
	}
	prev := w.history[len(w.history)-1]
	w.history = w.history[:len(w.history)-1]
	w.future = append(w.future, w.Committed)
	w.Committed = layout.Sanitize(prev)
	w.syncAfterStep()
	return true
}

// Redo reverses the most recent Undo.
func (w *Workspace) Redo() bool {
	if len(w.future) == 0 {
		return false
	}
	next := w.future[len(w.future)-1]
	w.future = w.future[:len(w.future)-1]
	w.history = append(w.history, w.Committed)
	w.Committed = layout.Sanitize(next)
	w.syncAfterStep()
	return true
}

// syncAfterStep refreshes the stable snapshot, autosave target and
// persistence after an undo/redo, which bypasses Commit on purpose
// (stepping through history must not rewrite it).
func (w *Workspace) syncAfterStep() {
	if layout.Validate(w.Committed).Valid() {
		stable := w.Committed
		w.LastStable = &stable
	}
	if w.AutoSave {
		if p := w.profileByID(w.CurrentProfileID); p != nil {
			p.Layout = w.Committed
			p.UpdatedAt = time.Now()
		}
	}
	if w.Save != nil {
		w.Save(*w)
	}
}

// RecoverLastStable commits the last layout known to pass validation.
// The escape hatch for when external changes (column count, bad load)
// leave the live layout broken.
func (w *Workspace) RecoverLastStable() bool {
	if w.LastStable == nil {
		return false
	}
	w.Commit(*w.LastStable, true)
	return true
}

// ============================================================================
// Profiles
// ============================================================================

// SaveProfile snapshots the committed layout under a new named profile
// and selects it. Returns the new profile's ID.
func (w *Workspace) SaveProfile(name string) string {
	if name == "" {
		name = fmt.Sprintf("Profile %d", len(w.Profiles)+1)
	}
	p := Profile{
		ID:        uuid.New().String(),
		Name:      name,
		Layout:    w.Committed,
		UpdatedAt: time.Now(),
	}
	w.Profiles = append(w.Profiles, p)
	w.CurrentProfileID = p.ID
	return p.ID
}

// ApplyProfile commits the named profile's stored layout and makes it
// current. Unknown IDs are ignored.
func (w *Workspace) ApplyProfile(id string) bool {
	p := w.profileByID(id)
	if p == nil {
		return false
	}
	w.CurrentProfileID = id
	w.Commit(p.Layout, true)
	return true
}

// DuplicateProfile clones a profile under a fresh ID. The copy is not
// selected. Returns the new ID, or "" for unknown source IDs.
func (w *Workspace) DuplicateProfile(id string) string {
	p := w.profileByID(id)
	if p == nil {
		return ""
	}
	dup := *p
	dup.ID = uuid.New().String()
	dup.Name = p.Name + " copy"
	dup.Pinned = false
	dup.UpdatedAt = time.Now()
	if p.RatioRange != nil {
		rr := *p.RatioRange
		dup.RatioRange = &rr
	}
	w.Profiles = append(w.Profiles, dup)
	return dup.ID
}

// DeleteProfile removes a profile. Deleting the current profile leaves
// no profile selected; the committed layout is untouched.
func (w *Workspace) DeleteProfile(id string) bool {
	for i, p := range w.Profiles {
		if p.ID == id {
			w.Profiles = append(w.Profiles[:i], w.Profiles[i+1:]...)
			if w.CurrentProfileID == id {
				w.CurrentProfileID = ""
			}
			return true
		}
	}
	return false
}

// RenameProfile sets a profile's display name.
func (w *Workspace) RenameProfile(id, name string) bool {
	p := w.profileByID(id)
	if p == nil || name == "" {
		return false
	}
	p.Name = name
	p.UpdatedAt = time.Now()
	return true
}

// SetProfilePinned toggles the pin flag. Pinned profiles win ratio
// auto-selection ties.
func (w *Workspace) SetProfilePinned(id string, pinned bool) bool {
	p := w.profileByID(id)
	if p == nil {
		return false
	}
	p.Pinned = pinned
	return true
}

// SetProfileRatioRange associates an aspect-ratio band with a profile.
// The range is normalized so min <= max; nil clears the association.
func (w *Workspace) SetProfileRatioRange(id string, rr *RatioRange) bool {
	p := w.profileByID(id)
	if p == nil {
		return false
	}
	if rr == nil {
		p.RatioRange = nil
		return true
	}
	norm := *rr
	if norm.Min > norm.Max {
		norm.Min, norm.Max = norm.Max, norm.Min
	}
	p.RatioRange = &norm
	return true
}

// ProfileForRatio returns the profile whose ratio range contains the
// given width/height ratio, preferring pinned profiles, then array
// order. Returns nil when no range matches.
func (w *Workspace) ProfileForRatio(ratio float64) *Profile {
	var match *Profile
	for i := range w.Profiles {
		p := &w.Profiles[i]
		if p.RatioRange == nil || !p.RatioRange.Contains(ratio) {
			continue
		}
		if p.Pinned {
			return p
		}
		if match == nil {
			match = p
		}
	}
	return match
}

// ProfileByID returns the profile with the given ID, or nil.
func (w *Workspace) ProfileByID(id string) *Profile { return w.profileByID(id) }

func (w *Workspace) profileByID(id string) *Profile {
	if id == "" {
		return nil
	}
	for i := range w.Profiles {
		if w.Profiles[i].ID == id {
			return &w.Profiles[i]
		}
	}
	return nil
}
