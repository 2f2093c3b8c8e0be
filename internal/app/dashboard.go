// Package app provides the core GRIDBOARD application logic: the
// dashboard model tying the layout engine, interaction session, and
// workspace together under a bubbletea event loop.
package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dodorz/gridboard/internal/card"
	"github.com/dodorz/gridboard/internal/catalog"
	"github.com/dodorz/gridboard/internal/config"
	"github.com/dodorz/gridboard/internal/layout"
	"github.com/dodorz/gridboard/internal/session"
	"github.com/dodorz/gridboard/internal/store"
	"github.com/dodorz/gridboard/internal/ui"
	"github.com/dodorz/gridboard/internal/workspace"
)

// Mode represents the current interaction mode of the application.
type Mode int

const (
	// BoardMode is the default mode: cards can be focused, moved and edited.
	BoardMode Mode = iota
	// RenameMode captures text input for the focused card's title.
	RenameMode
	// PickerMode shows the add-card kind picker.
	PickerMode
	// ProfilePickerMode shows the saved profile list.
	ProfilePickerMode
	// ProfileNameMode captures text input for a new profile's name.
	ProfileNameMode
	// HelpMode shows the keybinding reference overlay.
	HelpMode
	// LogsMode shows the log overlay.
	LogsMode
)

// Notification represents a temporary notification message.
type Notification struct {
	ID        string
	Message   string
	Level     string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// LogMessage represents a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // INFO, WARN, ERROR
	Message string
}

// Dashboard is the main application state.
type Dashboard struct {
	Workspace workspace.Workspace
	Session   session.Session
	// Preview is the live layout during a gesture, nil when idle.
	Preview *layout.Layout

	FocusedID string
	Width     int
	Height    int
	Mode      Mode

	// Gesture tracking: where the pointer went down, in terminal cells.
	DragOriginX int
	DragOriginY int

	// Overlay state.
	InputBuffer  string
	PickerIndex  int
	ProfileIndex int

	LogMessages   []LogMessage
	Notifications []Notification
	Telemetry     ui.Telemetry

	Config   *config.UserConfig
	SavePath string

	lastTelemetry time.Time
}

// Options configures a new Dashboard.
type Options struct {
	Config   *config.UserConfig
	SavePath string
}

// NewDashboard loads the persisted workspace and wires autosave. A
// failed load falls back to a fresh starter board rather than refusing
// to start; the error is surfaced in the log overlay.
func NewDashboard(opts Options) *Dashboard {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	d := &Dashboard{
		Config:   cfg,
		SavePath: opts.SavePath,
	}

	w, err := store.Load(opts.SavePath)
	if err != nil {
		d.LogError("failed to load workspace: %v", err)
		w = workspace.New(cfg.Grid.Columns)
	}
	d.Workspace = w

	if len(d.Workspace.Committed.Cards) == 0 && len(d.Workspace.Profiles) == 0 {
		d.seedStarterBoard()
	}
	d.applyGridConfig()

	d.Workspace.Save = func(w workspace.Workspace) {
		if d.SavePath == "" {
			return
		}
		if err := store.Save(d.SavePath, w); err != nil {
			d.LogError("autosave failed: %v", err)
		}
	}

	if cards := d.Workspace.Committed.VisiblePlacements(); len(cards) > 0 {
		d.FocusedID = cards[0].ID
	}
	return d
}

// seedStarterBoard fills a brand-new workspace with the catalog's
// starter cards so first launch isn't a blank screen.
func (d *Dashboard) seedStarterBoard() {
	l := layout.New(d.Config.Grid.Columns)
	l.Cards = catalog.DefaultLayoutCards(d.Config.Grid.Columns)
	d.Workspace.Commit(l, false)
	d.Workspace.SaveProfile(config.DefaultProfileName)
	d.LogInfo("created starter board")
}

// applyGridConfig pushes the [grid] config section into the committed
// layout, re-sanitizing so cards stay legal under the new metrics.
func (d *Dashboard) applyGridConfig() {
	l := d.Workspace.Committed
	l.RowHeight = d.Config.Grid.RowHeight
	l.Gap = d.Config.Grid.Gap
	switch d.Config.Grid.CompactMode {
	case "none":
		l.Compact = layout.CompactNone
	default:
		l.Compact = layout.CompactVertical
	}
	l = layout.SetColumns(l, d.Config.Grid.Columns)
	d.Workspace.Commit(l, false)
}

// CurrentLayout returns what should be on screen right now: the live
// gesture preview when one exists, the committed layout otherwise.
func (d *Dashboard) CurrentLayout() layout.Layout {
	if d.Preview != nil {
		return *d.Preview
	}
	return d.Workspace.Committed
}

// Metrics returns the grid-to-cell mapping for the current terminal size.
func (d *Dashboard) Metrics() session.Metrics {
	return ui.BoardMetrics(d.CurrentLayout(), d.boardWidth())
}

func (d *Dashboard) boardWidth() int {
	if d.Width < 1 {
		return 80
	}
	return d.Width
}

// FocusedCard returns the focused card, or nil.
func (d *Dashboard) FocusedCard() *card.Placement {
	l := d.Workspace.Committed
	i := l.CardByID(d.FocusedID)
	if i < 0 {
		return nil
	}
	c := l.Cards[i]
	return &c
}

// Commit runs candidate through the workspace, recording history.
func (d *Dashboard) Commit(candidate layout.Layout) {
	d.Workspace.Commit(candidate, true)
	d.ensureFocus()
}

// ensureFocus moves focus to the first visible card when the focused
// one was removed or hidden.
func (d *Dashboard) ensureFocus() {
	l := d.Workspace.Committed
	if i := l.CardByID(d.FocusedID); i >= 0 && !l.Cards[i].Hidden {
		return
	}
	d.FocusedID = ""
	if cards := l.VisiblePlacements(); len(cards) > 0 {
		d.FocusedID = cards[0].ID
	}
}

// CycleFocus moves focus to the next (or previous) visible card.
func (d *Dashboard) CycleFocus(backward bool) {
	cards := d.Workspace.Committed.VisiblePlacements()
	if len(cards) == 0 {
		return
	}
	idx := 0
	for i, c := range cards {
		if c.ID == d.FocusedID {
			idx = i
			break
		}
	}
	if backward {
		idx = (idx - 1 + len(cards)) % len(cards)
	} else {
		idx = (idx + 1) % len(cards)
	}
	d.FocusedID = cards[idx].ID
}

// AspectRatio reports the effective window aspect ratio, correcting
// for terminal cells being roughly twice as tall as they are wide.
func (d *Dashboard) AspectRatio() float64 {
	if d.Height < 1 {
		return 0
	}
	return float64(d.Width) / (2 * float64(d.Height))
}

// AutoSelectProfile switches to the profile matching the current aspect
// ratio, if any and not already current.
func (d *Dashboard) AutoSelectProfile() {
	p := d.Workspace.ProfileForRatio(d.AspectRatio())
	if p == nil || p.ID == d.Workspace.CurrentProfileID {
		return
	}
	if d.Workspace.ApplyProfile(p.ID) {
		d.ensureFocus()
		d.LogInfo("switched to profile %q for ratio %.2f", p.Name, d.AspectRatio())
		d.ShowNotification("profile: "+p.Name, "info", config.NotificationDuration)
	}
}

// Log adds a new log message to the log buffer.
func (d *Dashboard) Log(level, format string, args ...any) {
	d.LogMessages = append(d.LogMessages, LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	})
	if len(d.LogMessages) > config.MaxLogMessages {
		d.LogMessages = d.LogMessages[len(d.LogMessages)-config.MaxLogMessages:]
	}
}

// LogInfo logs an informational message.
func (d *Dashboard) LogInfo(format string, args ...any) {
	d.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (d *Dashboard) LogWarn(format string, args ...any) {
	d.Log("WARN", format, args...)
}

// LogError logs an error message.
func (d *Dashboard) LogError(format string, args ...any) {
	d.Log("ERROR", format, args...)
}

// ShowNotification displays a temporary notification.
func (d *Dashboard) ShowNotification(message, level string, duration time.Duration) {
	d.Notifications = append(d.Notifications, Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Level:     level,
		StartTime: time.Now(),
		Duration:  duration,
	})
}

// ExpireNotifications drops notifications past their duration.
func (d *Dashboard) ExpireNotifications(now time.Time) {
	kept := d.Notifications[:0]
	for _, n := range d.Notifications {
		if now.Sub(n.StartTime) < n.Duration {
			kept = append(kept, n)
		}
	}
	d.Notifications = kept
}
