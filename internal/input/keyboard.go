package input

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/dodorz/gridboard/internal/app"
	"github.com/dodorz/gridboard/internal/card"
	"github.com/dodorz/gridboard/internal/catalog"
	"github.com/dodorz/gridboard/internal/config"
	"github.com/dodorz/gridboard/internal/layout"
)

// matches reports whether the pressed key is bound to the action.
func matches(d *app.Dashboard, action string, msg tea.KeyPressMsg) bool {
	return slices.Contains(d.Config.Binding(action), msg.String())
}

// HandleKeyPress routes a key press according to the current mode.
func HandleKeyPress(msg tea.KeyPressMsg, d *app.Dashboard) (tea.Model, tea.Cmd) {
	switch d.Mode {
	case app.RenameMode:
		return handleRenameMode(msg, d)
	case app.ProfileNameMode:
		return handleProfileNameMode(msg, d)
	case app.PickerMode:
		return handlePickerMode(msg, d)
	case app.ProfilePickerMode:
		return handleProfilePickerMode(msg, d)
	case app.HelpMode, app.LogsMode:
		return handleOverlayMode(msg, d)
	}
	return handleBoardMode(msg, d)
}

func handleBoardMode(msg tea.KeyPressMsg, d *app.Dashboard) (tea.Model, tea.Cmd) {
	// Escape aborts an in-flight gesture before anything else.
	if msg.String() == "esc" && d.Session.Active() {
		d.Session.Cancel()
		d.Preview = nil
		return d, nil
	}

	switch {
	case matches(d, "quit", msg):
		return d, tea.Quit

	case matches(d, "focus_next", msg):
		d.CycleFocus(false)
	case matches(d, "focus_prev", msg):
		d.CycleFocus(true)

	case matches(d, "move_up", msg):
		nudgeFocused(d, 0, -1, false)
	case matches(d, "move_down", msg):
		nudgeFocused(d, 0, 1, false)
	case matches(d, "move_left", msg):
		nudgeFocused(d, -1, 0, false)
	case matches(d, "move_right", msg):
		nudgeFocused(d, 1, 0, false)

	case matches(d, "grow_width", msg):
		nudgeFocused(d, 1, 0, true)
	case matches(d, "shrink_width", msg):
		nudgeFocused(d, -1, 0, true)
	case matches(d, "grow_height", msg):
		nudgeFocused(d, 0, 1, true)
	case matches(d, "shrink_height", msg):
		nudgeFocused(d, 0, -1, true)

	case matches(d, "add_card", msg):
		d.Mode = app.PickerMode
		d.PickerIndex = 0

	case matches(d, "remove_card", msg):
		if c := d.FocusedCard(); c != nil {
			d.Commit(layout.RemoveCard(d.Workspace.Committed, c.ID))
			d.ShowNotification("removed "+c.DisplayTitle(), "info", config.NotificationDuration)
		}

	case matches(d, "hide_card", msg):
		if c := d.FocusedCard(); c != nil {
			d.Commit(layout.SetCardHidden(d.Workspace.Committed, c.ID, true))
		}

	case matches(d, "show_hidden", msg):
		restoreHidden(d)

	case matches(d, "reset_card", msg):
		if c := d.FocusedCard(); c != nil {
			d.Commit(layout.ResetCard(d.Workspace.Committed, c.ID, catalog.DefaultCard))
		}

	case matches(d, "rename_card", msg):
		if c := d.FocusedCard(); c != nil {
			d.Mode = app.RenameMode
			d.InputBuffer = c.Title
		}

	case matches(d, "lock_card", msg):
		if c := d.FocusedCard(); c != nil {
			d.Commit(layout.SetCardLocked(d.Workspace.Committed, c.ID, !c.Locked))
		}

	case matches(d, "lock_all", msg):
		toggleLockAll(d)

	case matches(d, "aspect_lock", msg):
		toggleAspectLock(d)

	case matches(d, "undo", msg):
		if !d.Workspace.Undo() {
			d.ShowNotification("nothing to undo", "warning", config.NotificationDuration)
		}

	case matches(d, "redo", msg):
		if !d.Workspace.Redo() {
			d.ShowNotification("nothing to redo", "warning", config.NotificationDuration)
		}

	case matches(d, "save_profile", msg):
		d.Mode = app.ProfileNameMode
		d.InputBuffer = ""

	case matches(d, "next_profile", msg):
		cycleProfile(d)

	case matches(d, "profile_picker", msg):
		d.Mode = app.ProfilePickerMode
		d.ProfileIndex = 0

	case matches(d, "toggle_compact", msg):
		toggleCompact(d)

	case matches(d, "normalize_gaps", msg):
		d.Commit(layout.NormalizeGaps(d.Workspace.Committed))

	case matches(d, "recover", msg):
		if d.Workspace.RecoverLastStable() {
			d.ShowNotification("recovered last stable layout", "success", config.NotificationDuration)
		} else {
			d.ShowNotification("no stable layout recorded", "warning", config.NotificationDuration)
		}

	case matches(d, "toggle_help", msg):
		d.Mode = app.HelpMode

	case matches(d, "show_logs", msg):
		d.Mode = app.LogsMode
	}
	return d, nil
}

// nudgeFocused moves (or resizes, when resize is set) the focused card
// by whole grid cells and commits the resolved result.
func nudgeFocused(d *app.Dashboard, dx, dy int, resize bool) {
	c := d.FocusedCard()
	if c == nil || c.Locked || c.Hidden {
		return
	}
	r := c.Rect
	if resize {
		r.W += dx
		r.H += dy
	} else {
		r.X += dx
		r.Y += dy
	}
	if r == c.Rect {
		return
	}
	if !resize && (r.X < 0 || r.Y < 0 || r.MaxX() > d.Workspace.Committed.Columns) {
		return
	}
	d.Commit(layout.Resolve(d.Workspace.Committed, c.ID, &r, true))
}

// restoreHidden shows every hidden card again, one placement pass each
// so earlier restores become obstacles for later ones.
func restoreHidden(d *app.Dashboard) {
	l := d.Workspace.Committed
	restored := 0
	for _, c := range l.Cards {
		if c.Hidden {
			l = layout.SetCardHidden(l, c.ID, false)
			restored++
		}
	}
	if restored == 0 {
		return
	}
	d.Commit(l)
	d.ShowNotification("restored hidden cards", "info", config.NotificationDuration)
}

func toggleLockAll(d *app.Dashboard) {
	l := d.Workspace.Committed
	if len(l.Cards) == 0 {
		return
	}
	allLocked := true
	for _, c := range l.Cards {
		if !c.Locked {
			allLocked = false
			break
		}
	}
	d.Commit(layout.SetAllLocked(l, !allLocked))
}

// toggleAspectLock locks the focused card to its current shape, or
// releases an existing lock.
func toggleAspectLock(d *app.Dashboard) {
	c := d.FocusedCard()
	if c == nil {
		return
	}
	if c.AspectLock != nil {
		d.Commit(layout.SetAspectLock(d.Workspace.Committed, c.ID, nil))
		return
	}
	if c.Rect.H == 0 {
		return
	}
	ratio := float64(c.Rect.W) / float64(c.Rect.H)
	d.Commit(layout.SetAspectLock(d.Workspace.Committed, c.ID, &ratio))
}

func toggleCompact(d *app.Dashboard) {
	l := d.Workspace.Committed
	mode := layout.CompactVertical
	if l.Compact == layout.CompactVertical {
		mode = layout.CompactNone
	}
	d.Commit(layout.SetCompactMode(l, mode))
	d.ShowNotification("compaction: "+string(mode), "info", config.NotificationDuration)
}

func cycleProfile(d *app.Dashboard) {
	profiles := d.Workspace.Profiles
	if len(profiles) == 0 {
		return
	}
	next := 0
	for i, p := range profiles {
		if p.ID == d.Workspace.CurrentProfileID {
			next = (i + 1) % len(profiles)
			break
		}
	}
	if d.Workspace.ApplyProfile(profiles[next].ID) {
		d.ShowNotification("profile: "+profiles[next].Name, "info", config.NotificationDuration)
	}
}

func handleRenameMode(msg tea.KeyPressMsg, d *app.Dashboard) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if c := d.FocusedCard(); c != nil {
			d.Commit(layout.RenameCard(d.Workspace.Committed, c.ID, d.InputBuffer))
		}
		d.Mode = app.BoardMode
		d.InputBuffer = ""
	case "esc":
		d.Mode = app.BoardMode
		d.InputBuffer = ""
	default:
		handleTextEntry(msg, &d.InputBuffer)
	}
	return d, nil
}

func handleProfileNameMode(msg tea.KeyPressMsg, d *app.Dashboard) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		id := d.Workspace.SaveProfile(d.InputBuffer)
		if p := d.Workspace.ProfileByID(id); p != nil {
			d.ShowNotification("saved profile "+p.Name, "success", config.NotificationDuration)
		}
		d.Mode = app.BoardMode
		d.InputBuffer = ""
	case "esc":
		d.Mode = app.BoardMode
		d.InputBuffer = ""
	default:
		handleTextEntry(msg, &d.InputBuffer)
	}
	return d, nil
}

func handlePickerMode(msg tea.KeyPressMsg, d *app.Dashboard) (tea.Model, tea.Cmd) {
	entries := catalog.Entries()
	switch msg.String() {
	case "up", "k":
		d.PickerIndex = (d.PickerIndex - 1 + len(entries)) % len(entries)
	case "down", "j", "tab":
		d.PickerIndex = (d.PickerIndex + 1) % len(entries)
	case "enter":
		kind := entries[d.PickerIndex].Kind
		next := layout.AddCard(d.Workspace.Committed, catalog.DefaultCard, kind)
		d.Commit(next)
		focusNewest(d, kind)
		d.Mode = app.BoardMode
	case "esc":
		d.Mode = app.BoardMode
	}
	return d, nil
}

// focusNewest focuses the most recently appended card of the kind.
func focusNewest(d *app.Dashboard, kind card.Kind) {
	cards := d.Workspace.Committed.Cards
	for i := len(cards) - 1; i >= 0; i-- {
		if cards[i].Kind == kind {
			d.FocusedID = cards[i].ID
			return
		}
	}
}

func handleProfilePickerMode(msg tea.KeyPressMsg, d *app.Dashboard) (tea.Model, tea.Cmd) {
	profiles := d.Workspace.Profiles
	switch msg.String() {
	case "up", "k":
		if len(profiles) > 0 {
			d.ProfileIndex = (d.ProfileIndex - 1 + len(profiles)) % len(profiles)
		}
	case "down", "j", "tab":
		if len(profiles) > 0 {
			d.ProfileIndex = (d.ProfileIndex + 1) % len(profiles)
		}
	case "enter":
		if d.ProfileIndex < len(profiles) {
			d.Workspace.ApplyProfile(profiles[d.ProfileIndex].ID)
		}
		d.Mode = app.BoardMode
	case "d":
		if d.ProfileIndex < len(profiles) {
			d.Workspace.DeleteProfile(profiles[d.ProfileIndex].ID)
			if d.ProfileIndex >= len(d.Workspace.Profiles) && d.ProfileIndex > 0 {
				d.ProfileIndex--
			}
		}
	case "esc":
		d.Mode = app.BoardMode
	}
	return d, nil
}

func handleOverlayMode(msg tea.KeyPressMsg, d *app.Dashboard) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?", "D", "enter":
		d.Mode = app.BoardMode
	}
	return d, nil
}
