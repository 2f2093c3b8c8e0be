package app

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dodorz/gridboard/internal/card"
	"github.com/dodorz/gridboard/internal/config"
	"github.com/dodorz/gridboard/internal/ui"
)

// View renders the board as a layered canvas: cards bottom, dock above,
// overlays and notifications on top.
func (d *Dashboard) View() tea.View {
	var view tea.View

	width, height := d.boardWidth(), d.Height
	if height < 1 {
		height = 24
	}

	l := d.CurrentLayout()
	m := d.Metrics()
	now := time.Now()

	boardHeight := height
	if !config.HideDock {
		boardHeight -= config.DockHeight
	}

	var layers []*lipgloss.Layer
	for i, c := range l.Cards {
		if c.Hidden {
			continue
		}
		x, y, w, h := ui.CellRect(c.Rect, m)
		if y >= boardHeight || x >= width {
			continue
		}
		st := ui.CardState{
			Focused:  c.ID == d.FocusedID,
			Dragging: d.Session.Active() && c.ID == d.Session.CardID(),
		}
		z := i
		if st.Dragging {
			z = len(l.Cards) + 1
		}
		content := ui.RenderCard(c, st, w, h, now, d.Telemetry)
		layers = append(layers, lipgloss.NewLayer(content).X(x).Y(y).Z(z).ID(c.ID))
	}

	if !config.HideDock {
		dock := ui.RenderDock(d.dockInfo(now), width)
		layers = append(layers, lipgloss.NewLayer(dock).
			X(0).Y(height-lipgloss.Height(dock)).Z(1000).ID("dock"))
	}

	layers = append(layers, d.overlayLayers(width, height)...)

	for i, n := range d.Notifications {
		toast := ui.RenderNotification(n.Message, n.Level)
		x := width - lipgloss.Width(toast) - 1
		if x < 0 {
			x = 0
		}
		layers = append(layers, lipgloss.NewLayer(toast).
			X(x).Y(1 + i*2).Z(2000 + i).ID(n.ID))
	}

	canvas := lipgloss.NewCanvas(layers...)
	view.SetContent(lipgloss.Sprint(canvas.Render()))
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	return view
}

// overlayLayers renders the active modal overlay, if any, centered.
func (d *Dashboard) overlayLayers(width, height int) []*lipgloss.Layer {
	var content string
	switch d.Mode {
	case HelpMode:
		content = ui.RenderHelp(d.helpEntries())
	case LogsMode:
		content = ui.RenderLogs(d.formatLogs(), height)
	case PickerMode:
		content = ui.RenderPicker(d.PickerIndex)
	case ProfilePickerMode:
		content = ui.RenderProfilePicker(d.Workspace.Profiles, d.Workspace.CurrentProfileID, d.ProfileIndex)
	case RenameMode:
		content = ui.RenderPrompt("Rename card", d.InputBuffer)
	case ProfileNameMode:
		content = ui.RenderPrompt("Save profile as", d.InputBuffer)
	default:
		return nil
	}

	x := (width - lipgloss.Width(content)) / 2
	y := (height - lipgloss.Height(content)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return []*lipgloss.Layer{lipgloss.NewLayer(content).X(x).Y(y).Z(1500).ID("overlay")}
}

func (d *Dashboard) dockInfo(now time.Time) ui.DockInfo {
	var hidden []card.Placement
	allLocked := len(d.Workspace.Committed.Cards) > 0
	for _, c := range d.Workspace.Committed.Cards {
		if c.Hidden {
			hidden = append(hidden, c)
		}
		if !c.Locked {
			allLocked = false
		}
	}
	profileName := ""
	if p := d.Workspace.ProfileByID(d.Workspace.CurrentProfileID); p != nil {
		profileName = p.Name
	}
	return ui.DockInfo{
		ProfileName: profileName,
		CompactMode: d.Workspace.Committed.Compact,
		Hidden:      hidden,
		CanUndo:     d.Workspace.CanUndo(),
		CanRedo:     d.Workspace.CanRedo(),
		Locked:      allLocked,
		Now:         now,
	}
}

func (d *Dashboard) helpEntries() []ui.HelpEntry {
	actions := []struct {
		action string
		label  string
	}{
		{"focus_next", "focus next card"},
		{"move_up", "move card up"},
		{"move_down", "move card down"},
		{"move_left", "move card left"},
		{"move_right", "move card right"},
		{"grow_width", "grow width"},
		{"shrink_width", "shrink width"},
		{"grow_height", "grow height"},
		{"shrink_height", "shrink height"},
		{"add_card", "add card"},
		{"remove_card", "remove card"},
		{"hide_card", "hide card"},
		{"show_hidden", "restore hidden cards"},
		{"reset_card", "reset card to defaults"},
		{"rename_card", "rename card"},
		{"lock_card", "toggle card lock"},
		{"aspect_lock", "toggle aspect lock"},
		{"undo", "undo"},
		{"redo", "redo"},
		{"save_profile", "save profile"},
		{"profile_picker", "profiles"},
		{"toggle_compact", "toggle compaction"},
		{"recover", "recover last stable layout"},
		{"quit", "quit"},
	}
	entries := make([]ui.HelpEntry, 0, len(actions))
	for _, a := range actions {
		keys := d.Config.Binding(a.action)
		if len(keys) == 0 {
			continue
		}
		entries = append(entries, ui.HelpEntry{Keys: keys[0], Action: a.label})
	}
	return entries
}

func (d *Dashboard) formatLogs() []string {
	lines := make([]string, 0, len(d.LogMessages))
	for _, lm := range d.LogMessages {
		lines = append(lines, fmt.Sprintf("%s %-5s %s", lm.Time.Format("15:04:05"), lm.Level, lm.Message))
	}
	return lines
}
