package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/dodorz/gridboard/internal/catalog"
	"github.com/dodorz/gridboard/internal/config"
	"github.com/dodorz/gridboard/internal/theme"
	"github.com/dodorz/gridboard/internal/workspace"
)

func overlayBox(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(theme.DockColor()).
		Padding(0, 1).
		Width(width)
}

// RenderNotification draws a single toast message.
func RenderNotification(message, level string) string {
	bg, fg := theme.NotificationColors()
	if level == "error" {
		bg = theme.ErrorColor()
	}
	if level == "warning" {
		bg = theme.WarningColor()
	}
	if lipgloss.Width(message) > config.MaxNotificationWidth {
		message = ansi.Truncate(message, config.MaxNotificationWidth, "…")
	}
	return lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Render(message)
}

// HelpEntry is one line of the help overlay.
type HelpEntry struct {
	Keys   string
	Action string
}

// RenderHelp draws the keybinding reference overlay.
func RenderHelp(entries []HelpEntry) string {
	title := lipgloss.NewStyle().Foreground(theme.DockColor()).Bold(true).Render("Keybindings")
	var b strings.Builder
	b.WriteString(title + "\n\n")
	keyStyle := lipgloss.NewStyle().Foreground(theme.CardBorderFocused())
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(fmt.Sprintf("%-14s", e.Keys)), e.Action))
	}
	b.WriteString("\n  press ? or esc to close")
	return overlayBox(config.HelpOverlayWidth).Render(b.String())
}

// RenderLogs draws the most recent log messages, newest last.
func RenderLogs(lines []string, height int) string {
	if len(lines) == 0 {
		lines = []string{"(no log messages)"}
	}
	if height < 4 {
		height = 4
	}
	visible := height - 4
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	title := lipgloss.NewStyle().Foreground(theme.DockColor()).Bold(true).Render("Logs")
	body := title + "\n\n" + strings.Join(lines, "\n") + "\n\n  press D or esc to close"
	return overlayBox(config.HelpOverlayWidth).Render(body)
}

// RenderPicker draws the add-card kind picker with the selection marked.
func RenderPicker(selected int) string {
	title := lipgloss.NewStyle().Foreground(theme.DockColor()).Bold(true).Render("Add card")
	var b strings.Builder
	b.WriteString(title + "\n\n")
	for i, e := range catalog.Entries() {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(theme.Foreground())
		if i == selected {
			marker = "> "
			style = lipgloss.NewStyle().Foreground(theme.AccentFor(e.Kind)).Bold(true)
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-10s %s", marker, e.Name, e.Description)) + "\n")
	}
	b.WriteString("\n  enter to add, esc to cancel")
	return overlayBox(44).Render(b.String())
}

// RenderProfilePicker draws the profile list with the selection marked.
func RenderProfilePicker(profiles []workspace.Profile, currentID string, selected int) string {
	title := lipgloss.NewStyle().Foreground(theme.DockColor()).Bold(true).Render("Profiles")
	var b strings.Builder
	b.WriteString(title + "\n\n")
	if len(profiles) == 0 {
		b.WriteString("  (no saved profiles)\n")
	}
	for i, p := range profiles {
		marker := "  "
		if i == selected {
			marker = "> "
		}
		name := p.Name
		if p.ID == currentID {
			name += " *"
		}
		if p.Pinned {
			name += " (pinned)"
		}
		if p.RatioRange != nil {
			name += fmt.Sprintf("  %.2f-%.2f", p.RatioRange.Min, p.RatioRange.Max)
		}
		b.WriteString(marker + name + "\n")
	}
	b.WriteString("\n  enter apply · d delete · esc close")
	return overlayBox(44).Render(b.String())
}

// RenderPrompt draws a one-line text input overlay, for renames and
// profile names.
func RenderPrompt(label, buffer string) string {
	cursor := lipgloss.NewStyle().Foreground(theme.CardBorderFocused()).Render("_")
	return overlayBox(44).Render(label + "\n\n  " + buffer + cursor)
}
