package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/dodorz/gridboard/internal/card"
	"github.com/dodorz/gridboard/internal/config"
	"github.com/dodorz/gridboard/internal/theme"
)

// Telemetry is the system data the battery card displays. The app
// collects it on ticks; rendering never blocks on collection.
type Telemetry struct {
	CPUPercent float64
	RAMPercent float64
	Uptime     time.Duration
}

// CardState describes how a card should be drawn this frame.
type CardState struct {
	Focused  bool
	Dragging bool
}

// RenderCard draws one card at the given terminal-cell size, border
// included. Content is clipped to fit.
func RenderCard(c card.Placement, st CardState, w, h int, now time.Time, tel Telemetry) string {
	if w < 4 || h < 3 {
		// Too small for a border plus content: render a filler block so
		// the card still occupies its cells.
		line := strings.Repeat("·", max(w, 1))
		return strings.TrimRight(strings.Repeat(line+"\n", max(h, 1)), "\n")
	}

	borderColor := theme.CardBorder()
	switch {
	case st.Dragging:
		borderColor = theme.CardBorderDragging()
	case c.Locked:
		borderColor = theme.CardBorderLocked()
	case st.Focused:
		borderColor = theme.CardBorderFocused()
	}

	innerW, innerH := w-2, h-2
	body := cardContent(c, innerW, innerH, now, tel)

	title := c.DisplayTitle()
	if c.Locked {
		title += lockGlyph()
	}
	if len(title) > innerW {
		title = title[:innerW]
	}
	titleStyle := lipgloss.NewStyle().Foreground(theme.AccentFor(c.Kind)).Bold(true)

	box := lipgloss.NewStyle().
		Border(config.GetBorderForStyle()).
		BorderForeground(borderColor).
		Width(innerW).
		Height(innerH)

	content := titleStyle.Render(title)
	if innerH > 1 {
		content += "\n" + body
	}
	return box.Render(content)
}

func lockGlyph() string {
	if config.AsciiOnly {
		return " [L]"
	}
	return " ⊙"
}

// cardContent renders the kind-specific interior, innerH lines or
// fewer, each at most innerW cells.
func cardContent(c card.Placement, innerW, innerH int, now time.Time, tel Telemetry) string {
	var lines []string
	switch c.Kind {
	case card.KindTimer:
		lines = []string{
			now.Format("15:04:05"),
			now.Format("Mon Jan 2"),
		}
	case card.KindBattery:
		lines = []string{
			fmt.Sprintf("CPU %5.1f%%", tel.CPUPercent),
			fmt.Sprintf("RAM %5.1f%%", tel.RAMPercent),
			fmt.Sprintf("Up  %s", formatUptime(tel.Uptime)),
		}
	case card.KindMedia:
		lines = []string{"Nothing playing"}
	case card.KindSchedule:
		lines = []string{
			now.Format("January 2006"),
			"No upcoming events",
		}
	case card.KindShortcuts:
		lines = []string{
			"n  add card",
			"u  undo",
			"?  help",
		}
	case card.KindTodos:
		lines = []string{"No open tasks"}
	default:
		lines = []string{string(c.Kind)}
	}

	dim := lipgloss.NewStyle().Foreground(theme.Foreground())
	out := make([]string, 0, innerH-1)
	for i, line := range lines {
		if i >= innerH-1 {
			break
		}
		if len(line) > innerW {
			line = line[:innerW]
		}
		out = append(out, dim.Render(line))
	}
	return strings.Join(out, "\n")
}

func formatUptime(d time.Duration) string {
	if d <= 0 {
		return "--"
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h >= 24 {
		return fmt.Sprintf("%dd %dh", h/24, h%24)
	}
	return fmt.Sprintf("%dh %02dm", h, m)
}
