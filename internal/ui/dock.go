package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/dodorz/gridboard/internal/card"
	"github.com/dodorz/gridboard/internal/config"
	"github.com/dodorz/gridboard/internal/layout"
	"github.com/dodorz/gridboard/internal/theme"
)

// DockInfo carries everything the status dock shows.
type DockInfo struct {
	ProfileName string
	CompactMode layout.CompactMode
	Hidden      []card.Placement
	CanUndo     bool
	CanRedo     bool
	Locked      bool
	Now         time.Time
}

// RenderDock draws the one-line status dock plus the hidden-card tab
// strip above it when any cards are hidden.
func RenderDock(info DockInfo, width int) string {
	accent := lipgloss.NewStyle().Foreground(theme.DockColor()).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.HiddenTabColor())

	profile := info.ProfileName
	if profile == "" {
		profile = "(no profile)"
	}

	left := accent.Render(" "+profile) +
		dim.Render(fmt.Sprintf("  compact:%s", info.CompactMode))
	if info.Locked {
		left += dim.Render("  locked")
	}

	history := ""
	if info.CanUndo {
		history += "u"
	}
	if info.CanRedo {
		history += "r"
	}
	if history != "" {
		left += dim.Render("  [" + history + "]")
	}

	right := ""
	if !config.HideDock {
		right = accent.Render(info.Now.Format("15:04") + " ")
	}

	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	dock := left + strings.Repeat(" ", pad) + right

	if len(info.Hidden) == 0 {
		return dock
	}
	return renderHiddenTabs(info.Hidden, width) + "\n" + dock
}

// renderHiddenTabs lists hidden cards as numbered tabs so they can be
// restored by index.
func renderHiddenTabs(hidden []card.Placement, width int) string {
	tabStyle := lipgloss.NewStyle().Foreground(theme.HiddenTabColor())
	var b strings.Builder
	for i, c := range hidden {
		tab := fmt.Sprintf(" %d:%s ", i+1, c.DisplayTitle())
		if lipgloss.Width(b.String())+len(tab) > width {
			break
		}
		b.WriteString(tabStyle.Render(tab))
	}
	return b.String()
}
