// Package theme provides color themes and styling for the GRIDBOARD UI.
package theme

import (
	"image/color"
	"log"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"

	"github.com/dodorz/gridboard/internal/card"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and standard terminal colors will be used.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	// Load custom themes from user's themes directory
	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			log.Printf("Warning: error loading custom themes: %v", err)
		}
	}

	if ok := tint.SetTintID(themeName); !ok {
		// Theme not found, set to default
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Background returns the board background color.
func Background() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Bg
}

// Foreground returns the default text color.
func Foreground() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// CardBorder returns the border color for unfocused cards.
func CardBorder() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#7f7f7f")
	}
	return t.BrightBlack
}

// CardBorderFocused returns the border color for the focused card.
func CardBorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	return t.BrightCyan
}

// CardBorderDragging returns the border color for a card mid-gesture.
func CardBorderDragging() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ffff00")
	}
	return t.BrightYellow
}

// CardBorderLocked returns the border color for locked cards.
func CardBorderLocked() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#FAAAAA")
	}
	return t.Red
}

// DockColor returns the status dock accent color.
func DockColor() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5c5cff")
	}
	return t.BrightBlue
}

// NotificationColors returns background and foreground for notification toasts.
func NotificationColors() (bg color.Color, fg color.Color) {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd00cd"), lipgloss.Color("#ffffff")
	}
	return t.Purple, t.BrightWhite
}

// ErrorColor returns the color for error text.
func ErrorColor() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ff0000")
	}
	return t.BrightRed
}

// WarningColor returns the color for warning text.
func WarningColor() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cdcd00")
	}
	return t.Yellow
}

// HiddenTabColor returns the color for hidden-card tabs on the dock.
func HiddenTabColor() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#7f7f7f")
	}
	return t.BrightBlack
}

// AccentFor returns the title accent color for a card kind, so every
// kind is recognizable at a glance regardless of position.
func AccentFor(kind card.Kind) color.Color {
	t := Current()
	if t == nil {
		switch kind {
		case card.KindTimer:
			return lipgloss.Color("#00ffff")
		case card.KindMedia:
			return lipgloss.Color("#ff00ff")
		case card.KindSchedule:
			return lipgloss.Color("#00ff00")
		case card.KindBattery:
			return lipgloss.Color("#ffff00")
		case card.KindShortcuts:
			return lipgloss.Color("#5c5cff")
		case card.KindTodos:
			return lipgloss.Color("#ff0000")
		}
		return lipgloss.Color("#e5e5e5")
	}
	switch kind {
	case card.KindTimer:
		return t.BrightCyan
	case card.KindMedia:
		return t.BrightPurple
	case card.KindSchedule:
		return t.BrightGreen
	case card.KindBattery:
		return t.BrightYellow
	case card.KindShortcuts:
		return t.BrightBlue
	case card.KindTodos:
		return t.BrightRed
	}
	return t.Fg
}
