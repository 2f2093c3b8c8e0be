// Package config provides configuration constants, user settings, and
// keybinding defaults for GRIDBOARD.
package config

import "time"

// =============================================================================
// Grid Defaults
// =============================================================================

const (
	// DefaultColumns is the default number of grid columns.
	DefaultColumns = 24

	// MinColumns and MaxColumns bound the configurable column count.
	MinColumns = 4
	MaxColumns = 48

	// DefaultRowHeight is the default pixel height of one grid row.
	DefaultRowHeight = 40

	// MinRowHeight is the smallest row unit height a layout may carry.
	MinRowHeight = 24

	// DefaultGap is the default pixel gap between cards.
	DefaultGap = 8

	// MinGap is the smallest gap a layout may carry.
	MinGap = 4

	// LayoutSchemaVersion is the current serialized layout schema version.
	LayoutSchemaVersion = 2
)

// =============================================================================
// Workspace
// =============================================================================

const (
	// HistoryLimit bounds the undo stack; the oldest entry is evicted first.
	HistoryLimit = 60

	// DefaultProfileName is the name given to the initial profile.
	DefaultProfileName = "Default"
)

// =============================================================================
// Placement Search
// =============================================================================

const (
	// SearchMarginRows is the minimum number of extra rows scanned below
	// the current content before the placement search falls back to an
	// unbounded downward scan.
	SearchMarginRows = 8
)

// =============================================================================
// UI Timing
// =============================================================================

const (
	// NotificationDuration is how long notifications remain visible.
	NotificationDuration = 1500 * time.Millisecond

	// MaxLogMessages bounds the in-app log ring buffer.
	MaxLogMessages = 500

	// TickInterval drives clock cards and notification expiry.
	TickInterval = time.Second

	// NormalFPS is the render loop refresh rate.
	NormalFPS = 60
)

// =============================================================================
// UI Layout Dimensions
// =============================================================================

const (
	// DockHeight is the height of the status dock at the bottom.
	DockHeight = 2

	// MaxNotificationWidth is the maximum width of notification messages.
	MaxNotificationWidth = 60

	// HelpOverlayWidth is the width of the help overlay.
	HelpOverlayWidth = 64
)

// Runtime-configurable globals, set once from flags/config at startup.
var (
	// HideDock hides the bottom status dock.
	HideDock = false

	// AsciiOnly disables non-ASCII glyphs in card chrome.
	AsciiOnly = false
)
