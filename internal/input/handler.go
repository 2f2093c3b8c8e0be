// Package input translates bubbletea key and mouse messages into
// dashboard operations: gestures through the interaction session,
// everything else as direct workspace commits.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dodorz/gridboard/internal/app"
)

// HandleInput is the main input coordinator that routes messages to
// the keyboard and mouse handlers.
func HandleInput(msg tea.Msg, d *app.Dashboard) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, d)
	case tea.MouseClickMsg:
		return handleMouseClick(msg, d)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, d)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, d)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, d)
	default:
		return d, nil
	}
}

// handleTextEntry edits a prompt buffer in place. Returns true when the
// key was consumed.
func handleTextEntry(msg tea.KeyPressMsg, buffer *string) bool {
	switch msg.String() {
	case "backspace":
		if len(*buffer) > 0 {
			*buffer = (*buffer)[:len(*buffer)-1]
		}
		return true
	default:
		// Add character to buffer if it's a printable character
		if len(msg.String()) == 1 && msg.String()[0] >= 32 && msg.String()[0] < 127 {
			*buffer += msg.String()
			return true
		}
	}
	return false
}
