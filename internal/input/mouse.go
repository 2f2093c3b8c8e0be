package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/dodorz/gridboard/internal/app"
	"github.com/dodorz/gridboard/internal/session"
	"github.com/dodorz/gridboard/internal/ui"
)

// gestureFor maps a hit region to the session gesture it starts.
func gestureFor(region ui.HitRegion) (session.Kind, bool) {
	switch region {
	case ui.HitBody:
		return session.Drag, true
	case ui.HitRightEdge:
		return session.ResizeWidth, true
	case ui.HitBottomEdge:
		return session.ResizeHeight, true
	case ui.HitCorner:
		return session.ResizeBoth, true
	}
	return 0, false
}

func handleMouseClick(msg tea.MouseClickMsg, d *app.Dashboard) (tea.Model, tea.Cmd) {
	m := msg.Mouse()
	if m.Button != tea.MouseLeft {
		return d, nil
	}
	if d.Mode != app.BoardMode {
		d.Mode = app.BoardMode
		return d, nil
	}

	id, region := ui.HitTest(d.Workspace.Committed, d.Metrics(), m.X, m.Y)
	if region == ui.HitNone {
		return d, nil
	}
	d.FocusedID = id

	if kind, ok := gestureFor(region); ok {
		d.DragOriginX = m.X
		d.DragOriginY = m.Y
		d.Session.Begin(kind, id, d.Workspace.Committed)
	}
	return d, nil
}

func handleMouseMotion(msg tea.MouseMotionMsg, d *app.Dashboard) (tea.Model, tea.Cmd) {
	if !d.Session.Active() {
		return d, nil
	}
	m := msg.Mouse()
	dx := m.X - d.DragOriginX
	dy := m.Y - d.DragOriginY
	if preview, ok := d.Session.Update(d.Session.CardID(), dx, dy, d.Metrics()); ok {
		d.Preview = &preview
	}
	return d, nil
}

func handleMouseRelease(msg tea.MouseReleaseMsg, d *app.Dashboard) (tea.Model, tea.Cmd) {
	if !d.Session.Active() {
		return d, nil
	}
	m := msg.Mouse()
	dx := m.X - d.DragOriginX
	dy := m.Y - d.DragOriginY
	if final, ok := d.Session.End(d.Session.CardID(), dx, dy, d.Metrics()); ok {
		d.Commit(final)
	}
	d.Preview = nil
	return d, nil
}

// handleMouseWheel cycles focus across visible cards.
func handleMouseWheel(msg tea.MouseWheelMsg, d *app.Dashboard) (tea.Model, tea.Cmd) {
	if d.Mode != app.BoardMode {
		return d, nil
	}
	m := msg.Mouse()
	switch m.Button {
	case tea.MouseWheelUp:
		d.CycleFocus(true)
	case tea.MouseWheelDown:
		d.CycleFocus(false)
	}
	return d, nil
}
