// Package session implements the drag/resize interaction state machine:
// pointer deltas in, live preview layouts out. A session snapshots the
// committed layout when the gesture starts and every update recomputes
// the candidate rect from that baseline, so redundant or stale pointer
// events can never accumulate drift.
package session

import (
	"math"

	"github.com/dodorz/gridboard/internal/grid"
	"github.com/dodorz/gridboard/internal/layout"
)

// Kind is the gesture being performed.
type Kind int

const (
	// Drag moves the card.
	Drag Kind = iota
	// ResizeWidth adjusts width only.
	ResizeWidth
	// ResizeHeight adjusts height only.
	ResizeHeight
	// ResizeBoth adjusts width and height together.
	ResizeBoth
)

// Metrics converts pixel translations into grid deltas.
type Metrics struct {
	ColWidth  int // pixel width of one column
	RowHeight int // pixel height of one row
	Gap       int // pixel gap between cells
}

// Session is a single in-progress gesture. The zero value is idle.
type Session struct {
	active   bool
	kind     Kind
	cardID   string
	baseline layout.Layout
	preview  layout.Layout
	hasPrev  bool
}

// Active reports whether a gesture is in progress.
func (s *Session) Active() bool { return s.active }

// CardID returns the anchor card of the active session, or "".
func (s *Session) CardID() string {
	if !s.active {
		return ""
	}
	return s.cardID
}

// GestureKind returns the active session's kind. Meaningless when idle.
func (s *Session) GestureKind() Kind { return s.kind }

// Begin starts a gesture on the given card, snapshotting committed as the
// baseline. Re-beginning the same card+kind is a no-op so repeated
// pointer-down events are harmless; a different target implicitly ends
// the prior session, discarding its never-committed preview.
func (s *Session) Begin(kind Kind, cardID string, committed layout.Layout) {
	if s.active && s.kind == kind && s.cardID == cardID {
		return
	}
	s.active = true
	s.kind = kind
	s.cardID = cardID
	s.baseline = committed
	s.hasPrev = false
}

// Update recomputes the candidate rect from the baseline plus the total
// pixel translation since the gesture began, and returns a live preview
// layout (no compaction, so cards don't jump mid-drag). Input for a card
// that doesn't match the active session is ignored and the last preview
// (or the committed layout) is returned unchanged.
func (s *Session) Update(cardID string, dxPx, dyPx int, m Metrics) (layout.Layout, bool) {
	if !s.active || cardID != s.cardID {
		if s.hasPrev {
			return s.preview, false
		}
		return s.baseline, false
	}
	cand, ok := s.candidateRect(dxPx, dyPx, m)
	if !ok {
		return s.baseline, false
	}
	s.preview = layout.Resolve(s.baseline, s.cardID, &cand, false)
	s.hasPrev = true
	return s.preview, true
}

// End finishes the gesture: the candidate rect is recomputed exactly as
// in Update, resolved with compaction, and returned for the caller to
// commit. Stale card IDs are ignored.
func (s *Session) End(cardID string, dxPx, dyPx int, m Metrics) (layout.Layout, bool) {
	if !s.active || cardID != s.cardID {
		return layout.Layout{}, false
	}
	cand, ok := s.candidateRect(dxPx, dyPx, m)
	baseline := s.baseline
	s.clear()
	if !ok {
		return layout.Layout{}, false
	}
	return layout.Resolve(baseline, cardID, &cand, true), true
}

// Cancel discards the preview and clears the session. The caller reverts
// to its committed layout; nothing was ever persisted.
func (s *Session) Cancel() {
	s.clear()
}

func (s *Session) clear() {
	*s = Session{}
}

// candidateRect applies the gesture's grid deltas to the baseline card's
// rect. Locked cards produce no candidate.
func (s *Session) candidateRect(dxPx, dyPx int, m Metrics) (grid.Rect, bool) {
	i := s.baseline.CardByID(s.cardID)
	if i < 0 {
		return grid.Rect{}, false
	}
	c := s.baseline.Cards[i]
	if c.Locked || c.Hidden {
		return grid.Rect{}, false
	}

	dCol := gridDelta(dxPx, m.ColWidth+m.Gap)
	dRow := gridDelta(dyPx, m.RowHeight+m.Gap)

	r := c.Rect
	switch s.kind {
	case Drag:
		r.X += dCol
		r.Y += dRow
	case ResizeWidth:
		r.W += dCol
	case ResizeHeight:
		r.H += dRow
	case ResizeBoth:
		r.W += dCol
		r.H += dRow
	}
	return r, true
}

// gridDelta converts a pixel translation to whole grid cells, rounding
// to the nearest cell boundary.
func gridDelta(px, cell int) int {
	if cell <= 0 {
		return 0
	}
	return int(math.Round(float64(px) / float64(cell)))
}

// GridDeltas exposes the pixel-to-cell conversion for callers that need
// it outside a session (keyboard nudges use whole cells directly).
func GridDeltas(dxPx, dyPx int, m Metrics) (dCol, dRow int) {
	return gridDelta(dxPx, m.ColWidth+m.Gap), gridDelta(dyPx, m.RowHeight+m.Gap)
}
