// Package ui renders the dashboard: cards, the status dock, and the
// overlay surfaces. Rendering is pure string/layer production; all
// state lives in the app model.
package ui

import (
	"github.com/dodorz/gridboard/internal/grid"
	"github.com/dodorz/gridboard/internal/layout"
	"github.com/dodorz/gridboard/internal/session"
)

// BoardMetrics maps grid units to terminal cells for the given board
// width. One grid row is one terminal row; columns divide the width
// evenly with a one-cell gutter, dropping the gutter on very narrow
// terminals so a full-width card never overflows.
func BoardMetrics(l layout.Layout, width int) session.Metrics {
	if l.Columns < 1 || width < 1 {
		return session.Metrics{ColWidth: 1, RowHeight: 1}
	}
	gap := 1
	colw := (width - (l.Columns-1)*gap) / l.Columns
	if colw < 1 {
		gap = 0
		colw = width / l.Columns
		if colw < 1 {
			colw = 1
		}
	}
	return session.Metrics{ColWidth: colw, RowHeight: 1, Gap: gap}
}

// CellRect converts a grid rect to terminal-cell geometry. Interior
// gutters belong to the card, so adjacent cards stay visually separated
// by exactly one gutter.
func CellRect(r grid.Rect, m session.Metrics) (x, y, w, h int) {
	x = r.X * (m.ColWidth + m.Gap)
	y = r.Y * (m.RowHeight + m.Gap)
	w = r.W*m.ColWidth + (r.W-1)*m.Gap
	h = r.H*m.RowHeight + (r.H-1)*m.Gap
	return x, y, w, h
}

// HitRegion identifies what part of a card a terminal coordinate falls on.
type HitRegion int

const (
	// HitNone means the point is outside the card.
	HitNone HitRegion = iota
	// HitBody is the card interior, used for dragging.
	HitBody
	// HitRightEdge is the right border, used for width resizing.
	HitRightEdge
	// HitBottomEdge is the bottom border, used for height resizing.
	HitBottomEdge
	// HitCorner is the bottom-right corner, used for free resizing.
	HitCorner
)

// HitTest finds the topmost visible card under the terminal coordinate
// (x, y) and which region of it was hit. Later cards in the array are
// treated as on top, matching render order.
func HitTest(l layout.Layout, m session.Metrics, x, y int) (string, HitRegion) {
	for i := len(l.Cards) - 1; i >= 0; i-- {
		c := l.Cards[i]
		if c.Hidden {
			continue
		}
		cx, cy, cw, ch := CellRect(c.Rect, m)
		if x < cx || x >= cx+cw || y < cy || y >= cy+ch {
			continue
		}
		onRight := x == cx+cw-1
		onBottom := y == cy+ch-1
		switch {
		case onRight && onBottom:
			return c.ID, HitCorner
		case onRight:
			return c.ID, HitRightEdge
		case onBottom:
			return c.ID, HitBottomEdge
		default:
			return c.ID, HitBody
		}
	}
	return "", HitNone
}
