package ui

import (
	"testing"

	"github.com/dodorz/gridboard/internal/card"
	"github.com/dodorz/gridboard/internal/grid"
	"github.com/dodorz/gridboard/internal/layout"
)

func board(t *testing.T) layout.Layout {
	t.Helper()
	l := layout.New(24)
	l.Compact = layout.CompactNone
	a := card.Placement{ID: "a", Kind: card.KindTimer, Rect: grid.Rect{X: 0, Y: 0, W: 6, H: 3}}
	b := card.Placement{ID: "b", Kind: card.KindMedia, Rect: grid.Rect{X: 8, Y: 0, W: 8, H: 5}}
	l.Cards = []card.Placement{a.Normalize(24), b.Normalize(24)}
	return layout.Sanitize(l)
}

func TestBoardMetricsFillsWidth(t *testing.T) {
	l := board(t)
	m := BoardMetrics(l, 120)
	// A full-width card must fit inside the terminal.
	_, _, w, _ := CellRect(grid.Rect{X: 0, Y: 0, W: 24, H: 1}, m)
	if w > 120 {
		t.Errorf("full-width card spans %d cells on a 120-cell terminal", w)
	}
	if m.ColWidth < 1 {
		t.Errorf("column width = %d", m.ColWidth)
	}
}

func TestBoardMetricsNarrowTerminal(t *testing.T) {
	l := board(t)
	m := BoardMetrics(l, 20)
	if m.ColWidth < 1 {
		t.Fatalf("column width must stay positive, got %d", m.ColWidth)
	}
	_, _, w, _ := CellRect(grid.Rect{X: 0, Y: 0, W: 24, H: 1}, m)
	if w > 24 {
		t.Errorf("full-width card spans %d cells on a 20-cell terminal", w)
	}
}

func TestCellRectAdjacencyKeepsGutter(t *testing.T) {
	l := board(t)
	m := BoardMetrics(l, 120)
	ax, _, aw, _ := CellRect(grid.Rect{X: 0, Y: 0, W: 6, H: 3}, m)
	bx, _, _, _ := CellRect(grid.Rect{X: 6, Y: 0, W: 6, H: 3}, m)
	if bx-(ax+aw) != m.Gap {
		t.Errorf("gutter between adjacent cards = %d, want %d", bx-(ax+aw), m.Gap)
	}
}

func TestHitTestRegions(t *testing.T) {
	l := board(t)
	m := BoardMetrics(l, 120)
	cx, cy, cw, ch := CellRect(l.Cards[0].Rect, m)

	tests := []struct {
		name   string
		x, y   int
		wantID string
		want   HitRegion
	}{
		{"body", cx + 1, cy + 1, "a", HitBody},
		{"right edge", cx + cw - 1, cy + 1, "a", HitRightEdge},
		{"bottom edge", cx + 1, cy + ch - 1, "a", HitBottomEdge},
		{"corner", cx + cw - 1, cy + ch - 1, "a", HitCorner},
		{"gutter miss", cx + cw, cy, "", HitNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, region := HitTest(l, m, tt.x, tt.y)
			if id != tt.wantID || region != tt.want {
				t.Errorf("HitTest(%d,%d) = (%q,%v), want (%q,%v)", tt.x, tt.y, id, region, tt.wantID, tt.want)
			}
		})
	}
}

func TestHitTestSkipsHiddenCards(t *testing.T) {
	l := board(t)
	l = layout.SetCardHidden(l, "a", true)
	m := BoardMetrics(l, 120)
	if id, _ := HitTest(l, m, 1, 1); id == "a" {
		t.Error("hidden cards must not be hit")
	}
}
