// Package catalog owns the card catalog: which card kinds exist, their
// default placement on a fresh grid, and display metadata. The layout
// engine stays kind-agnostic; everything kind-specific it needs comes
// through the factory defined here.
package catalog

import (
	"github.com/dodorz/gridboard/internal/card"
	"github.com/dodorz/gridboard/internal/grid"
)

// Entry describes one card kind available for adding to the board.
type Entry struct {
	Kind        card.Kind
	Name        string
	Description string
	DefaultRect grid.Rect
}

// entries is ordered the way the add-card picker lists kinds.
var entries = []Entry{
	{card.KindTimer, "Timer", "Clock and countdown", grid.Rect{X: 0, Y: 0, W: 6, H: 3}},
	{card.KindMedia, "Media", "Now playing", grid.Rect{X: 0, Y: 0, W: 8, H: 5}},
	{card.KindSchedule, "Schedule", "Upcoming events", grid.Rect{X: 0, Y: 0, W: 8, H: 8}},
	{card.KindBattery, "Battery", "Power and system load", grid.Rect{X: 0, Y: 0, W: 5, H: 3}},
	{card.KindShortcuts, "Shortcuts", "Pinned commands", grid.Rect{X: 0, Y: 0, W: 6, H: 6}},
	{card.KindTodos, "Todos", "Task list", grid.Rect{X: 0, Y: 0, W: 7, H: 9}},
}

// Entries returns the catalog in picker order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// EntryFor returns the catalog entry for a kind. Unknown kinds get a
// generic entry so callers never branch on missing metadata.
func EntryFor(kind card.Kind) Entry {
	for _, e := range entries {
		if e.Kind == kind {
			return e
		}
	}
	return Entry{Kind: kind, Name: card.KindName(kind), DefaultRect: grid.Rect{W: 6, H: 4}}
}

// DefaultCard builds a fresh placement for kind at its catalog default
// position, normalized against the given column count. This is the
// factory the layout engine's AddCard takes.
func DefaultCard(kind card.Kind, columns int) card.Placement {
	return card.New(kind, EntryFor(kind).DefaultRect, columns)
}

// DefaultCardAt is DefaultCard with an explicit desired position, used
// when restoring a card to a known spot.
func DefaultCardAt(kind card.Kind, x, y, columns int) card.Placement {
	r := EntryFor(kind).DefaultRect
	r.X, r.Y = x, y
	return card.New(kind, r, columns)
}

// DefaultLayoutCards returns the starter board: one card of each of the
// everyday kinds, positioned left to right. Sanitize resolves any
// overlap for narrow grids.
func DefaultLayoutCards(columns int) []card.Placement {
	kinds := []card.Kind{card.KindTimer, card.KindSchedule, card.KindTodos, card.KindBattery}
	cards := make([]card.Placement, 0, len(kinds))
	x := 0
	for _, k := range kinds {
		r := EntryFor(k).DefaultRect
		r.X = x
		c := card.New(k, r, columns)
		cards = append(cards, c)
		x += c.Rect.W
	}
	return cards
}
