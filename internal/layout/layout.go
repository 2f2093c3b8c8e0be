// Package layout implements the dashboard layout engine: sanitation,
// collision-free placement search, optional vertical compaction, and the
// card add/remove/hide/reset operations.
//
// Every operation is value-in/value-out: callers get a new Layout and the
// input is never mutated. Malformed input is repaired, not rejected; the
// Validate diagnostic in validate.go is the only mechanism that surfaces
// problems.
package layout

import (
	"slices"

	"github.com/dodorz/gridboard/internal/card"
	"github.com/dodorz/gridboard/internal/config"
	"github.com/dodorz/gridboard/internal/grid"
)

// CompactMode selects the post-placement compaction pass.
type CompactMode string

const (
	// CompactNone leaves cards where the placement search put them.
	CompactNone CompactMode = "none"
	// CompactVertical pulls cards upward row by row after placement.
	CompactVertical CompactMode = "vertical"
)

// Layout is a full dashboard layout: the card list plus grid metrics.
type Layout struct {
	Cards     []card.Placement `json:"cards"`
	Columns   int              `json:"columns"`
	RowHeight int              `json:"row_height"`
	Gap       int              `json:"gap"`
	Compact   CompactMode      `json:"compact"`
	Version   int              `json:"version"`
}

// Factory builds a default placement for a kind. The card catalog owns
// default rects; the engine stays kind-agnostic.
type Factory func(kind card.Kind, columns int) card.Placement

// New returns an empty layout with engine defaults.
func New(columns int) Layout {
	if columns < 1 {
		columns = config.DefaultColumns
	}
	return Layout{
		Columns:   columns,
		RowHeight: config.DefaultRowHeight,
		Gap:       config.DefaultGap,
		Compact:   CompactVertical,
		Version:   config.LayoutSchemaVersion,
	}
}

// clone deep-copies the layout's card slice so callers can treat layouts
// as immutable values.
func (l Layout) clone() Layout {
	l.Cards = slices.Clone(l.Cards)
	return l
}

// CardByID returns the index of the card with the given ID, or -1.
func (l Layout) CardByID(id string) int {
	return slices.IndexFunc(l.Cards, func(c card.Placement) bool { return c.ID == id })
}

// VisibleCards returns the indices of non-hidden cards in array order.
func (l Layout) VisibleCards() []int {
	var out []int
	for i, c := range l.Cards {
		if !c.Hidden {
			out = append(out, i)
		}
	}
	return out
}

// VisiblePlacements returns copies of the non-hidden cards in array order.
func (l Layout) VisiblePlacements() []card.Placement {
	var out []card.Placement
	for _, c := range l.Cards {
		if !c.Hidden {
			out = append(out, c)
		}
	}
	return out
}

// MaxBottom returns the exclusive bottom row of the visible content.
func (l Layout) MaxBottom() int {
	bottom := 0
	for _, c := range l.Cards {
		if !c.Hidden {
			bottom = max(bottom, c.Rect.MaxY())
		}
	}
	return bottom
}

// Sanitize repairs a layout after any external mutation: clamps grid
// metrics, re-keys duplicate card IDs (first occurrence wins), normalizes
// every card against its kind's policy, then re-runs placement so no two
// visible cards overlap.
func Sanitize(l Layout) Layout {
	l = l.clone()

	if l.Columns < 1 {
		l.Columns = config.DefaultColumns
	}
	if l.RowHeight < config.MinRowHeight {
		l.RowHeight = config.DefaultRowHeight
	}
	if l.Gap < config.MinGap {
		l.Gap = config.DefaultGap
	}
	if l.Compact != CompactVertical {
		l.Compact = CompactNone
	}
	if l.Version == 0 {
		l.Version = config.LayoutSchemaVersion
	}

	seen := make(map[string]bool, len(l.Cards))
	for i, c := range l.Cards {
		if c.ID == "" || seen[c.ID] {
			c.ID = card.NewID()
		}
		seen[c.ID] = true
		l.Cards[i] = c.Normalize(l.Columns)
	}

	return Resolve(l, "", nil, l.Compact == CompactVertical)
}

// Resolve runs the placement algorithm. When activeID names a visible
// card and proposed is non-nil, the proposed rect (clamped to the card's
// bounds) becomes that card's desired position and the card is placed
// first, so it wins every collision; all other visible cards follow in
// array order and are pushed to their first available rect. Hidden cards
// keep their last known rect.
func Resolve(l Layout, activeID string, proposed *grid.Rect, compactAfter bool) Layout {
	l = l.clone()

	visible := l.VisibleCards()
	for _, i := range visible {
		l.Cards[i] = l.Cards[i].Normalize(l.Columns)
	}

	activeIdx := -1
	if activeID != "" {
		for _, i := range visible {
			if l.Cards[i].ID == activeID {
				activeIdx = i
				break
			}
		}
	}
	if activeIdx >= 0 && proposed != nil {
		l.Cards[activeIdx] = l.Cards[activeIdx].WithRect(*proposed, l.Columns)
	}

	// Placement order doubles as collision priority: earlier cards are
	// placed first and later cards must route around them.
	order := make([]int, 0, len(visible))
	if activeIdx >= 0 {
		order = append(order, activeIdx)
	}
	for _, i := range visible {
		if i != activeIdx {
			order = append(order, i)
		}
	}

	maxBottom := l.MaxBottom()
	placed := make([]grid.Rect, 0, len(order))
	for _, i := range order {
		desired := l.Cards[i].Rect.Clamp(l.Columns)
		r := firstFreeRect(desired, placed, l.Columns, maxBottom)
		l.Cards[i] = l.Cards[i].WithRect(r, l.Columns)
		placed = append(placed, l.Cards[i].Rect)
		maxBottom = max(maxBottom, l.Cards[i].Rect.MaxY())
	}

	if compactAfter && l.Compact == CompactVertical {
		compactVertical(&l, order)
	}

	return l
}

// firstFreeRect finds the nearest collision-free rect for desired among
// the already-placed obstacles: the desired rect itself, then a rightward
// x scan on the same row, then leftward, then a bounded row-by-row
// downward scan, and finally an unbounded downward scan that always
// terminates once y clears every obstacle.
func firstFreeRect(desired grid.Rect, obstacles []grid.Rect, columns, maxBottom int) grid.Rect {
	if !desired.IntersectsAny(obstacles) {
		return desired
	}

	maxX := columns - desired.W
	for x := desired.X + 1; x <= maxX; x++ {
		cand := grid.Rect{X: x, Y: desired.Y, W: desired.W, H: desired.H}
		if !cand.IntersectsAny(obstacles) {
			return cand
		}
	}
	for x := desired.X - 1; x >= 0; x-- {
		cand := grid.Rect{X: x, Y: desired.Y, W: desired.W, H: desired.H}
		if !cand.IntersectsAny(obstacles) {
			return cand
		}
	}

	// Bounded downward scan over the occupied region plus a margin
	// proportional to the card being placed.
	bound := maxBottom + max(config.SearchMarginRows, desired.H)
	for y := desired.Y + 1; y <= bound; y++ {
		for x := 0; x <= maxX; x++ {
			cand := grid.Rect{X: x, Y: y, W: desired.W, H: desired.H}
			if !cand.IntersectsAny(obstacles) {
				return cand
			}
		}
	}

	// Pathological density: keep scanning below the content. Rows past
	// every obstacle's bottom edge are necessarily free.
	for y := max(desired.Y+1, maxBottom); ; y++ {
		for x := 0; x <= maxX; x++ {
			cand := grid.Rect{X: x, Y: y, W: desired.W, H: desired.H}
			if !cand.IntersectsAny(obstacles) {
				return cand
			}
		}
	}
}

// compactVertical pulls each placed card upward one row at a time until
// it hits another card or the grid top. Cards are processed in (y, x)
// order so upper rows settle before the rows below them; horizontal
// position never changes.
func compactVertical(l *Layout, order []int) {
	sorted := slices.Clone(order)
	slices.SortStableFunc(sorted, func(a, b int) int {
		ra, rb := l.Cards[a].Rect, l.Cards[b].Rect
		if ra.Y != rb.Y {
			return ra.Y - rb.Y
		}
		return ra.X - rb.X
	})

	for _, i := range sorted {
		r := l.Cards[i].Rect
		for r.Y > 0 {
			cand := grid.Rect{X: r.X, Y: r.Y - 1, W: r.W, H: r.H}
			if collidesWithOthers(l, i, cand) {
				break
			}
			r = cand
		}
		l.Cards[i].Rect = r
	}
}

func collidesWithOthers(l *Layout, self int, r grid.Rect) bool {
	for j, c := range l.Cards {
		if j == self || c.Hidden {
			continue
		}
		if r.Intersects(c.Rect) {
			return true
		}
	}
	return false
}

// AddCard appends a freshly keyed default placement for kind (built by
// the caller's factory) and sanitizes the result.
func AddCard(l Layout, factory Factory, kind card.Kind) Layout {
	l = l.clone()
	c := factory(kind, l.Columns)
	c.ID = card.NewID()
	l.Cards = append(l.Cards, c)
	return Sanitize(l)
}

// RemoveCard deletes the card with the given ID. Unknown IDs are no-ops.
func RemoveCard(l Layout, id string) Layout {
	i := l.CardByID(id)
	if i < 0 {
		return l
	}
	l = l.clone()
	l.Cards = slices.Delete(l.Cards, i, i+1)
	return Sanitize(l)
}

// SetCardHidden hides or shows a card. Hiding frees its space
// immediately; showing re-enters the placement search as the active card
// at its last known rect, so it lands on or near where it was.
func SetCardHidden(l Layout, id string, hidden bool) Layout {
	i := l.CardByID(id)
	if i < 0 || l.Cards[i].Hidden == hidden {
		return l
	}
	l = l.clone()
	l.Cards[i].Hidden = hidden
	if hidden {
		return Sanitize(l)
	}
	r := l.Cards[i].Rect
	return Resolve(l, id, &r, true)
}

// ResetCard restores a card's rect and constraints to the kind's default
// while preserving its identity, title, lock, and visibility.
func ResetCard(l Layout, id string, factory Factory) Layout {
	i := l.CardByID(id)
	if i < 0 {
		return l
	}
	l = l.clone()
	def := factory(l.Cards[i].Kind, l.Columns)
	c := l.Cards[i]
	c.Rect = def.Rect
	c.MinW, c.MinH, c.MaxW, c.MaxH = def.MinW, def.MinH, def.MaxW, def.MaxH
	c.AspectLock = def.AspectLock
	l.Cards[i] = c
	r := c.Rect
	return Resolve(l, id, &r, true)
}

// SetAllLocked bulk-sets the lock flag on every card. No geometry change.
func SetAllLocked(l Layout, locked bool) Layout {
	l = l.clone()
	for i := range l.Cards {
		l.Cards[i].Locked = locked
	}
	return l
}

// SetCardLocked toggles a single card's lock flag.
func SetCardLocked(l Layout, id string, locked bool) Layout {
	i := l.CardByID(id)
	if i < 0 {
		return l
	}
	l = l.clone()
	l.Cards[i].Locked = locked
	return l
}

// RenameCard sets a card's title override. An empty title falls back to
// the kind's catalog name.
func RenameCard(l Layout, id, title string) Layout {
	i := l.CardByID(id)
	if i < 0 {
		return l
	}
	l = l.clone()
	l.Cards[i].Title = title
	return l
}

// SetAspectLock sets or clears a card's aspect lock and re-sanitizes,
// since the derived height may move neighbors.
func SetAspectLock(l Layout, id string, ratio *float64) Layout {
	i := l.CardByID(id)
	if i < 0 {
		return l
	}
	l = l.clone()
	if ratio != nil {
		v := *ratio
		l.Cards[i].AspectLock = &v
	} else {
		l.Cards[i].AspectLock = nil
	}
	return Sanitize(l)
}

// SetCompactMode switches the compaction mode and re-sanitizes.
func SetCompactMode(l Layout, mode CompactMode) Layout {
	l = l.clone()
	l.Compact = mode
	return Sanitize(l)
}

// SetColumns changes the column count and re-sanitizes, re-deriving every
// card's effective bounds.
func SetColumns(l Layout, columns int) Layout {
	l = l.clone()
	l.Columns = columns
	return Sanitize(l)
}

// NormalizeGaps resets gap and row unit height to engine defaults.
func NormalizeGaps(l Layout) Layout {
	l = l.clone()
	l.Gap = config.DefaultGap
	l.RowHeight = config.DefaultRowHeight
	return Sanitize(l)
}

// Equal reports whether two layouts are semantically identical.
func Equal(a, b Layout) bool {
	if a.Columns != b.Columns || a.RowHeight != b.RowHeight ||
		a.Gap != b.Gap || a.Compact != b.Compact || a.Version != b.Version ||
		len(a.Cards) != len(b.Cards) {
		return false
	}
	for i := range a.Cards {
		ca, cb := a.Cards[i], b.Cards[i]
		la, lb := ca.AspectLock, cb.AspectLock
		ca.AspectLock, cb.AspectLock = nil, nil
		if ca != cb {
			return false
		}
		if (la == nil) != (lb == nil) {
			return false
		}
		if la != nil && *la != *lb {
			return false
		}
	}
	return true
}
