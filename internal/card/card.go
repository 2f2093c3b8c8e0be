// Package card defines the dashboard card model: the closed set of card
// kinds, their per-kind size policies, and the Placement record the layout
// engine moves around the grid.
package card

import (
	"math"

	"github.com/google/uuid"

	"github.com/dodorz/gridboard/internal/grid"
)

// Kind identifies what a card shows. The layout engine treats it as an
// opaque tag used only to look up size policies and default rects.
type Kind string

const (
	// KindTimer is a clock/countdown card.
	KindTimer Kind = "timer"
	// KindMedia is a now-playing media card.
	KindMedia Kind = "media"
	// KindSchedule is an agenda card.
	KindSchedule Kind = "schedule"
	// KindBattery is a device/system telemetry card.
	KindBattery Kind = "battery"
	// KindShortcuts is a calendar/shortcut launcher card.
	KindShortcuts Kind = "shortcuts"
	// KindTodos is a task list card.
	KindTodos Kind = "todos"
)

// Kinds lists every card kind in catalog order.
var Kinds = []Kind{KindTimer, KindMedia, KindSchedule, KindBattery, KindShortcuts, KindTodos}

// SizePolicy is the static min/max footprint for a card kind, in grid units.
type SizePolicy struct {
	MinW int
	MinH int
	MaxW int
	MaxH int
}

// policies is the static size policy table. Widths are later intersected
// with the layout's column count, so MaxW may exceed narrow grids.
var policies = map[Kind]SizePolicy{
	KindTimer:     {MinW: 4, MinH: 2, MaxW: 12, MaxH: 8},
	KindMedia:     {MinW: 6, MinH: 4, MaxW: 24, MaxH: 12},
	KindSchedule:  {MinW: 6, MinH: 4, MaxW: 16, MaxH: 16},
	KindBattery:   {MinW: 4, MinH: 2, MaxW: 8, MaxH: 6},
	KindShortcuts: {MinW: 4, MinH: 4, MaxW: 16, MaxH: 16},
	KindTodos:     {MinW: 6, MinH: 4, MaxW: 12, MaxH: 20},
}

// fallbackPolicy covers unknown kinds from old state files.
var fallbackPolicy = SizePolicy{MinW: 2, MinH: 2, MaxW: 24, MaxH: 24}

// PolicyFor returns the static size policy for a kind.
func PolicyFor(kind Kind) SizePolicy {
	if p, ok := policies[kind]; ok {
		return p
	}
	return fallbackPolicy
}

// Placement is the mutable unit of layout: one card instance placed on the
// grid. Effective Min/Max fields are derived from the kind's policy
// intersected with the current column count; Normalize recomputes them.
type Placement struct {
	ID     string    `json:"id"`
	Kind   Kind      `json:"kind"`
	Title  string    `json:"title,omitempty"`
	Hidden bool      `json:"hidden,omitempty"`
	Locked bool      `json:"locked,omitempty"`
	Rect   grid.Rect `json:"rect"`

	MinW int `json:"min_w"`
	MinH int `json:"min_h"`
	MaxW int `json:"max_w"`
	MaxH int `json:"max_h"`

	// AspectLock, when set and positive, derives height from width
	// (h = round(w / ratio)) after every mutation.
	AspectLock *float64 `json:"aspect_lock,omitempty"`
}

// NewID returns a fresh card instance identifier.
func NewID() string {
	return uuid.New().String()
}

// New creates a placement of the given kind at the given rect, normalized
// against the column count.
func New(kind Kind, rect grid.Rect, columns int) Placement {
	p := Placement{
		ID:   NewID(),
		Kind: kind,
		Rect: rect,
	}
	return p.Normalize(columns)
}

// Normalize recomputes the effective size bounds from the kind's static
// policy intersected with the column count, then clamps the rect into
// range and re-applies the aspect lock. It is idempotent and must run
// whenever the column count changes or the stored bounds may be stale.
func (p Placement) Normalize(columns int) Placement {
	if columns < 1 {
		columns = 1
	}
	pol := PolicyFor(p.Kind)

	p.MinW = min(max(1, pol.MinW), columns)
	p.MaxW = min(max(p.MinW, pol.MaxW), columns)
	p.MinH = max(1, pol.MinH)
	p.MaxH = max(p.MinH, pol.MaxH)

	return p.Clamp(columns)
}

// Clamp constrains the rect to the placement's effective bounds and the
// grid, using the currently stored Min/Max fields. Use Normalize when
// those may be stale.
func (p Placement) Clamp(columns int) Placement {
	if columns < 1 {
		columns = 1
	}
	r := p.Rect
	r.W = min(max(r.W, p.MinW), p.MaxW)
	r.H = min(max(r.H, p.MinH), p.MaxH)
	p.Rect = r.Clamp(columns)
	p = p.applyAspectLock()
	return p
}

// applyAspectLock derives height from width when an aspect lock is set,
// then re-clamps the height into the effective range.
func (p Placement) applyAspectLock() Placement {
	if p.AspectLock == nil || *p.AspectLock <= 0 {
		return p
	}
	h := int(math.Round(float64(p.Rect.W) / *p.AspectLock))
	p.Rect.H = min(max(h, p.MinH), p.MaxH)
	return p
}

// WithRect returns a copy of the placement moved to r, clamped to the
// current bounds.
func (p Placement) WithRect(r grid.Rect, columns int) Placement {
	p.Rect = r
	return p.Clamp(columns)
}

// DisplayTitle returns the user-facing card title: the custom title when
// set, otherwise the kind's catalog name.
func (p Placement) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return KindName(p.Kind)
}

// KindName returns a human-readable name for a card kind.
func KindName(kind Kind) string {
	switch kind {
	case KindTimer:
		return "Timer"
	case KindMedia:
		return "Media"
	case KindSchedule:
		return "Schedule"
	case KindBattery:
		return "Battery"
	case KindShortcuts:
		return "Shortcuts"
	case KindTodos:
		return "Todos"
	default:
		return string(kind)
	}
}
