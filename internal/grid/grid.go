// Package grid provides integer rectangle math on the dashboard's
// column/row grid. All geometry in GRIDBOARD is expressed in whole grid
// cells; pixel conversion happens at the input layer.
package grid

// Rect is an axis-aligned rectangle in grid-cell units.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// MaxX returns the exclusive right edge.
func (r Rect) MaxX() int { return r.X + r.W }

// MaxY returns the exclusive bottom edge.
func (r Rect) MaxY() int { return r.Y + r.H }

// Intersects reports whether two rects overlap. Edges are half-open, so
// rects that merely touch do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() &&
		r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Clamp returns r constrained to the given column count. Width is capped
// at columns, X at [0, columns-w], and Y at >= 0. Height is never
// columns-bounded; the grid grows downward.
func (r Rect) Clamp(columns int) Rect {
	if columns < 1 {
		columns = 1
	}
	if r.W < 1 {
		r.W = 1
	}
	if r.W > columns {
		r.W = columns
	}
	if r.H < 1 {
		r.H = 1
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.X > columns-r.W {
		r.X = columns - r.W
	}
	if r.Y < 0 {
		r.Y = 0
	}
	return r
}

// IntersectsAny reports whether r overlaps any rect in obstacles.
func (r Rect) IntersectsAny(obstacles []Rect) bool {
	for _, o := range obstacles {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}
