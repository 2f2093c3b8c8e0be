package grid

import "testing"

func TestIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{
			name: "overlapping",
			a:    Rect{X: 0, Y: 0, W: 4, H: 4},
			b:    Rect{X: 2, Y: 2, W: 4, H: 4},
			want: true,
		},
		{
			name: "touching edges do not intersect",
			a:    Rect{X: 0, Y: 0, W: 4, H: 4},
			b:    Rect{X: 4, Y: 0, W: 4, H: 4},
			want: false,
		},
		{
			name: "touching corners do not intersect",
			a:    Rect{X: 0, Y: 0, W: 4, H: 4},
			b:    Rect{X: 4, Y: 4, W: 4, H: 4},
			want: false,
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, W: 10, H: 10},
			b:    Rect{X: 3, Y: 3, W: 2, H: 2},
			want: true,
		},
		{
			name: "disjoint on both axes",
			a:    Rect{X: 0, Y: 0, W: 2, H: 2},
			b:    Rect{X: 10, Y: 10, W: 2, H: 2},
			want: false,
		},
		{
			name: "overlap on x only",
			a:    Rect{X: 0, Y: 0, W: 4, H: 2},
			b:    Rect{X: 2, Y: 5, W: 4, H: 2},
			want: false,
		},
		{
			name: "identical",
			a:    Rect{X: 1, Y: 1, W: 3, H: 3},
			b:    Rect{X: 1, Y: 1, W: 3, H: 3},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name    string
		in      Rect
		columns int
		want    Rect
	}{
		{
			name:    "in bounds unchanged",
			in:      Rect{X: 2, Y: 3, W: 4, H: 5},
			columns: 12,
			want:    Rect{X: 2, Y: 3, W: 4, H: 5},
		},
		{
			name:    "negative position",
			in:      Rect{X: -3, Y: -2, W: 4, H: 5},
			columns: 12,
			want:    Rect{X: 0, Y: 0, W: 4, H: 5},
		},
		{
			name:    "width wider than grid",
			in:      Rect{X: 0, Y: 0, W: 30, H: 2},
			columns: 12,
			want:    Rect{X: 0, Y: 0, W: 12, H: 2},
		},
		{
			name:    "pushed off right edge",
			in:      Rect{X: 10, Y: 0, W: 6, H: 2},
			columns: 12,
			want:    Rect{X: 6, Y: 0, W: 6, H: 2},
		},
		{
			name:    "zero-size repaired",
			in:      Rect{X: 0, Y: 0, W: 0, H: 0},
			columns: 12,
			want:    Rect{X: 0, Y: 0, W: 1, H: 1},
		},
		{
			name:    "degenerate column count",
			in:      Rect{X: 5, Y: 0, W: 3, H: 1},
			columns: 0,
			want:    Rect{X: 0, Y: 0, W: 1, H: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Clamp(tt.columns); got != tt.want {
				t.Errorf("Clamp(%v, %d) = %v, want %v", tt.in, tt.columns, got, tt.want)
			}
		})
	}
}

func TestIntersectsAny(t *testing.T) {
	obstacles := []Rect{
		{X: 0, Y: 0, W: 4, H: 4},
		{X: 8, Y: 0, W: 4, H: 4},
	}
	if got := (Rect{X: 4, Y: 0, W: 4, H: 4}).IntersectsAny(obstacles); got {
		t.Error("rect in the gap should not intersect any obstacle")
	}
	if got := (Rect{X: 3, Y: 1, W: 6, H: 2}).IntersectsAny(obstacles); !got {
		t.Error("spanning rect should intersect")
	}
	if got := (Rect{X: 0, Y: 10, W: 12, H: 2}).IntersectsAny(nil); got {
		t.Error("no obstacles means no intersection")
	}
}
