package layout

import "fmt"

// IssueKind classifies a validation finding.
type IssueKind string

const (
	// IssueDuplicateID means two cards share an instance ID.
	IssueDuplicateID IssueKind = "duplicate_id"
	// IssueStalePolicy means a card's stored size bounds no longer match
	// its kind's policy for the current column count.
	IssueStalePolicy IssueKind = "stale_policy"
	// IssueSizeOutOfRange means a card's rect violates its own bounds.
	IssueSizeOutOfRange IssueKind = "size_out_of_range"
	// IssueOutOfBounds means a card sits outside the grid horizontally
	// or above the top row.
	IssueOutOfBounds IssueKind = "out_of_bounds"
	// IssueOverlap means two visible cards intersect.
	IssueOverlap IssueKind = "overlap"
)

// Issue is one validation finding, tied to the card(s) involved.
type Issue struct {
	Kind   IssueKind `json:"kind"`
	CardID string    `json:"card_id"`
	Detail string    `json:"detail,omitempty"`
}

// Report is the result of validating a layout.
type Report struct {
	Issues []Issue `json:"issues"`
}

// Valid reports whether the layout passed every check.
func (r Report) Valid() bool { return len(r.Issues) == 0 }

// Validate checks a layout against every structural invariant without
// mutating it: unique IDs, fresh size policies, size and position bounds,
// and pairwise non-overlap of visible cards. It is a pure diagnostic;
// callers decide whether to repair (Sanitize) or recover.
func Validate(l Layout) Report {
	var rep Report

	seen := make(map[string]bool, len(l.Cards))
	for _, c := range l.Cards {
		if seen[c.ID] {
			rep.Issues = append(rep.Issues, Issue{Kind: IssueDuplicateID, CardID: c.ID})
			continue
		}
		seen[c.ID] = true

		fresh := c.Normalize(l.Columns)
		if fresh.MinW != c.MinW || fresh.MaxW != c.MaxW ||
			fresh.MinH != c.MinH || fresh.MaxH != c.MaxH {
			rep.Issues = append(rep.Issues, Issue{
				Kind:   IssueStalePolicy,
				CardID: c.ID,
				Detail: fmt.Sprintf("stored bounds [%d-%d]x[%d-%d], policy wants [%d-%d]x[%d-%d]",
					c.MinW, c.MaxW, c.MinH, c.MaxH, fresh.MinW, fresh.MaxW, fresh.MinH, fresh.MaxH),
			})
		}

		if c.Rect.W < c.MinW || c.Rect.W > c.MaxW || c.Rect.H < c.MinH || c.Rect.H > c.MaxH {
			rep.Issues = append(rep.Issues, Issue{
				Kind:   IssueSizeOutOfRange,
				CardID: c.ID,
				Detail: fmt.Sprintf("%dx%d outside [%d-%d]x[%d-%d]",
					c.Rect.W, c.Rect.H, c.MinW, c.MaxW, c.MinH, c.MaxH),
			})
		}

		if c.Rect.X < 0 || c.Rect.MaxX() > l.Columns || c.Rect.Y < 0 {
			rep.Issues = append(rep.Issues, Issue{
				Kind:   IssueOutOfBounds,
				CardID: c.ID,
				Detail: fmt.Sprintf("rect %+v with %d columns", c.Rect, l.Columns),
			})
		}
	}

	// Hidden cards keep stale rects on purpose; only visible pairs count.
	visible := l.VisibleCards()
	for i := 0; i < len(visible); i++ {
		for j := i + 1; j < len(visible); j++ {
			a, b := l.Cards[visible[i]], l.Cards[visible[j]]
			if a.Rect.Intersects(b.Rect) {
				rep.Issues = append(rep.Issues, Issue{
					Kind:   IssueOverlap,
					CardID: a.ID,
					Detail: fmt.Sprintf("overlaps %s", b.ID),
				})
			}
		}
	}

	return rep
}
