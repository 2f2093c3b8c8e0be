package catalog

import (
	"testing"

	"github.com/dodorz/gridboard/internal/card"
	"github.com/dodorz/gridboard/internal/layout"
)

func TestEveryKindHasAnEntry(t *testing.T) {
	for _, kind := range card.Kinds {
		e := EntryFor(kind)
		if e.Name == "" {
			t.Errorf("%s: missing display name", kind)
		}
		if e.DefaultRect.W < 1 || e.DefaultRect.H < 1 {
			t.Errorf("%s: degenerate default rect %+v", kind, e.DefaultRect)
		}
	}
}

func TestDefaultRectsSatisfyPolicies(t *testing.T) {
	for _, kind := range card.Kinds {
		c := DefaultCard(kind, 24)
		pol := card.PolicyFor(kind)
		if c.Rect.W < pol.MinW || c.Rect.W > pol.MaxW || c.Rect.H < pol.MinH || c.Rect.H > pol.MaxH {
			t.Errorf("%s: default %+v violates policy %+v", kind, c.Rect, pol)
		}
	}
}

func TestUnknownKindGetsGenericEntry(t *testing.T) {
	e := EntryFor(card.Kind("mystery"))
	if e.Name == "" || e.DefaultRect.W < 1 {
		t.Errorf("unknown kind entry unusable: %+v", e)
	}
}

func TestDefaultCardAt(t *testing.T) {
	c := DefaultCardAt(card.KindTimer, 10, 3, 24)
	if c.Rect.X != 10 || c.Rect.Y != 3 {
		t.Errorf("rect = %+v, want placed at (10,3)", c.Rect)
	}
}

func TestStarterBoardIsValid(t *testing.T) {
	l := layout.New(24)
	l.Cards = DefaultLayoutCards(24)
	l = layout.Sanitize(l)
	if rep := layout.Validate(l); !rep.Valid() {
		t.Errorf("starter board invalid: %+v", rep.Issues)
	}
	if len(l.Cards) < 3 {
		t.Errorf("starter board has %d cards", len(l.Cards))
	}
}
