package input

import (
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dodorz/gridboard/internal/app"
	"github.com/dodorz/gridboard/internal/card"
	"github.com/dodorz/gridboard/internal/catalog"
	"github.com/dodorz/gridboard/internal/layout"
	"github.com/dodorz/gridboard/internal/session"
)

// newTestDashboard builds a dashboard over a throwaway save path and
// replaces the starter board with a small fixed layout: a timer card at
// the origin and a media card to its right, no compaction.
func newTestDashboard(t *testing.T) *app.Dashboard {
	t.Helper()
	d := app.NewDashboard(app.Options{
		SavePath: filepath.Join(t.TempDir(), "workspace.json"),
	})
	l := layout.New(24)
	l.Compact = layout.CompactNone
	l.Cards = []card.Placement{
		catalog.DefaultCardAt(card.KindTimer, 0, 0, 24),
		catalog.DefaultCardAt(card.KindMedia, 8, 0, 24),
	}
	d.Commit(l)
	return d
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func findCard(t *testing.T, l layout.Layout, id string) card.Placement {
	t.Helper()
	i := l.CardByID(id)
	if i < 0 {
		t.Fatalf("card %q not in layout", id)
	}
	return l.Cards[i]
}

func TestQuitBinding(t *testing.T) {
	d := newTestDashboard(t)
	_, cmd := HandleKeyPress(key('q'), d)
	if cmd == nil {
		t.Fatal("expected a command from quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestFocusCycle(t *testing.T) {
	d := newTestDashboard(t)
	cards := d.Workspace.Committed.Cards
	d.FocusedID = cards[0].ID

	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyTab}, d)
	if d.FocusedID != cards[1].ID {
		t.Fatalf("focus = %q, want second card %q", d.FocusedID, cards[1].ID)
	}
	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyTab}, d)
	if d.FocusedID != cards[0].ID {
		t.Fatalf("focus did not wrap back to first card")
	}
}

func TestMoveFocusedCard(t *testing.T) {
	d := newTestDashboard(t)
	id := d.Workspace.Committed.Cards[0].ID
	d.FocusedID = id

	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyRight}, d)

	c := findCard(t, d.Workspace.Committed, id)
	if c.Rect.X != 1 {
		t.Fatalf("card did not move right: %+v", c)
	}
}

func TestMoveRejectsOutOfBounds(t *testing.T) {
	d := newTestDashboard(t)
	id := d.Workspace.Committed.Cards[0].ID
	d.FocusedID = id
	before := d.Workspace.HistoryLen()

	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyLeft}, d)

	c := findCard(t, d.Workspace.Committed, id)
	if c.Rect.X != 0 {
		t.Fatalf("card at the left edge moved to x=%d", c.Rect.X)
	}
	if d.Workspace.HistoryLen() != before {
		t.Fatal("rejected move still recorded history")
	}
}

func TestLockedCardIgnoresMove(t *testing.T) {
	d := newTestDashboard(t)
	id := d.Workspace.Committed.Cards[0].ID
	d.FocusedID = id
	d.Commit(layout.SetCardLocked(d.Workspace.Committed, id, true))

	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyRight}, d)

	if c := findCard(t, d.Workspace.Committed, id); c.Rect.X != 0 {
		t.Fatalf("locked card moved to x=%d", c.Rect.X)
	}
}

func TestGrowWidth(t *testing.T) {
	d := newTestDashboard(t)
	id := d.Workspace.Committed.Cards[0].ID
	d.FocusedID = id
	w := findCard(t, d.Workspace.Committed, id).Rect.W

	HandleKeyPress(key('>'), d)

	if c := findCard(t, d.Workspace.Committed, id); c.Rect.W != w+1 {
		t.Fatalf("width = %d, want %d", c.Rect.W, w+1)
	}
}

func TestUndoRedoBindings(t *testing.T) {
	d := newTestDashboard(t)
	id := d.Workspace.Committed.Cards[0].ID
	d.FocusedID = id

	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyRight}, d)
	HandleKeyPress(key('u'), d)
	if c := findCard(t, d.Workspace.Committed, id); c.Rect.X != 0 {
		t.Fatalf("undo did not restore x=0, got %d", c.Rect.X)
	}

	HandleKeyPress(tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}, d)
	if c := findCard(t, d.Workspace.Committed, id); c.Rect.X != 1 {
		t.Fatalf("redo did not reapply the move, got x=%d", c.Rect.X)
	}
}

func TestAddCardViaPicker(t *testing.T) {
	d := newTestDashboard(t)
	before := len(d.Workspace.Committed.Cards)

	HandleKeyPress(key('n'), d)
	if d.Mode != app.PickerMode {
		t.Fatalf("mode = %v, want picker", d.Mode)
	}
	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyDown}, d)
	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyEnter}, d)

	if d.Mode != app.BoardMode {
		t.Fatalf("picker did not return to board mode")
	}
	cards := d.Workspace.Committed.Cards
	if len(cards) != before+1 {
		t.Fatalf("card count = %d, want %d", len(cards), before+1)
	}
	want := catalog.Entries()[1].Kind
	if cards[len(cards)-1].Kind != want {
		t.Fatalf("added kind = %q, want %q", cards[len(cards)-1].Kind, want)
	}
	if d.FocusedID != cards[len(cards)-1].ID {
		t.Fatal("new card was not focused")
	}
}

func TestPickerEscCancels(t *testing.T) {
	d := newTestDashboard(t)
	before := len(d.Workspace.Committed.Cards)

	HandleKeyPress(key('n'), d)
	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyEscape}, d)

	if d.Mode != app.BoardMode {
		t.Fatalf("esc did not close the picker")
	}
	if len(d.Workspace.Committed.Cards) != before {
		t.Fatal("cancelled picker still added a card")
	}
}

func TestRenameFlow(t *testing.T) {
	d := newTestDashboard(t)
	id := d.Workspace.Committed.Cards[0].ID
	d.FocusedID = id

	HandleKeyPress(key('r'), d)
	if d.Mode != app.RenameMode {
		t.Fatalf("mode = %v, want rename", d.Mode)
	}
	for _, r := range "Zen" {
		HandleKeyPress(key(r), d)
	}
	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyEnter}, d)

	i := d.Workspace.Committed.CardByID(id)
	if got := d.Workspace.Committed.Cards[i].Title; got != "Zen" {
		t.Fatalf("title = %q, want %q", got, "Zen")
	}
	if d.Mode != app.BoardMode || d.InputBuffer != "" {
		t.Fatal("rename mode did not reset cleanly")
	}
}

func TestRenameBackspace(t *testing.T) {
	d := newTestDashboard(t)
	d.FocusedID = d.Workspace.Committed.Cards[0].ID

	HandleKeyPress(key('r'), d)
	HandleKeyPress(key('a'), d)
	HandleKeyPress(key('b'), d)
	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyBackspace}, d)

	if d.InputBuffer != "a" {
		t.Fatalf("buffer = %q, want %q", d.InputBuffer, "a")
	}
}

func TestEscCancelsGesture(t *testing.T) {
	d := newTestDashboard(t)
	id := d.Workspace.Committed.Cards[0].ID
	d.Session.Begin(session.Drag, id, d.Workspace.Committed)
	if preview, ok := d.Session.Update(id, 30, 0, d.Metrics()); ok {
		d.Preview = &preview
	}

	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyEscape}, d)

	if d.Session.Active() {
		t.Fatal("esc left the gesture active")
	}
	if d.Preview != nil {
		t.Fatal("esc left a stale preview")
	}
}

func TestHideAndShowHidden(t *testing.T) {
	d := newTestDashboard(t)
	id := d.Workspace.Committed.Cards[0].ID
	d.FocusedID = id

	HandleKeyPress(key('m'), d)
	if c := findCard(t, d.Workspace.Committed, id); !c.Hidden {
		t.Fatal("hide_card did not hide the focused card")
	}
	if d.FocusedID == id {
		t.Fatal("focus stayed on a hidden card")
	}

	HandleKeyPress(key('M'), d)
	if c := findCard(t, d.Workspace.Committed, id); c.Hidden {
		t.Fatal("show_hidden did not restore the card")
	}
}

func TestToggleCompactBinding(t *testing.T) {
	d := newTestDashboard(t)
	HandleKeyPress(key('c'), d)
	if d.Workspace.Committed.Compact != layout.CompactVertical {
		t.Fatalf("compact = %q, want vertical", d.Workspace.Committed.Compact)
	}
	HandleKeyPress(key('c'), d)
	if d.Workspace.Committed.Compact != layout.CompactNone {
		t.Fatalf("compact = %q, want none", d.Workspace.Committed.Compact)
	}
}

func TestSaveProfileFlow(t *testing.T) {
	d := newTestDashboard(t)
	before := len(d.Workspace.Profiles)

	HandleKeyPress(key('s'), d)
	if d.Mode != app.ProfileNameMode {
		t.Fatalf("mode = %v, want profile name entry", d.Mode)
	}
	for _, r := range "Wide" {
		HandleKeyPress(key(r), d)
	}
	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyEnter}, d)

	if len(d.Workspace.Profiles) != before+1 {
		t.Fatalf("profile count = %d, want %d", len(d.Workspace.Profiles), before+1)
	}
	p := d.Workspace.Profiles[len(d.Workspace.Profiles)-1]
	if p.Name != "Wide" {
		t.Fatalf("profile name = %q, want %q", p.Name, "Wide")
	}
	if d.Workspace.CurrentProfileID != p.ID {
		t.Fatal("saved profile was not selected")
	}
}

func TestAspectLockToggle(t *testing.T) {
	d := newTestDashboard(t)
	id := d.Workspace.Committed.Cards[0].ID
	d.FocusedID = id

	HandleKeyPress(key('a'), d)
	c := findCard(t, d.Workspace.Committed, id)
	if c.AspectLock == nil {
		t.Fatal("aspect_lock did not lock the card shape")
	}
	want := float64(c.Rect.W) / float64(c.Rect.H)
	if *c.AspectLock != want {
		t.Fatalf("locked ratio = %v, want %v", *c.AspectLock, want)
	}

	HandleKeyPress(key('a'), d)
	if c := findCard(t, d.Workspace.Committed, id); c.AspectLock != nil {
		t.Fatal("second toggle did not release the lock")
	}
}

func TestHelpOverlayToggles(t *testing.T) {
	d := newTestDashboard(t)
	HandleKeyPress(key('?'), d)
	if d.Mode != app.HelpMode {
		t.Fatalf("mode = %v, want help", d.Mode)
	}
	HandleKeyPress(tea.KeyPressMsg{Code: tea.KeyEscape}, d)
	if d.Mode != app.BoardMode {
		t.Fatal("esc did not close the help overlay")
	}
}

func TestRemoveCard(t *testing.T) {
	d := newTestDashboard(t)
	id := d.Workspace.Committed.Cards[0].ID
	d.FocusedID = id

	HandleKeyPress(key('x'), d)

	if d.Workspace.Committed.CardByID(id) >= 0 {
		t.Fatal("remove_card left the card in the layout")
	}
	if d.FocusedID == id {
		t.Fatal("focus stayed on the removed card")
	}
}
