package detail

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/skillfolio/skillfolio/internal/skills"
)

func seededStore(t *testing.T) *skills.Store {
	t.Helper()
	depth := 4
	flagged := true
	store := skills.NewStore()
	err := store.Load([]skills.Record{
		{Name: "Algorithms", Score: 7.5, AttemptTimestamps: []time.Time{time.Now()}},
		{Name: "System Design", Score: 5.1, IterationDepth: &depth, Flagged: &flagged},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return store
}

func typeString(t *testing.T, d *Screen, s string) *Screen {
	t.Helper()
	for _, r := range s {
		updated, _ := d.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
		d = updated.(*Screen)
	}
	return d
}

func openEditor(t *testing.T, d *Screen) *Screen {
	t.Helper()
	updated, _ := d.Update(tea.KeyPressMsg{Code: 'e'})
	d = updated.(*Screen)
	if !d.editing {
		t.Fatal("editor did not open")
	}
	// Clear the prefilled value.
	for i := 0; i < 5; i++ {
		updated, _ = d.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
		d = updated.(*Screen)
	}
	return d
}

func TestEdit_OutOfRangeRejectedValueRetained(t *testing.T) {
	store := seededStore(t)
	d := openEditor(t, New(store, "System Design"))
	d = typeString(t, d, "12")

	updated, _ := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	d = updated.(*Screen)

	if !d.editing {
		t.Error("rejected commit should keep the editor open")
	}
	if got := store.Snapshot()[1].Score; got != 5.1 {
		t.Errorf("score = %v, want prior 5.1 retained", got)
	}
	if !strings.Contains(d.input.View(), "between 0 and 10") {
		t.Errorf("no out-of-range message in %q", d.input.View())
	}
}

func TestEdit_ValidCommitUpdatesStoreAndViews(t *testing.T) {
	store := seededStore(t)
	d := openEditor(t, New(store, "System Design"))
	d = typeString(t, d, "6.3")

	updated, _ := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	d = updated.(*Screen)

	if d.editing {
		t.Error("editor should close after a valid commit")
	}
	snap := store.Snapshot()
	if got := snap[1].Score; got != 6.3 {
		t.Errorf("score = %v, want 6.3", got)
	}
	radar := skills.BuildRadar(snap)
	if radar[1].Score != 6.3 {
		t.Errorf("radar did not reflect the edit: %v", radar[1].Score)
	}
	trend := skills.BuildTrend(snap)
	if trend[1].Previous != 5.3 {
		t.Errorf("trend previous = %v, want 5.3", trend[1].Previous)
	}
}

func TestEdit_EmptyInputHoldsWithoutError(t *testing.T) {
	store := seededStore(t)
	d := openEditor(t, New(store, "Algorithms"))

	updated, _ := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	d = updated.(*Screen)

	if !d.editing {
		t.Error("empty input should hold the edit open, not commit")
	}
	if got := store.Snapshot()[0].Score; got != 7.5 {
		t.Errorf("score = %v, want 7.5 untouched", got)
	}
}

func TestEdit_EscCancelsWithoutCommit(t *testing.T) {
	store := seededStore(t)
	d := openEditor(t, New(store, "Algorithms"))
	d = typeString(t, d, "9.9")

	if !d.CapturesInput() {
		t.Error("editing screen should capture input")
	}

	updated, _ := d.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	d = updated.(*Screen)

	if d.editing {
		t.Error("esc should close the editor")
	}
	if d.CapturesInput() {
		t.Error("closed editor should release input")
	}
	if got := store.Snapshot()[0].Score; got != 7.5 {
		t.Errorf("score = %v, want 7.5 untouched", got)
	}
}

// stripANSI drops terminal escape sequences so assertions can span styled
// label/value boundaries.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func TestView_FallbacksAndFlag(t *testing.T) {
	store := seededStore(t)

	algo := New(store, "Algorithms").View(100, 40)
	if !strings.Contains(algo, "N/A") {
		t.Error("missing-iterations fallback not rendered")
	}
	if strings.Contains(algo, "AI/Plagiarism Suspected") {
		t.Error("unflagged skill rendered a warning")
	}

	sys := New(store, "System Design").View(100, 40)
	if !strings.Contains(stripANSI(sys), "Attempts:   N/A") {
		t.Error("empty-attempts fallback not rendered")
	}
	if !strings.Contains(sys, "AI/Plagiarism Suspected") {
		t.Error("flagged skill missing its warning")
	}
}
