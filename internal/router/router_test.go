package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/skillfolio/skillfolio/internal/screen"
)

type stubScreen struct {
	name string
}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(width, height int) string           { return s.name }
func (s *stubScreen) Title() string                           { return s.name }

func TestPushPop(t *testing.T) {
	r := New(&stubScreen{name: "dashboard"})
	if r.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", r.Depth())
	}

	r.Push(&stubScreen{name: "detail"})
	if r.Depth() != 2 || r.Active().Title() != "detail" {
		t.Errorf("after push: depth=%d active=%q", r.Depth(), r.Active().Title())
	}

	r.Pop()
	if r.Depth() != 1 || r.Active().Title() != "dashboard" {
		t.Errorf("after pop: depth=%d active=%q", r.Depth(), r.Active().Title())
	}
}

func TestPop_NeverEmptiesStack(t *testing.T) {
	r := New(&stubScreen{name: "dashboard"})
	r.Pop()
	if r.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", r.Depth())
	}
}

func TestReplace_KeepsDepth(t *testing.T) {
	r := New(&stubScreen{name: "loading"})
	r.Replace(&stubScreen{name: "dashboard"})
	if r.Depth() != 1 || r.Active().Title() != "dashboard" {
		t.Errorf("after replace: depth=%d active=%q", r.Depth(), r.Active().Title())
	}
}

func TestUpdate_HandlesNavigationMessages(t *testing.T) {
	r := New(&stubScreen{name: "dashboard"})
	r.Update(PushScreenMsg{Screen: &stubScreen{name: "detail"}})
	if r.Active().Title() != "detail" {
		t.Errorf("push message ignored, active=%q", r.Active().Title())
	}
	r.Update(PopScreenMsg{})
	if r.Active().Title() != "dashboard" {
		t.Errorf("pop message ignored, active=%q", r.Active().Title())
	}
}
