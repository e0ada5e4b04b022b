package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dohyeon0608/ReadQuest/internal/screen"
)

type stubScreen struct {
	title   string
	initRan bool
}

// resumableScreen records Resume calls, like the dashboard reloading stats.
type resumableScreen struct {
	stubScreen
	resumed int
}

func (s *resumableScreen) Resume() tea.Cmd {
	s.resumed++
	return nil
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "dashboard"}
	r := New(s1)

	s2 := &stubScreen{title: "confirm"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "confirm" {
		t.Errorf("expected active 'confirm', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "dashboard"}
	r := New(s1)

	s2 := &stubScreen{title: "confirm"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "dashboard" {
		t.Errorf("expected active 'dashboard', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "dashboard"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "dashboard"}
	r := New(s1)

	s2 := &stubScreen{title: "confirm"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "confirm" {
		t.Errorf("expected active 'confirm', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "dashboard"}
	r := New(s1)

	s2 := &stubScreen{title: "confirm"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "confirm" {
		t.Errorf("expected active 'confirm', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "dashboard"}
	r := New(s1)

	s2 := &stubScreen{title: "confirm"}
	r.Push(s2)

	s3 := &stubScreen{title: "focus"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "focus" {
		t.Errorf("expected active 'focus', got %q", r.Active().Title())
	}
}

func TestPopResumesRevealedScreen(t *testing.T) {
	root := &resumableScreen{stubScreen: stubScreen{title: "dashboard"}}
	r := New(root)

	r.Push(&stubScreen{title: "journal"})
	r.Update(PopScreenMsg{})

	if root.resumed != 1 {
		t.Errorf("expected 1 resume, got %d", root.resumed)
	}
}

func TestPopToRoot(t *testing.T) {
	root := &resumableScreen{stubScreen: stubScreen{title: "dashboard"}}
	r := New(root)
	r.Push(&stubScreen{title: "confirm"})
	r.Push(&stubScreen{title: "focus"})
	r.Push(&stubScreen{title: "results"})

	r.Update(PopToRootMsg{})

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "dashboard" {
		t.Errorf("expected active 'dashboard', got %q", r.Active().Title())
	}
	if root.resumed != 1 {
		t.Errorf("expected 1 resume, got %d", root.resumed)
	}

	r.Update(PopToRootMsg{})
	if root.resumed != 1 {
		t.Errorf("PopToRoot at root should not resume, got %d", root.resumed)
	}
}

func TestNavigationCommands(t *testing.T) {
	s := &stubScreen{title: "quiz"}
	if msg, ok := Push(s)().(PushScreenMsg); !ok || msg.Screen != s {
		t.Errorf("Push produced %#v", msg)
	}
	if msg, ok := Replace(s)().(ReplaceScreenMsg); !ok || msg.Screen != s {
		t.Errorf("Replace produced %#v", msg)
	}
	if _, ok := Pop()().(PopScreenMsg); !ok {
		t.Error("Pop should produce PopScreenMsg")
	}
	if _, ok := PopToRoot()().(PopToRootMsg); !ok {
		t.Error("PopToRoot should produce PopToRootMsg")
	}
}
