package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dohyeon0608/ReadQuest/internal/game/gametest"
	"github.com/dohyeon0608/ReadQuest/internal/llm"
	"github.com/dohyeon0608/ReadQuest/internal/quest"
	"github.com/dohyeon0608/ReadQuest/internal/router"
	"github.com/dohyeon0608/ReadQuest/internal/screens/results"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func pendingQuest(t *testing.T) *quest.Lifecycle {
	t.Helper()
	lc := quest.Start(quest.Quest{
		ID:           "q1",
		BookTitle:    gametest.Novel,
		Sections:     []string{"c1", "c2"},
		GoalMinutes:  10,
		PotentialExp: 100,
		PotentialRp:  100,
	})
	if err := lc.Confirm(); err != nil {
		t.Fatal(err)
	}
	if err := lc.FinishFocus(); err != nil {
		t.Fatal(err)
	}
	return lc
}

// run feeds the result of cmd back into the screen.
func run(t *testing.T, s *QuizScreen, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	_, next := s.Update(cmd())
	return next
}

func TestQuizScreen_AnswerAndResolve(t *testing.T) {
	f := gametest.New(t, true)
	f.Mock.AddResponse(llm.MockResponse{Content: gametest.TwoQuestionQuiz})
	lc := pendingQuest(t)
	s := New(f.Session, lc)

	run(t, s, s.Init())
	if s.state != stateAnswering {
		t.Fatalf("state = %v, want answering", s.state)
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}

	if _, cmd := s.Update(keyPress('a')); cmd != nil {
		t.Error("first answer should only advance")
	}
	if s.current != 1 {
		t.Fatalf("current = %d, want 1", s.current)
	}

	_, cmd := s.Update(keyPress('d'))
	if s.state != stateResolving {
		t.Fatalf("state = %v, want resolving", s.state)
	}
	next := run(t, s, cmd)
	if next == nil {
		t.Fatal("expected navigation to results")
	}
	msg, ok := next().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", msg.Screen)
	}
	if lc.Phase() != quest.PhaseResolved {
		t.Errorf("phase = %v", lc.Phase())
	}

	stats, err := f.Session.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stats.Journal) != 1 || stats.Journal[0].QuizCorrect != 2 {
		t.Errorf("journal = %+v", stats.Journal)
	}
}

func TestQuizScreen_WrongAnswersEarnNothing(t *testing.T) {
	f := gametest.New(t, true)
	f.Mock.AddResponse(llm.MockResponse{Content: gametest.TwoQuestionQuiz})
	s := New(f.Session, pendingQuest(t))

	run(t, s, s.Init())
	s.Update(keyPress('b'))
	_, cmd := s.Update(keyPress('b'))
	run(t, s, cmd)

	stats, err := f.Session.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Rp != 0 || stats.Exp != 0 {
		t.Errorf("expected no reward, got exp=%d rp=%d", stats.Exp, stats.Rp)
	}
	if len(stats.Progress[gametest.Novel]) != 0 {
		t.Error("failed quest must not mark sections as read")
	}
}

func TestQuizScreen_UnavailableCanOnlySkip(t *testing.T) {
	f := gametest.New(t, false)
	lc := pendingQuest(t)
	s := New(f.Session, lc)

	run(t, s, s.Init())
	if s.state != stateFailed {
		t.Fatalf("state = %v, want failed", s.state)
	}
	if _, cmd := s.Update(keyPress('r')); cmd != nil {
		t.Error("retry must be a no-op without a generator")
	}

	_, cmd := s.Update(keyPress('s'))
	run(t, s, cmd)
	if lc.Phase() != quest.PhaseResolved {
		t.Errorf("phase = %v", lc.Phase())
	}

	stats, err := f.Session.Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(stats.Journal) != 1 || stats.Journal[0].EarnedExp != 0 {
		t.Errorf("journal = %+v", stats.Journal)
	}
}

func TestQuizScreen_RetryAfterFailure(t *testing.T) {
	f := gametest.New(t, true)
	s := New(f.Session, pendingQuest(t))

	// The mock has no queued response, so the first attempt fails.
	run(t, s, s.Init())
	if s.state != stateFailed {
		t.Fatalf("state = %v, want failed", s.state)
	}

	f.Mock.AddResponse(llm.MockResponse{Content: gametest.TwoQuestionQuiz})
	_, cmd := s.Update(keyPress('r'))
	if s.state != stateLoading {
		t.Errorf("state = %v, want loading", s.state)
	}
	run(t, s, cmd)
	if s.state != stateAnswering {
		t.Errorf("state = %v, want answering", s.state)
	}
}

func TestQuizScreen_ResolvesOnce(t *testing.T) {
	f := gametest.New(t, false)
	s := New(f.Session, pendingQuest(t))
	run(t, s, s.Init())

	_, cmd := s.Update(keyPress('s'))
	if cmd == nil {
		t.Fatal("expected resolve command")
	}
	s.state = stateFailed
	if _, again := s.Update(keyPress('s')); again != nil {
		t.Error("a resolved quest must not resolve again")
	}
}

func TestQuizScreen_RecoveryMenu(t *testing.T) {
	f := gametest.New(t, false)
	lc := pendingQuest(t)
	s := New(f.Session, lc)
	run(t, s, s.Init())

	// Retry is disabled without a generator, so the menu starts on skip.
	if s.recovery.Selected != 1 {
		t.Fatalf("selected = %d, want skip", s.recovery.Selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.recovery.Selected != 1 {
		t.Error("cursor must not land on a disabled item")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	run(t, s, cmd)
	if lc.Phase() != quest.PhaseResolved {
		t.Errorf("phase = %v", lc.Phase())
	}
}
