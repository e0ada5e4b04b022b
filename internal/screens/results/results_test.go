package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dohyeon0608/ReadQuest/internal/progression"
	"github.com/dohyeon0608/ReadQuest/internal/quest"
	"github.com/dohyeon0608/ReadQuest/internal/reward"
	"github.com/dohyeon0608/ReadQuest/internal/router"
	"github.com/dohyeon0608/ReadQuest/internal/screen"
)

func testOutcome() progression.Outcome {
	st := progression.NewUserStats()
	st.Level = 3
	st.Rp = 240
	st.Streak = 2
	return progression.Outcome{
		Stats: st,
		Result: reward.Result{
			CorrectAnswers: 2, TotalQuestions: 2,
			EarnedExp: 120, EarnedRp: 120, BonusRp: 20, IsStreakBonus: true,
		},
		LeveledUp: true,
		NewTitles: []string{"Apprentice Bookworm"},
	}
}

func TestResultsScreen_View(t *testing.T) {
	r := New(testOutcome(), quest.Quest{Sections: []string{"c1", "c2"}})
	view := r.View(80, 30)
	for _, want := range []string{"LEVEL UP", "Apprentice Bookworm", "+120 EXP", "streak bonus +20 RP", "2 / 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultsScreen_FailedView(t *testing.T) {
	out := progression.Outcome{
		Stats:  progression.NewUserStats(),
		Result: reward.Result{CorrectAnswers: 0, TotalQuestions: 2},
	}
	view := New(out, quest.Quest{}).View(80, 24)
	if !strings.Contains(view, "not passed") {
		t.Error("expected failure message")
	}
	if strings.Contains(view, "LEVEL UP") {
		t.Error("unexpected level-up banner")
	}
}

func TestResultsScreen_InitPublishesStats(t *testing.T) {
	r := New(testOutcome(), quest.Quest{})
	msg, ok := r.Init()().(screen.StatsMsg)
	if !ok {
		t.Fatal("expected StatsMsg")
	}
	if msg.Level != 3 || msg.Rp != 240 || msg.Streak != 2 {
		t.Errorf("StatsMsg = %+v", msg)
	}
}

func TestResultsScreen_EnterReturnsHome(t *testing.T) {
	r := New(testOutcome(), quest.Quest{})
	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
}
