package leaderboard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dohyeon0608/ReadQuest/internal/game/gametest"
	board "github.com/dohyeon0608/ReadQuest/internal/leaderboard"
)

func TestLeaderboardScreen_RanksReader(t *testing.T) {
	f := gametest.New(t, false)
	l := New(f.Session)
	l.Update(l.Init()())

	if len(l.rows) != len(board.Season()) {
		t.Fatalf("rows = %d", len(l.rows))
	}
	view := l.View(80, 30)
	if !strings.Contains(view, "You are #12") {
		t.Error("expected the reader's position")
	}
}

func TestLeaderboardScreen_SwitchFilter(t *testing.T) {
	f := gametest.New(t, false)
	l := New(f.Session)
	stale := l.Init()

	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if l.Filter() != board.FilterMajor {
		t.Fatalf("filter = %v", l.Filter())
	}
	if cmd == nil {
		t.Fatal("expected a reload")
	}

	// A result for the previous tab must not overwrite the new one.
	l.Update(stale())
	if l.rows != nil {
		t.Error("stale rows applied")
	}

	l.Update(cmd())
	for _, r := range l.rows {
		if r.Major != f.Session.UserMajor() {
			t.Errorf("row %s has major %s", r.Name, r.Major)
		}
	}

	l.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	if l.Filter() != board.FilterFriends {
		t.Errorf("filter = %v", l.Filter())
	}
	l.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if l.Filter() != board.FilterMajor {
		t.Errorf("filter = %v", l.Filter())
	}
}
