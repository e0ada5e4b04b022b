package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dohyeon0608/ReadQuest/internal/game/gametest"
	"github.com/dohyeon0608/ReadQuest/internal/logger"
	"github.com/dohyeon0608/ReadQuest/internal/router"
	"github.com/dohyeon0608/ReadQuest/internal/screen"
	"github.com/dohyeon0608/ReadQuest/internal/screens/journal"
)

func testModel(t *testing.T) AppModel {
	t.Helper()
	f := gametest.New(t, false)
	return newAppModel(Options{Session: f.Session, Log: logger.Nop()})
}

func TestAppModel_StatsMsgUpdatesHeader(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(screen.StatsMsg{Level: 4, Rp: 900, Streak: 3})
	got := updated.(AppModel).stats
	if got.Level != 4 || got.Rp != 900 || got.Streak != 3 {
		t.Errorf("stats = %+v", got)
	}
}

func TestAppModel_EscPopsOnlyAboveRoot(t *testing.T) {
	m := testModel(t)
	esc := tea.KeyPressMsg{Code: tea.KeyEscape}

	if _, cmd := m.Update(esc); cmd != nil {
		t.Error("esc on the root screen should do nothing")
	}

	m.router.Push(journal.New(nil))
	_, cmd := m.Update(esc)
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestAppModel_View(t *testing.T) {
	m := testModel(t)
	if !m.View().AltScreen {
		t.Error("expected alt screen")
	}

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(AppModel)
	if m.View().Content == nil {
		t.Error("expected a frame after resize")
	}
	if len(m.footerHints()) < 2 {
		t.Error("expected dashboard hints in the footer")
	}
}
