package journal

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/dohyeon0608/ReadQuest/internal/game/gametest"
	"github.com/dohyeon0608/ReadQuest/internal/quest"
	"github.com/dohyeon0608/ReadQuest/internal/reward"
)

func TestJournalScreen_Empty(t *testing.T) {
	f := gametest.New(t, false)
	j := New(f.Session)
	j.Update(j.Init()())

	if !strings.Contains(j.View(80, 24), "No quests") {
		t.Error("expected empty message")
	}
}

func TestJournalScreen_ListsAndScrolls(t *testing.T) {
	f := gametest.New(t, false)
	ctx := context.Background()
	for _, sec := range []string{"c1", "c2", "c3"} {
		q := quest.Quest{BookTitle: gametest.Novel, Sections: []string{sec}, PotentialExp: 50, PotentialRp: 50}
		if _, err := f.Session.Resolve(ctx, q, reward.Tally{Correct: 1, Total: 1}); err != nil {
			t.Fatal(err)
		}
	}

	j := New(f.Session)
	j.Update(j.Init()())
	if len(j.entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(j.entries))
	}
	if j.entries[0].Sections[0] != "c3" {
		t.Errorf("newest entry first, got %v", j.entries[0].Sections)
	}
	if !strings.Contains(j.View(80, 24), gametest.Novel) {
		t.Error("expected book title in view")
	}

	down := tea.KeyPressMsg{Code: tea.KeyDown}
	for range 5 {
		j.Update(down)
	}
	if j.offset != 2 {
		t.Errorf("offset = %d, want 2", j.offset)
	}
	j.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if j.offset != 1 {
		t.Errorf("offset = %d, want 1", j.offset)
	}
}
