// Package journal lists resolved quests, newest first.
package journal

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/dohyeon0608/ReadQuest/internal/game"
	"github.com/dohyeon0608/ReadQuest/internal/progression"
	"github.com/dohyeon0608/ReadQuest/internal/screen"
	"github.com/dohyeon0608/ReadQuest/internal/ui/layout"
	"github.com/dohyeon0608/ReadQuest/internal/ui/theme"
)

type loadedMsg struct {
	entries []progression.JournalEntry
	err     error
}

// JournalScreen is a scrollable list of journal entries.
type JournalScreen struct {
	session *game.Session
	entries []progression.JournalEntry
	offset  int
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*JournalScreen)(nil)
var _ screen.KeyHintProvider = (*JournalScreen)(nil)

func New(session *game.Session) *JournalScreen {
	return &JournalScreen{session: session}
}

func (j *JournalScreen) Init() tea.Cmd {
	s := j.session
	return func() tea.Msg {
		stats, err := s.Stats(context.Background())
		return loadedMsg{entries: stats.Journal, err: err}
	}
}

func (j *JournalScreen) Title() string { return "Reading Journal" }

func (j *JournalScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (j *JournalScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		j.loaded = true
		if msg.err != nil {
			j.errMsg = msg.err.Error()
			return j, nil
		}
		j.entries = msg.entries
	case tea.KeyPressMsg:
		switch msg.String() {
		case "up":
			if j.offset > 0 {
				j.offset--
			}
		case "down":
			if j.offset < len(j.entries)-1 {
				j.offset++
			}
		}
	}
	return j, nil
}

const linesPerEntry = 3

func (j *JournalScreen) View(width, height int) string {
	if j.errMsg != "" {
		return layout.Centered(theme.Warning.Render(j.errMsg), width, height)
	}
	if !j.loaded {
		return layout.Centered(theme.Hint.Render("Loading journal..."), width, height)
	}
	if len(j.entries) == 0 {
		return layout.Centered(theme.Hint.Render("No quests resolved yet."), width, height)
	}

	visible := max((height-6)/linesPerEntry, 1)
	end := min(j.offset+visible, len(j.entries))

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("%d quest(s)", len(j.entries))))
	b.WriteString("\n\n")
	for _, e := range j.entries[j.offset:end] {
		b.WriteString(renderEntry(e))
		b.WriteString("\n")
	}
	if end < len(j.entries) {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  … %d more", len(j.entries)-end)))
	}

	cw := min(width-4, 76)
	return layout.Centered(theme.Card.Width(cw).Render(strings.TrimRight(b.String(), "\n")), width, height)
}

func renderEntry(e progression.JournalEntry) string {
	head := theme.Subtitle.Render(e.Date.Format("2006-01-02 15:04")) + "  " + theme.Body.Render(e.BookTitle)
	score := fmt.Sprintf("quiz %d/%d", e.QuizCorrect, e.QuizTotal)
	reward := fmt.Sprintf("+%d EXP  +%d RP", e.EarnedExp, e.EarnedRp)
	detail := theme.Hint.Render(fmt.Sprintf("  %s · %d min · %s · %s",
		strings.Join(e.Sections, ", "), e.GoalMinutes, score, reward))
	return head + "\n" + detail + "\n"
}
