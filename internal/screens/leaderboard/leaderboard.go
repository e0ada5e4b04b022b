// Package leaderboard renders the seasonal RP ranking.
package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dohyeon0608/ReadQuest/internal/game"
	board "github.com/dohyeon0608/ReadQuest/internal/leaderboard"
	"github.com/dohyeon0608/ReadQuest/internal/screen"
	"github.com/dohyeon0608/ReadQuest/internal/ui/layout"
	"github.com/dohyeon0608/ReadQuest/internal/ui/theme"
)

type rankedMsg struct {
	filter board.Filter
	rows   []board.Row
	err    error
}

// LeaderboardScreen shows the ranking under one filter tab at a time.
type LeaderboardScreen struct {
	session *game.Session
	filter  int
	rows    []board.Row
	errMsg  string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

func New(session *game.Session) *LeaderboardScreen {
	return &LeaderboardScreen{session: session}
}

func (l *LeaderboardScreen) Init() tea.Cmd { return l.rank() }
func (l *LeaderboardScreen) Title() string { return "Leaderboard" }

func (l *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Filter"},
		{Key: "1-3", Description: "Jump"},
		{Key: "Esc", Description: "Back"},
	}
}

// Filter returns the selected tab.
func (l *LeaderboardScreen) Filter() board.Filter { return board.AllFilters()[l.filter] }

func (l *LeaderboardScreen) rank() tea.Cmd {
	s, f := l.session, l.Filter()
	return func() tea.Msg {
		rows, err := s.Leaderboard(context.Background(), f)
		return rankedMsg{filter: f, rows: rows, err: err}
	}
}

func (l *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case rankedMsg:
		if msg.filter != l.Filter() {
			return l, nil
		}
		if msg.err != nil {
			l.errMsg = msg.err.Error()
			return l, nil
		}
		l.errMsg = ""
		l.rows = msg.rows
	case tea.KeyPressMsg:
		n := len(board.AllFilters())
		prev := l.filter
		switch key := msg.String(); key {
		case "left", "shift+tab":
			l.filter = (l.filter + n - 1) % n
		case "right", "tab":
			l.filter = (l.filter + 1) % n
		case "1", "2", "3":
			if i := int(key[0] - '1'); i < n {
				l.filter = i
			}
		}
		if l.filter != prev {
			l.rows = nil
			return l, l.rank()
		}
	}
	return l, nil
}

func (l *LeaderboardScreen) View(width, height int) string {
	var b strings.Builder

	for i, f := range board.AllFilters() {
		label := f.DisplayName()
		if f == board.FilterMajor {
			label = fmt.Sprintf("%s (%s)", label, l.session.UserMajor())
		}
		if i == l.filter {
			b.WriteString(theme.TabActive.Render(label))
		} else {
			b.WriteString(theme.TabInactive.Render(label))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	switch {
	case l.errMsg != "":
		b.WriteString(theme.Warning.Render(l.errMsg))
	case l.rows == nil:
		b.WriteString(theme.Hint.Render("Ranking..."))
	default:
		for _, r := range l.rows {
			b.WriteString(renderRow(r))
			b.WriteString("\n")
		}
		if pos, ok := board.Position(l.rows); ok {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Render(
				fmt.Sprintf("You are #%d · top %d%%", pos.Rank, pos.Percentile)))
		}
	}

	cw := min(width-4, 64)
	return layout.Centered(theme.Card.Width(cw).Render(strings.TrimRight(b.String(), "\n")), width, height)
}

func renderRow(r board.Row) string {
	line := fmt.Sprintf("%3d  %-14s Lv.%-3d %7d RP  %s", r.Rank, r.Name, r.Level, r.Rp, r.Major)
	switch {
	case r.CurrentUser:
		return theme.Selected.Render("▸" + line)
	case r.Rank <= 3:
		return lipgloss.NewStyle().Foreground(theme.Gold).Render(" " + line)
	}
	return theme.Unselected.Render(" " + line)
}
