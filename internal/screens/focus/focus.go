// Package focus is the countdown screen shown while the reader reads.
package focus

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	countdown "github.com/dohyeon0608/ReadQuest/internal/focus"
	"github.com/dohyeon0608/ReadQuest/internal/game"
	"github.com/dohyeon0608/ReadQuest/internal/quest"
	"github.com/dohyeon0608/ReadQuest/internal/router"
	"github.com/dohyeon0608/ReadQuest/internal/screen"
	quizscreen "github.com/dohyeon0608/ReadQuest/internal/screens/quiz"
	"github.com/dohyeon0608/ReadQuest/internal/ui/components"
	"github.com/dohyeon0608/ReadQuest/internal/ui/layout"
	"github.com/dohyeon0608/ReadQuest/internal/ui/theme"
)

// tickMsg carries the generation it was scheduled under. Pausing or
// finishing bumps the generation so in-flight ticks are dropped.
type tickMsg struct{ gen int }

// FocusScreen runs the focus countdown for a confirmed quest.
type FocusScreen struct {
	session  *game.Session
	lc       *quest.Lifecycle
	cd       countdown.Countdown
	gen      int
	paused   bool
	finished bool
	errMsg   string
}

var _ screen.Screen = (*FocusScreen)(nil)
var _ screen.KeyHintProvider = (*FocusScreen)(nil)

// New creates the focus screen for a lifecycle in the focus phase.
func New(session *game.Session, lc *quest.Lifecycle) *FocusScreen {
	return &FocusScreen{
		session: session,
		lc:      lc,
		cd:      countdown.NewCountdown(lc.Quest.GoalMinutes),
	}
}

func (f *FocusScreen) Init() tea.Cmd {
	if f.cd.Done() {
		return f.finish()
	}
	return f.tick()
}

func (f *FocusScreen) Title() string { return "Focus" }

func (f *FocusScreen) KeyHints() []layout.KeyHint {
	pause := "Pause"
	if f.paused {
		pause = "Resume"
	}
	return []layout.KeyHint{
		{Key: "P", Description: pause},
		{Key: "E", Description: "End early"},
		{Key: "Esc", Description: "Abandon"},
	}
}

// Countdown returns the current timer state.
func (f *FocusScreen) Countdown() countdown.Countdown { return f.cd }

func (f *FocusScreen) tick() tea.Cmd {
	gen := f.gen
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (f *FocusScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.gen != f.gen || f.paused || f.finished {
			return f, nil
		}
		f.cd = f.cd.Tick()
		if f.cd.Done() {
			return f, f.finish()
		}
		return f, f.tick()

	case tea.KeyPressMsg:
		if f.finished {
			return f, nil
		}
		switch msg.String() {
		case "e":
			f.cd = f.cd.End()
			return f, f.finish()
		case "p", "space":
			f.paused = !f.paused
			f.gen++
			if !f.paused {
				return f, f.tick()
			}
		}
	}
	return f, nil
}

func (f *FocusScreen) finish() tea.Cmd {
	f.finished = true
	f.gen++
	if err := f.lc.FinishFocus(); err != nil {
		f.errMsg = err.Error()
		return nil
	}
	return router.Replace(quizscreen.New(f.session, f.lc))
}

func (f *FocusScreen) View(width, height int) string {
	q := f.lc.Quest
	var b strings.Builder

	b.WriteString(theme.Subtitle.Render(q.BookTitle))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(strings.Join(q.Sections, " · ")))
	b.WriteString("\n\n")

	clock := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(f.cd.Format())
	if f.paused {
		clock += "  " + theme.Badge.Render("PAUSED")
	}
	b.WriteString(clock)
	b.WriteString("\n\n")

	cw := min(width-4, 56)
	bar := components.NewProgressBar("", f.cd.Fraction(), true, cw-8)
	bar.Fill = theme.CategoryColor(q.Category)
	b.WriteString(bar.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("Goal: %d min. The quiz follows when the timer ends.", q.GoalMinutes)))

	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Warning.Render(f.errMsg))
	}
	return layout.Centered(theme.Card.Width(cw).Render(b.String()), width, height)
}
