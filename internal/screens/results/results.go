// Package results shows what a resolved quest earned.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dohyeon0608/ReadQuest/internal/progression"
	"github.com/dohyeon0608/ReadQuest/internal/quest"
	"github.com/dohyeon0608/ReadQuest/internal/router"
	"github.com/dohyeon0608/ReadQuest/internal/screen"
	"github.com/dohyeon0608/ReadQuest/internal/ui/components"
	"github.com/dohyeon0608/ReadQuest/internal/ui/layout"
	"github.com/dohyeon0608/ReadQuest/internal/ui/theme"
)

// ResultsScreen is the end of the quest loop.
type ResultsScreen struct {
	outcome progression.Outcome
	quest   quest.Quest
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

func New(outcome progression.Outcome, q quest.Quest) *ResultsScreen {
	return &ResultsScreen{outcome: outcome, quest: q}
}

func (r *ResultsScreen) Init() tea.Cmd {
	st := r.outcome.Stats
	return screen.Stats(st.Level, st.Rp, st.Streak)
}

func (r *ResultsScreen) Title() string { return "Quest Complete" }

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Back to quests"}}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "q":
			return r, router.PopToRoot()
		}
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	out := r.outcome
	res := out.Result
	st := out.Stats
	gold := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true)

	var b strings.Builder
	if out.LeveledUp {
		b.WriteString(gold.Render(fmt.Sprintf("✦ LEVEL UP! You reached level %d ✦", st.Level)))
		b.WriteString("\n")
		for _, t := range out.NewTitles {
			b.WriteString(theme.Badge.Render("NEW TITLE") + " " + gold.Render(t))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if res.Passed() {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("Quiz passed"))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Quiz not passed"))
	}
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("   %d / %d correct", res.CorrectAnswers, res.TotalQuestions)))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Render(fmt.Sprintf("+%d EXP", res.EarnedExp)))
	b.WriteString("    ")
	b.WriteString(gold.Render(fmt.Sprintf("+%d RP", res.EarnedRp)))
	if res.IsStreakBonus {
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("🔥 streak bonus +%d RP", res.BonusRp)))
	}
	b.WriteString("\n\n")

	if res.Passed() {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Read: %s", strings.Join(r.quest.Sections, ", "))))
	} else {
		b.WriteString(theme.Hint.Render("These sections stay in your plan. Try the quest again."))
	}
	b.WriteString("\n\n")

	cw := min(width-4, 64)
	frac := 0.0
	if st.ExpToNextLevel > 0 {
		frac = float64(st.Exp) / float64(st.ExpToNextLevel)
	}
	bar := components.NewProgressBar(fmt.Sprintf("Lv.%d", st.Level), frac, false, cw-20)
	bar.Fill = theme.Primary
	b.WriteString(bar.View())
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %d / %d", st.Exp, st.ExpToNextLevel)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("%d RP total · %d-day streak", st.Rp, st.Streak)))

	card := theme.Card
	if out.LeveledUp {
		card = theme.HighlightCard
	}
	return layout.Centered(card.Width(cw).Render(b.String()), width, height)
}
