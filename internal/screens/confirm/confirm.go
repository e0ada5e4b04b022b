// Package confirm shows the next quest batch before the focus timer starts.
package confirm

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dohyeon0608/ReadQuest/internal/game"
	"github.com/dohyeon0608/ReadQuest/internal/quest"
	"github.com/dohyeon0608/ReadQuest/internal/router"
	"github.com/dohyeon0608/ReadQuest/internal/screen"
	"github.com/dohyeon0608/ReadQuest/internal/screens/focus"
	"github.com/dohyeon0608/ReadQuest/internal/ui/layout"
	"github.com/dohyeon0608/ReadQuest/internal/ui/theme"
)

// ConfirmScreen asks the reader to accept a quest.
type ConfirmScreen struct {
	session *game.Session
	quest   quest.Quest
	errMsg  string
}

var _ screen.Screen = (*ConfirmScreen)(nil)
var _ screen.KeyHintProvider = (*ConfirmScreen)(nil)

func New(session *game.Session, q quest.Quest) *ConfirmScreen {
	return &ConfirmScreen{session: session, quest: q}
}

func (c *ConfirmScreen) Init() tea.Cmd { return nil }
func (c *ConfirmScreen) Title() string { return "Quest" }

func (c *ConfirmScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start focus"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ConfirmScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}
	switch kmsg.String() {
	case "enter", "y":
		lc := quest.Start(c.quest)
		if err := lc.Confirm(); err != nil {
			c.errMsg = err.Error()
			return c, nil
		}
		return c, router.Replace(focus.New(c.session, lc))
	case "n":
		return c, router.Pop()
	}
	return c, nil
}

func (c *ConfirmScreen) View(width, height int) string {
	q := c.quest
	var b strings.Builder

	b.WriteString(theme.Title.Render(q.BookTitle))
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.CategoryColor(q.Category)).Render(q.Category.DisplayName()))
	b.WriteString("\n\n")

	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Read %d section(s):", len(q.Sections))))
	b.WriteString("\n")
	for _, s := range q.Sections {
		b.WriteString(theme.Body.Render("  • " + s))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Body.Render(fmt.Sprintf("Focus goal   %d min", q.GoalMinutes)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Render(
		fmt.Sprintf("Reward       up to %d EXP / %d RP", q.PotentialExp, q.PotentialRp)))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Pass the quiz afterwards to claim the reward."))

	if c.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Warning.Render(c.errMsg))
	}

	cw := min(width-4, 64)
	return layout.Centered(theme.HighlightCard.Width(cw).Render(b.String()), width, height)
}
