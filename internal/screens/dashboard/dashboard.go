// Package dashboard is the root screen: reader profile and active plans.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dohyeon0608/ReadQuest/internal/game"
	"github.com/dohyeon0608/ReadQuest/internal/progression"
	"github.com/dohyeon0608/ReadQuest/internal/router"
	"github.com/dohyeon0608/ReadQuest/internal/screen"
	"github.com/dohyeon0608/ReadQuest/internal/screens/confirm"
	"github.com/dohyeon0608/ReadQuest/internal/screens/journal"
	"github.com/dohyeon0608/ReadQuest/internal/screens/leaderboard"
	"github.com/dohyeon0608/ReadQuest/internal/screens/plancreator"
	"github.com/dohyeon0608/ReadQuest/internal/ui/components"
	"github.com/dohyeon0608/ReadQuest/internal/ui/layout"
	"github.com/dohyeon0608/ReadQuest/internal/ui/theme"
)

type loadedMsg struct {
	stats progression.UserStats
	plans []game.ActivePlan
	err   error
}

type removedMsg struct{ err error }

// DashboardScreen shows the reader's level, RP and streak above the list of
// active reading plans.
type DashboardScreen struct {
	session  *game.Session
	stats    progression.UserStats
	plans    []game.ActivePlan
	selected int
	loaded   bool
	notice   string
	errMsg   string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)
var _ screen.Resumer = (*DashboardScreen)(nil)

// New creates the dashboard.
func New(session *game.Session) *DashboardScreen {
	return &DashboardScreen{session: session, stats: progression.NewUserStats()}
}

func (d *DashboardScreen) Init() tea.Cmd   { return d.load() }
func (d *DashboardScreen) Resume() tea.Cmd { return d.load() }
func (d *DashboardScreen) Title() string   { return "Quest Board" }

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Start quest"},
		{Key: "N", Description: "New plan"},
		{Key: "E", Description: "Edit"},
		{Key: "X", Description: "Remove"},
		{Key: "J", Description: "Journal"},
		{Key: "L", Description: "Ranking"},
		{Key: "Q", Description: "Quit"},
	}
}

func (d *DashboardScreen) load() tea.Cmd {
	s := d.session
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := s.Stats(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		plans, err := s.ActivePlans(ctx)
		return loadedMsg{stats: stats, plans: plans, err: err}
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		d.loaded = true
		if msg.err != nil {
			d.errMsg = msg.err.Error()
			return d, nil
		}
		d.errMsg = ""
		d.stats = msg.stats
		d.plans = msg.plans
		d.selected = min(d.selected, max(len(d.plans)-1, 0))
		return d, screen.Stats(d.stats.Level, d.stats.Rp, d.stats.Streak)

	case removedMsg:
		if msg.err != nil {
			d.notice = msg.err.Error()
			return d, nil
		}
		return d, d.load()

	case tea.KeyPressMsg:
		return d.handleKey(msg)
	}
	return d, nil
}

func (d *DashboardScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	d.notice = ""
	switch msg.String() {
	case "up":
		if d.selected > 0 {
			d.selected--
		}
	case "down":
		if d.selected < len(d.plans)-1 {
			d.selected++
		}
	case "enter":
		ap, ok := d.current()
		if !ok {
			return d, router.Push(plancreator.New(d.session, "", nil))
		}
		if ap.Next == nil {
			d.notice = fmt.Sprintf("%s is complete. Set a new range to keep reading.", ap.Book.Title)
			return d, nil
		}
		return d, router.Push(confirm.New(d.session, *ap.Next))
	case "n":
		return d, router.Push(plancreator.New(d.session, "", nil))
	case "e":
		if ap, ok := d.current(); ok {
			p := ap.Plan
			return d, router.Push(plancreator.New(d.session, ap.Book.Title, &p))
		}
	case "x":
		if ap, ok := d.current(); ok {
			s, title := d.session, ap.Book.Title
			return d, func() tea.Msg {
				return removedMsg{err: s.RemovePlan(context.Background(), title)}
			}
		}
	case "j":
		return d, router.Push(journal.New(d.session))
	case "l":
		return d, router.Push(leaderboard.New(d.session))
	case "q":
		return d, tea.Quit
	}
	return d, nil
}

func (d *DashboardScreen) current() (game.ActivePlan, bool) {
	if d.selected < 0 || d.selected >= len(d.plans) {
		return game.ActivePlan{}, false
	}
	return d.plans[d.selected], true
}

func (d *DashboardScreen) View(width, height int) string {
	if d.errMsg != "" {
		return layout.Centered(theme.Warning.Render("Could not load your progress:\n"+d.errMsg), width, height)
	}
	if !d.loaded {
		return layout.Centered(theme.Hint.Render("Opening your library..."), width, height)
	}

	cw := min(width-4, 76)
	sections := []string{d.renderProfile(cw), d.renderPlans(cw)}
	if d.notice != "" {
		sections = append(sections, theme.Hint.Render(d.notice))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(sections, "\n"))
}

func (d *DashboardScreen) renderProfile(cw int) string {
	st := d.stats
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render(st.CurrentTitle()))
	b.WriteString("  ")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Level %d", st.Level)))
	b.WriteString("\n\n")

	frac := 0.0
	if st.ExpToNextLevel > 0 {
		frac = float64(st.Exp) / float64(st.ExpToNextLevel)
	}
	bar := components.NewProgressBar("EXP", frac, false, cw-24)
	bar.Fill = theme.Primary
	b.WriteString(bar.View())
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("  %d / %d", st.Exp, st.ExpToNextLevel)))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Gold).Render(fmt.Sprintf("★ %d RP", st.Rp)))
	b.WriteString("    ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("🔥 %d-day streak", st.Streak)))
	if next, lv, ok := progression.NextTitle(st.Level); ok {
		b.WriteString("    ")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("next title at Lv.%d: %s", lv, next)))
	}

	return theme.HighlightCard.Width(cw).Render(b.String())
}

func (d *DashboardScreen) renderPlans(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Active Quests"))
	b.WriteString("\n\n")

	if len(d.plans) == 0 {
		b.WriteString(theme.Hint.Render("No reading plans yet. Press N to plan your first book."))
		return theme.Card.Width(cw).Render(b.String())
	}

	for i, ap := range d.plans {
		marker := "  "
		titleStyle := theme.Unselected
		if i == d.selected {
			marker = "▸ "
			titleStyle = theme.Selected
		}
		line := marker + titleStyle.Render(ap.Book.Title) + "  " +
			lipgloss.NewStyle().Foreground(theme.CategoryColor(ap.Book.Category)).Render(ap.Book.Category.DisplayName())
		if ap.Progress.Done {
			line += "  " + theme.Badge.Render("COMPLETE")
		}
		b.WriteString(line)
		b.WriteString("\n")

		bar := components.NewProgressBar("", ap.Progress.Percent/100, true, cw-12)
		if ap.Progress.Done {
			bar.Fill = theme.Success
		}
		b.WriteString("  " + bar.View())
		b.WriteString("\n")

		if ap.Next != nil {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  next: %s  (%d min)", sectionRange(ap.Next.Sections), ap.Next.GoalMinutes)))
		} else {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d/%d sections read", ap.Progress.Completed, ap.Progress.Total)))
		}
		b.WriteString("\n\n")
	}
	return theme.Card.Width(cw).Render(strings.TrimRight(b.String(), "\n"))
}

func sectionRange(sections []string) string {
	switch len(sections) {
	case 0:
		return ""
	case 1:
		return sections[0]
	default:
		return sections[0] + " → " + sections[len(sections)-1]
	}
}
