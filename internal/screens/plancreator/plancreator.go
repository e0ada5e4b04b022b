// Package plancreator is the form for choosing a book, pace and section
// range.
package plancreator

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dohyeon0608/ReadQuest/internal/catalog"
	"github.com/dohyeon0608/ReadQuest/internal/game"
	"github.com/dohyeon0608/ReadQuest/internal/plan"
	"github.com/dohyeon0608/ReadQuest/internal/router"
	"github.com/dohyeon0608/ReadQuest/internal/screen"
	"github.com/dohyeon0608/ReadQuest/internal/ui/components"
	"github.com/dohyeon0608/ReadQuest/internal/ui/layout"
	"github.com/dohyeon0608/ReadQuest/internal/ui/theme"
)

type field int

const (
	fieldBook field = iota
	fieldPace
	fieldCustom
	fieldStart
	fieldEnd
	fieldMinutes
	fieldCount
)

var fieldLabels = [fieldCount]string{"Book", "Pace", "Sections / quest", "Start", "End", "Minutes / section"}

type savedMsg struct{ err error }

// PlanCreatorScreen edits one reading plan and previews its quests.
type PlanCreatorScreen struct {
	session *game.Session
	books   []catalog.Book
	paces   []plan.Pace

	focus   field
	book    int
	pace    int
	start   int
	end     int
	custom  components.TextInput
	minutes components.TextInput
	editing bool
	errMsg  string
	saving  bool
}

var _ screen.Screen = (*PlanCreatorScreen)(nil)
var _ screen.KeyHintProvider = (*PlanCreatorScreen)(nil)

// New opens the form. When existing is set the form starts from that plan
// for bookTitle; otherwise it starts on bookTitle (or the first book) with
// the normal pace over the whole book.
func New(session *game.Session, bookTitle string, existing *plan.ReadingPlan) *PlanCreatorScreen {
	p := &PlanCreatorScreen{
		session: session,
		books:   session.Catalog().Books(),
		paces:   plan.AllPaces(),
		pace:    slices.Index(plan.AllPaces(), plan.PaceNormal),
		custom:  components.NewTextInput("3", "3", true, 3),
		minutes: components.NewTextInput("5", strconv.Itoa(plan.DefaultMinutesPerSection), true, 3),
	}
	p.custom.Blur()
	p.minutes.Blur()

	if i := slices.IndexFunc(p.books, func(b catalog.Book) bool { return b.Title == bookTitle }); i >= 0 {
		p.book = i
	}
	p.resetRange()

	if existing != nil {
		p.editing = true
		if i := slices.Index(p.paces, existing.Pace); i >= 0 {
			p.pace = i
		}
		if existing.Pace == plan.PaceCustom {
			p.custom.Model.SetValue(strconv.Itoa(existing.SectionsPerQuest))
		}
		p.minutes.Model.SetValue(strconv.Itoa(existing.MinutesPerSection))
		sections := p.currentBook().Sections()
		if i := slices.Index(sections, existing.StartSection); i >= 0 {
			p.start = i
		}
		if i := slices.Index(sections, existing.EndSection); i >= 0 {
			p.end = i
		}
	}
	return p
}

func (p *PlanCreatorScreen) Init() tea.Cmd { return nil }

func (p *PlanCreatorScreen) Title() string {
	if p.editing {
		return "Edit Plan"
	}
	return "New Plan"
}

func (p *PlanCreatorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (p *PlanCreatorScreen) currentBook() catalog.Book {
	if len(p.books) == 0 {
		return catalog.Book{}
	}
	return p.books[p.book]
}

func (p *PlanCreatorScreen) resetRange() {
	p.start = 0
	p.end = max(p.currentBook().SectionCount()-1, 0)
}

// Plan builds the plan the form currently describes.
func (p *PlanCreatorScreen) Plan() plan.ReadingPlan {
	book := p.currentBook()
	sections := book.Sections()
	var start, end string
	if p.start < len(sections) {
		start = sections[p.start]
	}
	if p.end < len(sections) {
		end = sections[p.end]
	}
	return plan.New(book, p.paces[p.pace], p.custom.NumericValue(1), start, end,
		p.minutes.NumericValue(plan.DefaultMinutesPerSection))
}

func (p *PlanCreatorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		p.saving = false
		if msg.err != nil {
			p.errMsg = msg.err.Error()
			return p, nil
		}
		return p, router.Pop()

	case tea.KeyPressMsg:
		return p.handleKey(msg)
	}
	return p, p.forwardToInput(msg)
}

func (p *PlanCreatorScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if p.saving {
		return p, nil
	}
	p.errMsg = ""

	switch msg.String() {
	case "up", "shift+tab":
		return p, p.moveFocus(-1)
	case "down", "tab":
		return p, p.moveFocus(1)
	case "left":
		p.adjust(-1)
		return p, nil
	case "right":
		p.adjust(1)
		return p, nil
	case "enter":
		return p, p.save()
	}
	return p, p.forwardToInput(msg)
}

func (p *PlanCreatorScreen) forwardToInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch p.focus {
	case fieldCustom:
		p.custom, cmd = p.custom.Update(msg)
	case fieldMinutes:
		p.minutes, cmd = p.minutes.Update(msg)
	}
	return cmd
}

func (p *PlanCreatorScreen) moveFocus(delta int) tea.Cmd {
	p.custom.Blur()
	p.minutes.Blur()

	next := p.focus
	for {
		next = (next + field(delta) + fieldCount) % fieldCount
		// the custom size only matters for the custom pace
		if next != fieldCustom || p.paces[p.pace] == plan.PaceCustom {
			break
		}
	}
	p.focus = next

	switch p.focus {
	case fieldCustom:
		return p.custom.Focus()
	case fieldMinutes:
		return p.minutes.Focus()
	}
	return nil
}

func (p *PlanCreatorScreen) adjust(delta int) {
	count := p.currentBook().SectionCount()
	switch p.focus {
	case fieldBook:
		if len(p.books) > 0 {
			p.book = (p.book + delta + len(p.books)) % len(p.books)
			p.resetRange()
		}
	case fieldPace:
		p.pace = (p.pace + delta + len(p.paces)) % len(p.paces)
	case fieldStart:
		p.start = clamp(p.start+delta, 0, count-1)
	case fieldEnd:
		p.end = clamp(p.end+delta, 0, count-1)
	}
}

func (p *PlanCreatorScreen) save() tea.Cmd {
	book := p.currentBook()
	rp := p.Plan()
	if !rp.Valid(book) {
		p.errMsg = "The start section must not come after the end section."
		return nil
	}
	p.saving = true
	s := p.session
	return func() tea.Msg {
		return savedMsg{err: s.SavePlan(context.Background(), book.Title, rp)}
	}
}

func (p *PlanCreatorScreen) View(width, height int) string {
	book := p.currentBook()
	sections := book.Sections()

	values := [fieldCount]string{
		fieldBook:    fmt.Sprintf("◂ %s ▸", book.Title),
		fieldPace:    fmt.Sprintf("◂ %s ▸", paceLabel(p.paces[p.pace])),
		fieldCustom:  p.custom.View(),
		fieldStart:   fmt.Sprintf("◂ %s ▸", at(sections, p.start)),
		fieldEnd:     fmt.Sprintf("◂ %s ▸", at(sections, p.end)),
		fieldMinutes: p.minutes.View(),
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Reading Plan"))
	b.WriteString("  ")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.CategoryColor(book.Category)).Render(book.Category.DisplayName()))
	b.WriteString("\n\n")

	for f := field(0); f < fieldCount; f++ {
		if f == fieldCustom && p.paces[p.pace] != plan.PaceCustom {
			continue
		}
		label := fmt.Sprintf("%-18s", fieldLabels[f])
		if f == p.focus {
			b.WriteString(theme.Selected.Render("▸ " + label))
		} else {
			b.WriteString(theme.Subtitle.Render("  " + label))
		}
		b.WriteString(theme.Body.Render(values[f]))
		b.WriteString("\n")
	}

	if chapter, ok := book.ChapterOf(at(sections, p.start)); ok {
		b.WriteString(theme.Hint.Render("  starts in " + chapter))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderSummary(plan.Summarize(book, p.Plan())))

	if p.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Warning.Render(p.errMsg))
	}

	cw := min(width-4, 72)
	return layout.Centered(theme.Card.Width(cw).Render(b.String()), width, height)
}

func renderSummary(s plan.Summary) string {
	if s.SectionCount == 0 {
		return theme.Warning.Render("This range has no sections.")
	}
	return theme.Subtitle.Render(fmt.Sprintf(
		"%d sections · %d per quest · about %d quests\nReward per quest: up to %d EXP / %d RP",
		s.SectionCount, s.SectionsPerQuest, s.EstimatedQuestCount,
		s.RewardPerQuest.Exp, s.RewardPerQuest.Rp))
}

func paceLabel(p plan.Pace) string {
	if p == plan.PaceCustom {
		return p.DisplayName()
	}
	return fmt.Sprintf("%s (%d sections)", p.DisplayName(), plan.SectionsPerQuest(p, 0))
}

func at(sections []string, i int) string {
	if i < 0 || i >= len(sections) {
		return ""
	}
	return sections[i]
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
