// Package quiz is the comprehension quiz screen that resolves a quest.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/dohyeon0608/ReadQuest/internal/game"
	"github.com/dohyeon0608/ReadQuest/internal/progression"
	"github.com/dohyeon0608/ReadQuest/internal/quest"
	quizgen "github.com/dohyeon0608/ReadQuest/internal/quiz"
	"github.com/dohyeon0608/ReadQuest/internal/reward"
	"github.com/dohyeon0608/ReadQuest/internal/router"
	"github.com/dohyeon0608/ReadQuest/internal/screen"
	"github.com/dohyeon0608/ReadQuest/internal/screens/results"
	"github.com/dohyeon0608/ReadQuest/internal/ui/components"
	"github.com/dohyeon0608/ReadQuest/internal/ui/layout"
	"github.com/dohyeon0608/ReadQuest/internal/ui/theme"
)

type state int

const (
	stateLoading state = iota
	stateFailed
	stateAnswering
	stateResolving
)

type questionsMsg struct {
	questions []quizgen.Question
	err       error
}

type resolvedMsg struct {
	outcome progression.Outcome
	err     error
}

// QuizScreen generates the quiz, collects answers and commits the quest.
type QuizScreen struct {
	session   *game.Session
	lc        *quest.Lifecycle
	state     state
	questions []quizgen.Question
	answers   []string
	current   int
	choice    components.MultiChoice
	recovery  components.Menu
	err       error
	errMsg    string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen for a lifecycle waiting on its quiz.
func New(session *game.Session, lc *quest.Lifecycle) *QuizScreen {
	return &QuizScreen{session: session, lc: lc}
}

func (s *QuizScreen) Init() tea.Cmd { return s.generate() }
func (s *QuizScreen) Title() string { return "Quiz" }

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.state {
	case stateFailed:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Select"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "R", Description: "Retry"},
			{Key: "S", Description: "Skip"},
		}
	case stateAnswering:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "A-D", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
		}
	}
	return nil
}

func (s *QuizScreen) generate() tea.Cmd {
	s.state = stateLoading
	s.err = nil
	s.errMsg = ""
	session, q := s.session, s.lc.Quest
	return func() tea.Msg {
		questions, err := session.GenerateQuiz(context.Background(), q)
		return questionsMsg{questions: questions, err: err}
	}
}

func (s *QuizScreen) resolve(tally reward.Tally) tea.Cmd {
	if err := s.lc.Resolve(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.state = stateResolving
	session, q := s.session, s.lc.Quest
	return func() tea.Msg {
		out, err := session.Resolve(context.Background(), q, tally)
		return resolvedMsg{outcome: out, err: err}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsMsg:
		if msg.err == nil && len(msg.questions) == 0 {
			msg.err = errors.New("the quiz came back empty")
		}
		if msg.err != nil {
			s.state = stateFailed
			s.err = msg.err
			s.errMsg = msg.err.Error()
			s.recovery = components.NewMenu([]components.MenuItem{
				{Label: "Try again", Action: s.generate, Disabled: errors.Is(msg.err, game.ErrQuizUnavailable)},
				{Label: "Skip (no reward)", Action: func() tea.Cmd { return s.resolve(reward.Tally{}) }},
			})
			return s, nil
		}
		s.questions = msg.questions
		s.answers = make([]string, 0, len(msg.questions))
		s.current = 0
		s.state = stateAnswering
		s.choice = components.NewMultiChoice(s.questions[0].Text, s.questions[0].Options)
		return s, nil

	case resolvedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, router.Replace(results.New(msg.outcome, s.lc.Quest))

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch s.state {
	case stateFailed:
		switch msg.String() {
		case "r":
			if errors.Is(s.err, game.ErrQuizUnavailable) {
				return s, nil
			}
			return s, s.generate()
		case "s":
			return s, s.resolve(reward.Tally{})
		}
		var cmd tea.Cmd
		s.recovery, cmd = s.recovery.Update(msg)
		return s, cmd

	case stateAnswering:
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		answer, ok := s.choice.Chosen()
		if !ok {
			return s, cmd
		}
		s.answers = append(s.answers, answer)
		s.current++
		if s.current >= len(s.questions) {
			return s, s.resolve(quizgen.Grade(s.questions, s.answers))
		}
		next := s.questions[s.current]
		s.choice = components.NewMultiChoice(next.Text, next.Options)
		return s, cmd
	}
	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	cw := min(width-4, 72)
	var body string

	switch s.state {
	case stateLoading:
		body = theme.Hint.Render(fmt.Sprintf("Writing questions about %s...", strings.Join(s.lc.Quest.Sections, ", ")))

	case stateFailed:
		var b strings.Builder
		b.WriteString(theme.Warning.Render("The quiz could not be prepared."))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(s.errMsg))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("Skipping resolves the quest with no reward."))
		b.WriteString("\n\n")
		b.WriteString(s.recovery.View())
		body = b.String()

	case stateAnswering:
		var b strings.Builder
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", s.current+1, len(s.questions))))
		b.WriteString("\n\n")
		b.WriteString(s.choice.View())
		body = b.String()

	case stateResolving:
		body = theme.Hint.Render("Tallying your reward...")
		if s.errMsg != "" {
			body = theme.Warning.Render("Could not save the result:\n" + s.errMsg)
		}
	}
	return layout.Centered(theme.Card.Width(cw).Render(body), width, height)
}
