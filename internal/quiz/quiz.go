// Package quiz builds comprehension quizzes for the sections of a finished
// quest and grades the reader's answers.
package quiz

import (
	"context"
	"errors"

	"github.com/dohyeon0608/ReadQuest/internal/catalog"
	"github.com/dohyeon0608/ReadQuest/internal/reward"
)

const (
	MinQuestions   = 2
	MaxQuestions   = 5
	OptionsPerQuiz = 4

	purposeQuizGen   = "quiz-gen"
	defaultMaxTokens = 1024
)

// ErrNoTopics is returned when a quiz is requested without any sections.
var ErrNoTopics = errors.New("quiz: no topics to ask about")

// Question is one multiple-choice question.
type Question struct {
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// Input describes what the quiz should cover.
type Input struct {
	Topics   []string
	Category catalog.Category
	Count    int
}

// Generator produces the questions for a quiz. Failures are returned to the
// caller untouched apart from wrapping; the caller decides whether to skip.
type Generator interface {
	Generate(ctx context.Context, input Input) ([]Question, error)
}

// QuestionCount maps a section count to the number of questions asked.
func QuestionCount(sections int) int {
	return min(max(sections, MinQuestions), MaxQuestions)
}

// Grade counts exact matches between answers and correct answers. Missing
// answers and answers outside the options count as incorrect.
func Grade(questions []Question, answers []string) reward.Tally {
	t := reward.Tally{Total: len(questions)}
	for i, q := range questions {
		if i < len(answers) && answers[i] == q.CorrectAnswer {
			t.Correct++
		}
	}
	return t
}
