package quiz

import (
	"fmt"
	"slices"
	"strings"
)

// Validator checks a generated quiz before it reaches the reader.
type Validator interface {
	Name() string
	Validate(questions []Question, input Input) *ValidationError
}

// ValidationError describes why a generated quiz was rejected.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator rejects empty quizzes and questions with missing text
// or the wrong number of options.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(questions []Question, _ Input) *ValidationError {
	if len(questions) == 0 {
		return v.fail("no questions returned")
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Text) == "" {
			return v.fail(fmt.Sprintf("question %d has no text", i+1))
		}
		if len(q.Options) != OptionsPerQuiz {
			return v.fail(fmt.Sprintf("question %d has %d options, want %d", i+1, len(q.Options), OptionsPerQuiz))
		}
		for _, o := range q.Options {
			if strings.TrimSpace(o) == "" {
				return v.fail(fmt.Sprintf("question %d has an empty option", i+1))
			}
		}
	}
	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg}
}

// AnswerInOptionsValidator requires the correct answer to be one of the
// options, verbatim. Otherwise nobody could ever score that question.
type AnswerInOptionsValidator struct{}

func (v *AnswerInOptionsValidator) Name() string { return "answer-in-options" }

func (v *AnswerInOptionsValidator) Validate(questions []Question, _ Input) *ValidationError {
	for i, q := range questions {
		if !slices.Contains(q.Options, q.CorrectAnswer) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d: correct answer %q is not among the options", i+1, q.CorrectAnswer),
			}
		}
	}
	return nil
}
