package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dohyeon0608/ReadQuest/internal/catalog"
	"github.com/dohyeon0608/ReadQuest/internal/llm"
	"github.com/dohyeon0608/ReadQuest/internal/reward"
)

func fictionInput() Input {
	return Input{
		Topics:   []string{"Chapter 1", "Chapter 2"},
		Category: catalog.CategoryFiction,
		Count:    2,
	}
}

func validQuizJSON() json.RawMessage {
	return json.RawMessage(`{"questions":[
		{"question":"Who tells the story?","options":["Mina","Joon","Seo","Ara"],"correct_answer":"Mina"},
		{"question":"Where does Chapter 2 open?","options":["A train","A school","A harbor","A library"],"correct_answer":"A harbor"}
	]}`)
}

func TestQuestionCount(t *testing.T) {
	cases := map[int]int{0: 2, 1: 2, 2: 2, 3: 3, 5: 5, 6: 5, 40: 5}
	for sections, want := range cases {
		assert.Equal(t, want, QuestionCount(sections), "sections=%d", sections)
	}
}

func TestGrade(t *testing.T) {
	qs := []Question{
		{Text: "a", Options: []string{"x", "y"}, CorrectAnswer: "x"},
		{Text: "b", Options: []string{"x", "y"}, CorrectAnswer: "y"},
		{Text: "c", Options: []string{"x", "y"}, CorrectAnswer: "x"},
	}

	tests := []struct {
		name    string
		answers []string
		want    reward.Tally
	}{
		{"all correct", []string{"x", "y", "x"}, reward.Tally{Correct: 3, Total: 3}},
		{"one wrong", []string{"x", "x", "x"}, reward.Tally{Correct: 2, Total: 3}},
		{"answer not an option", []string{"z", "y", "X"}, reward.Tally{Correct: 1, Total: 3}},
		{"missing answers", []string{"x"}, reward.Tally{Correct: 1, Total: 3}},
		{"no answers", nil, reward.Tally{Correct: 0, Total: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Grade(qs, tt.answers))
		})
	}

	assert.Equal(t, reward.Tally{}, Grade(nil, nil))
}

func TestGenerate_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	gen := New(mock, DefaultConfig())

	qs, err := gen.Generate(context.Background(), fictionInput())
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "Who tells the story?", qs[0].Text)
	assert.Equal(t, "A harbor", qs[1].CorrectAnswer)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, QuizSchema, req.Schema)
	assert.Equal(t, systemPrompt, req.System)
	msg := req.Messages[0].Content
	assert.Contains(t, msg, "Write 2 multiple-choice questions with 4 options each.")
	assert.Contains(t, msg, "- Chapter 1\n- Chapter 2")
	assert.Contains(t, msg, "plot")
}

func TestGenerate_NoTopics(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), Input{Category: catalog.CategoryAcademic})
	assert.ErrorIs(t, err, ErrNoTopics)
	assert.Equal(t, 0, mock.CallCount())
}

func TestGenerate_DefaultsCountFromTopics(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	gen := New(mock, DefaultConfig())

	in := fictionInput()
	in.Count = 0
	in.Topics = []string{"1.1"}
	_, err := gen.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Write 2 multiple-choice")
}

func TestGenerate_TruncatesExtraQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	gen := New(mock, DefaultConfig())

	in := fictionInput()
	in.Count = 1
	qs, err := gen.Generate(context.Background(), in)
	require.NoError(t, err)
	assert.Len(t, qs, 1)
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.Error{Kind: llm.KindRateLimited, Err: errors.New("slow down")}})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), fictionInput())
	require.Error(t, err)
	kind, ok := llm.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, llm.KindRateLimited, kind)
}

func TestGenerate_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), fictionInput())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "parse quiz response"))
}

func TestGenerate_AnswerNotInOptions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions":[
		{"question":"Q","options":["a","b","c","d"],"correct_answer":"e"}
	]}`)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), fictionInput())
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "answer-in-options", verr.Validator)
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	ok := Question{Text: "Q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a"}

	tests := []struct {
		name      string
		questions []Question
		wantErr   bool
	}{
		{"valid", []Question{ok}, false},
		{"empty quiz", nil, true},
		{"blank text", []Question{{Text: "  ", Options: ok.Options, CorrectAnswer: "a"}}, true},
		{"three options", []Question{{Text: "Q", Options: []string{"a", "b", "c"}, CorrectAnswer: "a"}}, true},
		{"empty option", []Question{{Text: "Q", Options: []string{"a", "", "c", "d"}, CorrectAnswer: "a"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.questions, Input{})
			if tt.wantErr {
				require.NotNil(t, err)
				assert.Equal(t, "structural", err.Validator)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestCategoryFocus(t *testing.T) {
	assert.Contains(t, categoryFocus(catalog.CategoryAcademic), "definitions")
	assert.Contains(t, categoryFocus(catalog.CategoryTechnical), "methodology")
	assert.Contains(t, categoryFocus(catalog.CategoryFiction), "plot")
}
