package quiz

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dohyeon0608/ReadQuest/internal/llm"
)

// LLMGenerator implements Generator on top of an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMGenerator.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

type quizOutput struct {
	Questions []Question `json:"questions"`
}

func (g *LLMGenerator) Generate(ctx context.Context, input Input) ([]Question, error) {
	if len(input.Topics) == 0 {
		return nil, ErrNoTopics
	}
	if input.Count <= 0 {
		input.Count = QuestionCount(len(input.Topics))
	}

	ctx = llm.WithPurpose(ctx, purposeQuizGen)
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(input)}},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse quiz response: %w", err)
	}

	questions := out.Questions
	if len(questions) > input.Count {
		questions = questions[:input.Count]
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(questions, input); verr != nil {
			return nil, verr
		}
	}
	return questions, nil
}
