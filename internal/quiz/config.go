package quiz

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators run in order on every generated quiz. The first failure
	// stops the pipeline.
	Validators []Validator

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerInOptionsValidator{},
		},
		MaxTokens:   defaultMaxTokens,
		Temperature: 0.7,
	}
}
