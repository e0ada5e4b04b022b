package llm

import "errors"

const openRouterURL = "https://openrouter.ai/api/v1"

// NewOpenRouterProvider returns a Provider for OpenRouter's OpenAI-compatible
// API. Model ids such as "google/gemini-2.0-flash-exp" are sent unchanged.
func NewOpenRouterProvider(cfg OpenRouterConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openrouter API key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openRouterURL
	}
	return newOpenAICompatible(ProviderOpenRouter, cfg.APIKey, baseURL, cfg.Model), nil
}
