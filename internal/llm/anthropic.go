package llm

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

var anthropicAliases = map[string]string{
	"claude-sonnet": "claude-sonnet-4-5",
	"claude-haiku":  "claude-haiku-4-5",
}

type anthropicEndpoint struct {
	sdk anthropic.Client
}

// NewAnthropicProvider returns a Provider backed by the Messages API.
func NewAnthropicProvider(cfg AnthropicConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("anthropic API key is required")
	}
	return newAnthropic(cfg.Model, option.WithAPIKey(cfg.APIKey)), nil
}

func newAnthropic(model string, opts ...option.RequestOption) *client {
	return &client{
		vendor: ProviderAnthropic,
		model:  resolveModel(model, anthropicAliases),
		ep:     anthropicEndpoint{sdk: anthropic.NewClient(opts...)},
	}
}

func (e anthropicEndpoint) complete(ctx context.Context, model string, req Request) (completion, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: int64(req.MaxTokens),
	}
	for _, m := range req.Messages {
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == RoleAssistant {
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(block))
		} else {
			params.Messages = append(params.Messages, anthropic.NewUserMessage(block))
		}
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}
	if req.Schema != nil {
		params.OutputConfig = anthropic.OutputConfigParam{
			Format: anthropic.JSONOutputFormatParam{Schema: req.Schema.Definition},
		}
	}

	msg, err := e.sdk.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return completion{}, fromStatus(apiErr.StatusCode, err)
		}
		return completion{}, &Error{Kind: KindUnavailable, Err: err}
	}

	for _, block := range msg.Content {
		if block.Type != "text" {
			continue
		}
		return completion{
			text:      block.Text,
			model:     string(msg.Model),
			truncated: msg.StopReason == anthropic.StopReasonMaxTokens,
			usage: Usage{
				InputTokens:  int(msg.Usage.InputTokens),
				OutputTokens: int(msg.Usage.OutputTokens),
			},
		}, nil
	}
	return completion{}, invalidOutput(nil, "anthropic answer has no text block")
}
