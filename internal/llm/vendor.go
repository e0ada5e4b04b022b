package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// completion is a vendor answer before any schema checks.
type completion struct {
	text      string
	usage     Usage
	model     string
	truncated bool
}

// endpoint adapts one vendor SDK.
type endpoint interface {
	complete(ctx context.Context, model string, req Request) (completion, error)
}

// client is the Provider behind every vendor constructor. Vendor code only
// translates requests and errors; the checks shared by all vendors live here.
type client struct {
	vendor string
	model  string
	ep     endpoint
}

func (c *client) ModelID() string { return c.model }

func (c *client) Generate(ctx context.Context, req Request) (*Response, error) {
	out, err := c.ep.complete(ctx, c.model, req)
	if err != nil {
		return nil, err
	}

	content := json.RawMessage(out.text)
	if out.truncated && req.Schema != nil {
		return nil, &Error{
			Kind:    KindTruncated,
			Content: content,
			Err:     fmt.Errorf("%s stopped at %d output tokens", c.vendor, req.MaxTokens),
		}
	}
	if err := req.Schema.Check(content); err != nil {
		return nil, err
	}

	model := out.model
	if model == "" {
		model = c.model
	}
	return &Response{Content: content, Usage: out.usage, Model: model, Truncated: out.truncated}, nil
}

// resolveModel expands a short alias. Anything not in aliases is taken to
// be a vendor model id already.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
