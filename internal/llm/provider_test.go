package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider(t *testing.T) {
	boom := errors.New("boom")
	m := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`), Usage: Usage{InputTokens: 3, OutputTokens: 4}},
		MockResponse{Err: boom},
	)
	m.AddResponse(MockResponse{Content: json.RawMessage(`{"n":2}`)})

	ctx := context.Background()
	resp, err := m.Generate(ctx, Request{System: "first"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":1}`, string(resp.Content))
	assert.Equal(t, 7, resp.Usage.Total())
	assert.Equal(t, ProviderMock, resp.Model)

	_, err = m.Generate(ctx, Request{System: "second"})
	assert.ErrorIs(t, err, boom)

	resp, err = m.Generate(ctx, Request{System: "third"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":2}`, string(resp.Content))

	_, err = m.Generate(ctx, Request{System: "fourth"})
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindUnavailable, kind)

	require.Equal(t, 4, m.CallCount())
	assert.Equal(t, "third", m.Calls[2].System)
	assert.Equal(t, ProviderMock, m.ModelID())
}

func TestPurpose(t *testing.T) {
	assert.Equal(t, "unknown", purposeOf(context.Background()))
	assert.Equal(t, "quiz-gen", purposeOf(WithPurpose(context.Background(), "quiz-gen")))
}

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		want  Price
		ok    bool
	}{
		{"gpt-4o-mini", Price{0.15, 0.6}, true},
		{"gpt-4o-mini-2024-07-18", Price{0.15, 0.6}, true},
		{"gpt-4o-2024-11-20", Price{2.5, 10}, true},
		{"claude-haiku-4-5-20251001", Price{1, 5}, true},
		{"google/gemini-2.0-flash-exp", Price{0.1, 0.4}, true},
		{"gemini-2.5-flash-lite", Price{0.1, 0.4}, true},
		{"mock", Price{}, false},
	}
	for _, tt := range tests {
		got, ok := LookupCost(tt.model)
		assert.Equal(t, tt.ok, ok, tt.model)
		assert.Equal(t, tt.want, got, tt.model)
	}

	assert.InDelta(t, 0.75, Price{Input: 0.5, Output: 1}.Cost(500_000, 500_000), 1e-9)
}
