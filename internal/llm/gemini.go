package llm

import (
	"context"
	"math"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadrank/internal/cost"
	"github.com/sells-group/leadrank/pkg/gemini"
)

type geminiBackend struct {
	client    gemini.Client
	model     string
	maxTokens int32
}

// NewGemini adapts a Gemini client to Client.
func NewGemini(client gemini.Client, model string, maxTokens int32) Client {
	return &geminiBackend{client: client, model: model, maxTokens: maxTokens}
}

func (b *geminiBackend) Complete(ctx context.Context, req Request) (*Completion, error) {
	maxTokens := b.maxTokens
	if req.MaxTokens > 0 {
		maxTokens = int32(min(req.MaxTokens, math.MaxInt32))
	}

	resp, err := b.client.Generate(ctx, gemini.GenerateRequest{
		Model:           b.model,
		Prompt:          req.Prompt,
		Temperature:     req.Temperature,
		MaxOutputTokens: maxTokens,
	})
	if err != nil {
		return nil, eris.Wrapf(err, "llm: %s", req.Phase)
	}

	return &Completion{
		Text:  resp.Text,
		Model: b.model,
		Usage: cost.Usage{
			Input:  resp.Usage.InputTokens,
			Output: resp.Usage.OutputTokens,
		},
	}, nil
}
