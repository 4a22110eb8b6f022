package llm

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadrank/internal/cost"
	"github.com/sells-group/leadrank/pkg/anthropic"
)

type anthropicBackend struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropic adapts an Anthropic client to Client.
func NewAnthropic(client anthropic.Client, model string, maxTokens int64) Client {
	return &anthropicBackend{client: client, model: model, maxTokens: maxTokens}
}

func (b *anthropicBackend) Complete(ctx context.Context, req Request) (*Completion, error) {
	maxTokens := b.maxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}

	mr := anthropic.MessageRequest{
		Model:       b.model,
		MaxTokens:   maxTokens,
		Messages:    []anthropic.Message{{Role: "user", Content: req.Prompt}},
		Temperature: req.Temperature,
	}

	resp, err := b.client.CreateMessage(ctx, mr)
	if err != nil {
		return nil, eris.Wrapf(err, "llm: %s", req.Phase)
	}

	model := resp.Model
	if model == "" {
		model = b.model
	}
	return &Completion{
		Text:  resp.Text(),
		Model: model,
		Usage: cost.Usage{
			Input:      resp.Usage.InputTokens,
			Output:     resp.Usage.OutputTokens,
			CacheWrite: resp.Usage.CacheCreationInputTokens,
			CacheRead:  resp.Usage.CacheReadInputTokens,
		},
	}, nil
}
