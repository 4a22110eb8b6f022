package llm

import (
	"context"
)

// PhaseOptions holds the sampling settings for one phase.
type PhaseOptions struct {
	Temperature float64
	// MaxTokens caps the reply; 0 keeps the backend default.
	MaxTokens int64
}

// Collaborator is the two-call surface the pipeline stages depend on.
type Collaborator struct {
	client    Client
	analysis  PhaseOptions
	recommend PhaseOptions
}

// NewCollaborator binds client to the per-phase settings.
func NewCollaborator(client Client, analysis, recommend PhaseOptions) *Collaborator {
	return &Collaborator{
		client:    client,
		analysis:  analysis,
		recommend: recommend,
	}
}

// Analyze sends a qualification prompt and returns the raw reply.
func (c *Collaborator) Analyze(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, PhaseAnalysis, prompt, c.analysis)
}

// Recommend sends an outreach prompt and returns the raw reply.
func (c *Collaborator) Recommend(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, PhaseRecommend, prompt, c.recommend)
}

func (c *Collaborator) complete(ctx context.Context, phase Phase, prompt string, opts PhaseOptions) (string, error) {
	resp, err := c.client.Complete(ctx, Request{
		Phase:       phase,
		Prompt:      prompt,
		Temperature: Temp(opts.Temperature),
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
