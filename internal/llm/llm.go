// Package llm is the text-generation collaborator used by the qualify and
// recommend stages. Backends are selected by configuration and wrapped in
// pacing and usage-tracking decorators.
package llm

import (
	"context"

	"github.com/sells-group/leadrank/internal/cost"
)

// Phase names the pipeline step a call is made for.
type Phase string

const (
	PhaseAnalysis  Phase = "analysis"
	PhaseRecommend Phase = "recommend"
)

// Request is a single-turn prompt.
type Request struct {
	Phase       Phase
	Prompt      string
	Temperature *float64
	// MaxTokens overrides the backend default when > 0.
	MaxTokens int64
}

// Completion is the backend's reply.
type Completion struct {
	Text  string
	Model string
	Usage cost.Usage
}

// Client completes prompts.
type Client interface {
	Complete(ctx context.Context, req Request) (*Completion, error)
}

// Temp returns a pointer to t for Request.Temperature.
func Temp(t float64) *float64 {
	return &t
}
