package llm

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadrank/internal/config"
	"github.com/sells-group/leadrank/internal/cost"
	"github.com/sells-group/leadrank/pkg/anthropic"
	"github.com/sells-group/leadrank/pkg/gemini"
)

// Provider names accepted in llm.provider.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// New builds the configured backend wrapped in Limited and Tracker.
func New(ctx context.Context, cfg *config.Config) (*Tracker, error) {
	var backend Client
	switch cfg.LLM.Provider {
	case ProviderAnthropic:
		backend = NewAnthropic(anthropic.NewClient(cfg.Anthropic.Key), cfg.Anthropic.Model, cfg.Anthropic.MaxTokens)
	case ProviderGemini:
		gc, err := gemini.NewClient(ctx, gemini.Config{APIKey: cfg.Gemini.Key})
		if err != nil {
			return nil, eris.Wrap(err, "llm: new gemini client")
		}
		backend = NewGemini(gc, cfg.Gemini.Model, cfg.Gemini.MaxTokens)
	default:
		return nil, eris.Errorf("llm: unknown provider %q", cfg.LLM.Provider)
	}

	return Wrap(backend, cfg), nil
}

// Wrap applies the configured pacing and usage tracking to backend.
func Wrap(backend Client, cfg *config.Config) *Tracker {
	limited := NewLimited(backend,
		time.Duration(cfg.LLM.TimeoutSecs)*time.Second,
		cfg.LLM.RequestsPerSecond,
	)
	return NewTracker(limited, cost.NewCalculator(Rates(cfg.Pricing)))
}

// Rates merges configured pricing overrides into the default rates.
func Rates(p config.PricingConfig) cost.Rates {
	defaults := cost.DefaultRates()
	overrides := make(map[string]cost.ModelRate, len(p.Models))
	for model, mp := range p.Models {
		r := defaults.Models[model]
		r.Input, r.Output = mp.Input, mp.Output
		overrides[model] = r
	}
	return defaults.Merge(overrides)
}
