package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadrank/internal/approach"
	"github.com/sells-group/leadrank/internal/config"
	"github.com/sells-group/leadrank/internal/llm"
	"github.com/sells-group/leadrank/internal/pipeline"
	"github.com/sells-group/leadrank/internal/qualify"
	"github.com/sells-group/leadrank/internal/scorer"
)

// pipelineEnv holds the pipeline and the LLM usage tracker shared by the
// run and serve commands.
type pipelineEnv struct {
	Pipeline *pipeline.Pipeline
	Tracker  *llm.Tracker
}

// initPipeline validates configuration for mode, builds the configured LLM
// backend and wires the stages.
func initPipeline(ctx context.Context, mode string) (*pipelineEnv, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}
	if err := scorer.ValidateConfig(cfg.Scorer); err != nil {
		return nil, eris.Wrap(err, "invalid scorer config")
	}

	tracker, err := llm.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &pipelineEnv{
		Pipeline: buildPipeline(cfg, tracker),
		Tracker:  tracker,
	}, nil
}

// buildPipeline wires the qualify, prioritize and recommend stages around
// a single LLM client.
func buildPipeline(c *config.Config, client llm.Client) *pipeline.Pipeline {
	collab := llm.NewCollaborator(client,
		llm.PhaseOptions{Temperature: c.LLM.AnalysisTemperature, MaxTokens: c.LLM.AnalysisMaxTokens},
		llm.PhaseOptions{Temperature: c.LLM.RecommendTemperature, MaxTokens: c.LLM.RecommendMaxTokens},
	)
	return pipeline.New(
		qualify.New(collab, scorer.NewRubric(c.Scorer)),
		scorer.NewPrioritizer(c.Scorer),
		approach.New(collab),
		pipeline.WithConcurrency(c.Pipeline.Concurrency),
	)
}
