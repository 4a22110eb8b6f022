package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/leadrank/internal/config"
	"github.com/sells-group/leadrank/internal/scorer"
)

func validConfig() *config.Config {
	return &config.Config{
		LLM: config.LLMConfig{
			Provider:             "anthropic",
			TimeoutSecs:          30,
			AnalysisTemperature:  0.2,
			RecommendTemperature: 0.7,
		},
		Anthropic: config.AnthropicConfig{Key: "test-key", Model: "claude-haiku-4-5-20251001", MaxTokens: 1024},
		Scorer:    scorer.DefaultScorerConfig(),
		Pipeline:  config.PipelineConfig{Concurrency: 2},
		Server:    config.ServerConfig{Port: 8080},
	}
}

func TestInitPipeline_Success(t *testing.T) {
	cfg = validConfig()

	env, err := initPipeline(context.Background(), "run")
	require.NoError(t, err)
	assert.NotNil(t, env.Pipeline)
	assert.NotNil(t, env.Tracker)
	assert.Zero(t, env.Tracker.TotalCost())
}

func TestInitPipeline_MissingKey(t *testing.T) {
	cfg = validConfig()
	cfg.Anthropic.Key = ""

	env, err := initPipeline(context.Background(), "run")
	assert.Nil(t, env)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic.key is required")
}

func TestInitPipeline_BadScorerWeights(t *testing.T) {
	cfg = validConfig()
	cfg.Scorer.NeedWeight = 0.9

	env, err := initPipeline(context.Background(), "run")
	assert.Nil(t, env)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scorer config")
}

func TestInitPipeline_UnknownProvider(t *testing.T) {
	cfg = validConfig()
	cfg.LLM.Provider = "openai"

	_, err := initPipeline(context.Background(), "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm.provider")
}
