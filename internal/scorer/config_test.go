package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultScorerConfig_Valid(t *testing.T) {
	cfg := DefaultScorerConfig()
	require.NoError(t, ValidateConfig(cfg))
	assert.InDelta(t, 1.0, BANTWeightSum(cfg), 1e-9)
	assert.InDelta(t, 1.0, PriorityWeightSum(cfg), 1e-9)
}

func TestValidateConfig_BANTSum(t *testing.T) {
	cfg := DefaultScorerConfig()
	cfg.NeedWeight = 0.5

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BANT weights should sum to 1")
}

func TestValidateConfig_PrioritySum(t *testing.T) {
	cfg := DefaultScorerConfig()
	cfg.RecencyWeight = 0.1

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prioritization weights should sum to 1")
}

func TestValidateConfig_NegativeWeight(t *testing.T) {
	cfg := DefaultScorerConfig()
	cfg.BudgetWeight = -0.25
	cfg.NeedWeight = 0.8

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "budget_weight must be >= 0")
}

func TestValidateConfig_TierOrder(t *testing.T) {
	cfg := DefaultScorerConfig()
	cfg.WarmTier = 0.9

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hot_tier > warm_tier > cold_tier")
}

func TestValidateConfig_PriorityOrder(t *testing.T) {
	cfg := DefaultScorerConfig()
	cfg.MediumPriority = 0.8

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "high_priority must be > medium_priority")
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.125, 0.13},
		{0.375, 0.38},
		{-0.125, -0.13},
		{0.994, 0.99},
		{0.996, 1},
		{0.5, 0.5},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
}
