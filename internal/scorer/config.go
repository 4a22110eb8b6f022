// Package scorer implements BANT qualification scoring and lead prioritization.
package scorer

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadrank/internal/config"
)

// weightTolerance bounds floating-point drift when checking weight sums.
const weightTolerance = 1e-6

// DefaultScorerConfig returns a config.ScorerConfig with the standard rubric.
// Both weight groups sum to 1.
func DefaultScorerConfig() config.ScorerConfig {
	return config.ScorerConfig{
		// BANT weights (sum = 1).
		BudgetWeight:    0.25,
		AuthorityWeight: 0.25,
		NeedWeight:      0.30,
		TimelineWeight:  0.20,

		BudgetThreshold:    0.6,
		AuthorityThreshold: 0.7,
		NeedThreshold:      0.6,
		TimelineThreshold:  0.5,

		HotTier:  0.8,
		WarmTier: 0.6,
		ColdTier: 0.4,

		// Prioritization weights (sum = 1).
		QualificationWeight: 0.5,
		RecencyWeight:       0.3,
		EngagementWeight:    0.2,

		HighPriority:   0.8,
		MediumPriority: 0.5,
	}
}

// BANTWeightSum returns the sum of the four criterion weights.
func BANTWeightSum(c config.ScorerConfig) float64 {
	return c.BudgetWeight + c.AuthorityWeight + c.NeedWeight + c.TimelineWeight
}

// PriorityWeightSum returns the sum of the three prioritization weights.
func PriorityWeightSum(c config.ScorerConfig) float64 {
	return c.QualificationWeight + c.RecencyWeight + c.EngagementWeight
}

// ValidateConfig checks that a ScorerConfig is internally consistent.
func ValidateConfig(c config.ScorerConfig) error {
	var errs []string

	weights := []struct {
		name string
		w    float64
	}{
		{"budget_weight", c.BudgetWeight},
		{"authority_weight", c.AuthorityWeight},
		{"need_weight", c.NeedWeight},
		{"timeline_weight", c.TimelineWeight},
		{"qualification_weight", c.QualificationWeight},
		{"recency_weight", c.RecencyWeight},
		{"engagement_weight", c.EngagementWeight},
	}
	for _, w := range weights {
		if w.w < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", w.name))
		}
	}

	if sum := BANTWeightSum(c); math.Abs(sum-1) > weightTolerance {
		errs = append(errs, fmt.Sprintf("BANT weights should sum to 1, got %.4f", sum))
	}
	if sum := PriorityWeightSum(c); math.Abs(sum-1) > weightTolerance {
		errs = append(errs, fmt.Sprintf("prioritization weights should sum to 1, got %.4f", sum))
	}

	// Tiers are matched highest first.
	if !(c.HotTier > c.WarmTier && c.WarmTier > c.ColdTier) {
		errs = append(errs, "tiers must satisfy hot_tier > warm_tier > cold_tier")
	}
	if c.HighPriority <= c.MediumPriority {
		errs = append(errs, "high_priority must be > medium_priority")
	}

	if len(errs) > 0 {
		return eris.Errorf("scorer: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
