package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/leadrank/internal/model"
)

func TestRubric_OverallAllOnes(t *testing.T) {
	r := NewRubric(DefaultScorerConfig())
	assert.Equal(t, 1.0, r.Overall(SubScores{1, 1, 1, 1}))
}

func TestRubric_OverallWeights(t *testing.T) {
	r := NewRubric(DefaultScorerConfig())

	assert.Equal(t, 0.25, r.Overall(SubScores{Budget: 1}))
	assert.Equal(t, 0.25, r.Overall(SubScores{Authority: 1}))
	assert.Equal(t, 0.3, r.Overall(SubScores{Need: 1}))
	assert.Equal(t, 0.2, r.Overall(SubScores{Timeline: 1}))
	assert.Equal(t, 0.8, r.Overall(SubScores{0.8, 0.8, 0.8, 0.8}))
	// 0.9*0.25 + 0.7*0.25 + 0.5*0.3 + 0.3*0.2 = 0.61
	assert.Equal(t, 0.61, r.Overall(SubScores{0.9, 0.7, 0.5, 0.3}))
}

func TestRubric_OverallNotClamped(t *testing.T) {
	r := NewRubric(DefaultScorerConfig())
	assert.Equal(t, 10.0, r.Overall(SubScores{10, 10, 10, 10}))
}

func TestRubric_OverallMonotonic(t *testing.T) {
	r := NewRubric(DefaultScorerConfig())
	steps := []float64{0, 0.1, 0.25, 0.4, 0.5, 0.6, 0.75, 0.9, 1}

	base := SubScores{0.5, 0.5, 0.5, 0.5}
	bump := []func(s *SubScores, v float64){
		func(s *SubScores, v float64) { s.Budget = v },
		func(s *SubScores, v float64) { s.Authority = v },
		func(s *SubScores, v float64) { s.Need = v },
		func(s *SubScores, v float64) { s.Timeline = v },
	}

	for ci, set := range bump {
		prev := -1.0
		for _, v := range steps {
			s := base
			set(&s, v)
			got := r.Overall(s)
			assert.GreaterOrEqual(t, got, prev, "criterion %d at %v", ci, v)
			prev = got
		}
	}
}

func TestRubric_TierBoundaries(t *testing.T) {
	r := NewRubric(DefaultScorerConfig())

	tests := []struct {
		score float64
		want  model.Tier
	}{
		{1.5, model.TierHot},
		{1.0, model.TierHot},
		{0.8, model.TierHot},
		{0.79, model.TierWarm},
		{0.6, model.TierWarm},
		{0.59, model.TierCold},
		{0.4, model.TierCold},
		{0.39999, model.TierCold},
		{0, model.TierCold},
		{-1, model.TierCold},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Tier(tt.score), "Tier(%v)", tt.score)
	}
}

func TestRubric_Score(t *testing.T) {
	r := NewRubric(DefaultScorerConfig())

	q := r.Score(SubScores{0.9, 0.7, 0.5, 0.3}, "solid need")
	assert.Equal(t, 0.9, q.BudgetScore)
	assert.Equal(t, 0.7, q.AuthorityScore)
	assert.Equal(t, 0.5, q.NeedScore)
	assert.Equal(t, 0.3, q.TimelineScore)
	assert.Equal(t, "solid need", q.Reasoning)
	assert.Equal(t, 0.61, q.OverallScore)
	assert.Equal(t, model.TierWarm, q.Tier)
}

func TestRubric_Zero(t *testing.T) {
	r := NewRubric(DefaultScorerConfig())

	q := r.Zero("analysis error: bad json")
	assert.Equal(t, model.Qualification{Reasoning: "analysis error: bad json", Tier: model.TierCold}, q)
}

func TestRubric_CustomWeights(t *testing.T) {
	cfg := DefaultScorerConfig()
	cfg.BudgetWeight = 1
	cfg.AuthorityWeight = 0
	cfg.NeedWeight = 0
	cfg.TimelineWeight = 0
	r := NewRubric(cfg)

	assert.Equal(t, 0.42, r.Overall(SubScores{Budget: 0.42, Need: 1}))
	assert.Equal(t, 1.0, r.Weight(model.CriterionBudget))
	assert.Equal(t, 0.0, r.Weight(model.CriterionNeed))
}

func TestRubric_CheckThresholds(t *testing.T) {
	r := NewRubric(DefaultScorerConfig())

	q := model.Qualification{BudgetScore: 0.5, AuthorityScore: 0.7, NeedScore: 0.6, TimelineScore: 0.4}
	assert.Equal(t, []model.Criterion{model.CriterionBudget, model.CriterionTimeline}, r.CheckThresholds(q))

	assert.Empty(t, r.CheckThresholds(model.Qualification{BudgetScore: 1, AuthorityScore: 1, NeedScore: 1, TimelineScore: 1}))
	assert.Equal(t, model.Criteria, r.CheckThresholds(model.Qualification{}))
}
