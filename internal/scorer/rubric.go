package scorer

import (
	"github.com/sells-group/leadrank/internal/config"
	"github.com/sells-group/leadrank/internal/model"
)

// SubScores are the raw BANT sub-scores reported by the analysis model.
type SubScores struct {
	Budget    float64
	Authority float64
	Need      float64
	Timeline  float64
}

type tierCutoff struct {
	tier      model.Tier
	threshold float64
}

// Rubric turns BANT sub-scores into a weighted overall score and tier.
type Rubric struct {
	cfg   config.ScorerConfig
	tiers []tierCutoff // highest threshold first
}

// NewRubric creates a Rubric. The config must already have passed
// ValidateConfig.
func NewRubric(cfg config.ScorerConfig) *Rubric {
	return &Rubric{
		cfg: cfg,
		tiers: []tierCutoff{
			{model.TierHot, cfg.HotTier},
			{model.TierWarm, cfg.WarmTier},
			{model.TierCold, cfg.ColdTier},
		},
	}
}

// Weight returns the configured weight of a criterion.
func (r *Rubric) Weight(c model.Criterion) float64 {
	switch c {
	case model.CriterionBudget:
		return r.cfg.BudgetWeight
	case model.CriterionAuthority:
		return r.cfg.AuthorityWeight
	case model.CriterionNeed:
		return r.cfg.NeedWeight
	case model.CriterionTimeline:
		return r.cfg.TimelineWeight
	default:
		return 0
	}
}

// Threshold returns the diagnostic threshold of a criterion.
func (r *Rubric) Threshold(c model.Criterion) float64 {
	switch c {
	case model.CriterionBudget:
		return r.cfg.BudgetThreshold
	case model.CriterionAuthority:
		return r.cfg.AuthorityThreshold
	case model.CriterionNeed:
		return r.cfg.NeedThreshold
	case model.CriterionTimeline:
		return r.cfg.TimelineThreshold
	default:
		return 0
	}
}

// Overall returns the weighted sum of the sub-scores, rounded to two
// decimals.
func (r *Rubric) Overall(s SubScores) float64 {
	sum := s.Budget*r.cfg.BudgetWeight +
		s.Authority*r.cfg.AuthorityWeight +
		s.Need*r.cfg.NeedWeight +
		s.Timeline*r.cfg.TimelineWeight
	return Round2(sum)
}

// Tier maps an overall score to the first tier whose threshold it reaches.
// Scores below every threshold fall into the lowest tier.
func (r *Rubric) Tier(overall float64) model.Tier {
	for _, t := range r.tiers {
		if overall >= t.threshold {
			return t.tier
		}
	}
	return r.tiers[len(r.tiers)-1].tier
}

// Score builds a complete Qualification from sub-scores and reasoning.
func (r *Rubric) Score(s SubScores, reasoning string) model.Qualification {
	overall := r.Overall(s)
	return model.Qualification{
		BudgetScore:    s.Budget,
		AuthorityScore: s.Authority,
		NeedScore:      s.Need,
		TimelineScore:  s.Timeline,
		Reasoning:      reasoning,
		OverallScore:   overall,
		Tier:           r.Tier(overall),
	}
}

// Zero returns the safe-default qualification used when the analysis
// reply cannot be used.
func (r *Rubric) Zero(reasoning string) model.Qualification {
	return model.Qualification{
		Reasoning: reasoning,
		Tier:      r.tiers[len(r.tiers)-1].tier,
	}
}

// CheckThresholds returns the criteria whose sub-score is below the
// configured threshold, in canonical order. Diagnostics only.
func (r *Rubric) CheckThresholds(q model.Qualification) []model.Criterion {
	var below []model.Criterion
	for _, c := range model.Criteria {
		if q.Score(c) < r.Threshold(c) {
			below = append(below, c)
		}
	}
	return below
}
