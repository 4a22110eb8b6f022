package scorer

import (
	"cmp"
	"slices"
	"time"

	"github.com/sells-group/leadrank/internal/config"
	"github.com/sells-group/leadrank/internal/model"
)

// InteractionDateLayout is the expected format of last_interaction.
const InteractionDateLayout = "2006-01-02"

// Prioritizer blends qualification with recency and engagement signals.
type Prioritizer struct {
	cfg config.ScorerConfig
	now func() time.Time
}

// PrioritizerOption configures a Prioritizer.
type PrioritizerOption func(*Prioritizer)

// WithClock overrides the clock used for recency.
func WithClock(now func() time.Time) PrioritizerOption {
	return func(p *Prioritizer) { p.now = now }
}

// NewPrioritizer creates a Prioritizer. The config must already have passed
// ValidateConfig.
func NewPrioritizer(cfg config.ScorerConfig, opts ...PrioritizerOption) *Prioritizer {
	p := &Prioritizer{cfg: cfg, now: time.Now}
	for _, o := range opts {
		o(p)
	}
	return p
}

// RecencyScore scores how recently the lead was last contacted. Empty or
// unparseable dates score 0.
func (p *Prioritizer) RecencyScore(lastInteraction string) float64 {
	if lastInteraction == "" {
		return 0
	}
	last, err := time.Parse(InteractionDateLayout, lastInteraction)
	if err != nil {
		return 0
	}

	// Whole calendar days in the clock's zone; both ends sit at UTC
	// midnight so DST shifts cannot change the count.
	y, m, d := p.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	days := int(today.Sub(last).Hours() / 24)
	switch {
	case days <= 1:
		return 1.0
	case days <= 7:
		return 0.8
	case days <= 14:
		return 0.6
	case days <= 30:
		return 0.4
	default:
		return 0.2
	}
}

// EngagementScore scores the number of recorded interactions.
func EngagementScore(interactions []string) float64 {
	n := len(interactions)
	switch {
	case n >= 5:
		return 1.0
	case n >= 3:
		return 0.8
	case n == 2:
		return 0.6
	case n == 1:
		return 0.4
	default:
		return 0
	}
}

// Level maps a priority score to its discrete level.
func (p *Prioritizer) Level(score float64) model.PriorityLevel {
	switch {
	case score >= p.cfg.HighPriority:
		return model.PriorityHigh
	case score >= p.cfg.MediumPriority:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

// Prioritize computes the priority of a single qualified lead.
func (p *Prioritizer) Prioritize(lead model.Lead, q model.Qualification) model.Prioritization {
	recency := p.RecencyScore(lead.LastInteraction)
	engagement := EngagementScore(lead.Interactions)

	score := Round2(q.OverallScore*p.cfg.QualificationWeight +
		recency*p.cfg.RecencyWeight +
		engagement*p.cfg.EngagementWeight)

	return model.Prioritization{
		PriorityScore: score,
		PriorityLevel: p.Level(score),
		Factors: model.PriorityFactors{
			QualificationScore: q.OverallScore,
			RecencyScore:       Round2(recency),
			EngagementScore:    Round2(engagement),
		},
	}
}

// PrioritizeAll prioritizes every bundle and returns them ordered by
// descending priority score. Equal scores keep their input order. The
// input slice is not modified.
func (p *Prioritizer) PrioritizeAll(bundles []model.LeadBundle) []model.LeadBundle {
	out := make([]model.LeadBundle, len(bundles))
	for i, b := range bundles {
		pr := p.Prioritize(b.Lead, b.Qualification)
		b.Prioritization = &pr
		out[i] = b
	}

	slices.SortStableFunc(out, func(a, b model.LeadBundle) int {
		return cmp.Compare(b.Prioritization.PriorityScore, a.Prioritization.PriorityScore)
	})
	return out
}
