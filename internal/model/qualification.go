package model

// Criterion is one of the four BANT qualification criteria.
type Criterion string

const (
	CriterionBudget    Criterion = "budget"
	CriterionAuthority Criterion = "authority"
	CriterionNeed      Criterion = "need"
	CriterionTimeline  Criterion = "timeline"
)

// Criteria lists the BANT criteria in their canonical order.
var Criteria = []Criterion{CriterionBudget, CriterionAuthority, CriterionNeed, CriterionTimeline}

// Tier is the qualification category of a lead.
type Tier string

const (
	TierHot  Tier = "hot"
	TierWarm Tier = "warm"
	TierCold Tier = "cold"
)

// Qualification is the BANT assessment of a single lead. Sub-scores are
// taken from the analysis model as-is and are not clamped.
type Qualification struct {
	BudgetScore    float64 `json:"budget_score"`
	AuthorityScore float64 `json:"authority_score"`
	NeedScore      float64 `json:"need_score"`
	TimelineScore  float64 `json:"timeline_score"`
	Reasoning      string  `json:"reasoning"`
	OverallScore   float64 `json:"overall_score"`
	Tier           Tier    `json:"tier"`
}

// Score returns the sub-score for a criterion.
func (q Qualification) Score(c Criterion) float64 {
	switch c {
	case CriterionBudget:
		return q.BudgetScore
	case CriterionAuthority:
		return q.AuthorityScore
	case CriterionNeed:
		return q.NeedScore
	case CriterionTimeline:
		return q.TimelineScore
	default:
		return 0
	}
}
