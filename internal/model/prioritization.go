package model

// PriorityLevel is the discrete outreach priority of a lead.
type PriorityLevel string

const (
	PriorityHigh   PriorityLevel = "high"
	PriorityMedium PriorityLevel = "medium"
	PriorityLow    PriorityLevel = "low"
)

// PriorityFactors records the sub-scores that produced a priority score.
type PriorityFactors struct {
	QualificationScore float64 `json:"qualification_score"`
	RecencyScore       float64 `json:"recency_score"`
	EngagementScore    float64 `json:"engagement_score"`
}

// Prioritization is the ranking signal computed for a qualified lead.
type Prioritization struct {
	PriorityScore float64         `json:"priority_score"`
	PriorityLevel PriorityLevel   `json:"priority_level"`
	Factors       PriorityFactors `json:"factors"`
}
