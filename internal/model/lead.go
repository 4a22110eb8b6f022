package model

// RawLead is a lead record as it arrives from an input file or request
// body. Any field may be missing or carry an unexpected JSON type.
type RawLead map[string]any

// Lead is a normalized lead record. Every field holds a defined value.
type Lead struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Company         string   `json:"company"`
	Position        string   `json:"position"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Source          string   `json:"source"`
	LastInteraction string   `json:"last_interaction"`
	Interactions    []string `json:"interactions"`
	CompanySize     string   `json:"company_size"`
	Industry        string   `json:"industry"`
	BudgetInfo      string   `json:"budget_info"`
	DecisionMaker   bool     `json:"decision_maker"`
	Needs           string   `json:"needs"`
	Timeline        string   `json:"timeline"`
	AdditionalNotes string   `json:"additional_notes"`

	// FormattedInfo is the rendered text handed to the analysis model.
	// Set once by the process stage.
	FormattedInfo string `json:"formatted_info,omitempty"`
}

// LeadBundle is the unit that flows through the prioritize and recommend
// stages and is materialized to output.
type LeadBundle struct {
	Lead           Lead            `json:"lead"`
	Qualification  Qualification   `json:"qualification"`
	Prioritization *Prioritization `json:"prioritization,omitempty"`
}
