package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/sells-group/leadrank/internal/model"
)

// Stage is a state of the pipeline machine.
type Stage string

const (
	StageProcess    Stage = "process"
	StageQualify    Stage = "qualify"
	StagePrioritize Stage = "prioritize"
	StageRecommend  Stage = "recommend"
	StageDone       Stage = "done"
	StageFailed     Stage = "failed"
)

// next is the fixed forward order of the working stages.
var next = map[Stage]Stage{
	StageProcess:    StageQualify,
	StageQualify:    StagePrioritize,
	StagePrioritize: StageRecommend,
	StageRecommend:  StageDone,
}

// StageRecord is one entry of a run's trace.
type StageRecord struct {
	Stage    Stage         `json:"stage"`
	Leads    int           `json:"leads"`
	Duration time.Duration `json:"duration_ns"`
	Error    string        `json:"error,omitempty"`
}

// State is threaded through one run. Each working stage fills exactly one
// collection; Error is set at most once and never cleared.
type State struct {
	RunID       string
	Raw         []model.RawLead
	Processed   []model.Lead
	Qualified   []model.LeadBundle
	Prioritized []model.LeadBundle
	Approaches  map[string]string
	Stage       Stage
	Error       string
	Trace       []StageRecord
}

// NewState creates the initial state for a run over raw.
func NewState(raw []model.RawLead) *State {
	return &State{
		RunID:       uuid.NewString(),
		Raw:         raw,
		Processed:   []model.Lead{},
		Qualified:   []model.LeadBundle{},
		Prioritized: []model.LeadBundle{},
		Approaches:  map[string]string{},
		Stage:       StageProcess,
	}
}

// Failed reports whether the run recorded an error.
func (s *State) Failed() bool {
	return s.Error != ""
}
