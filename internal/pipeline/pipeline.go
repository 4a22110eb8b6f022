// Package pipeline runs leads through process, qualify, prioritize and
// recommend as a small state machine. A stage failure stores a message in
// State.Error and routes the run through the failed state to done.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/leadrank/internal/metrics"
	"github.com/sells-group/leadrank/internal/model"
)

// Qualifier scores a rendered lead.
type Qualifier interface {
	Qualify(ctx context.Context, leadInfo string) (model.Qualification, error)
}

// Prioritizer ranks qualified leads.
type Prioritizer interface {
	PrioritizeAll(bundles []model.LeadBundle) []model.LeadBundle
}

// Recommender produces the outreach text for one lead.
type Recommender interface {
	Recommend(ctx context.Context, b model.LeadBundle) (string, error)
}

// Pipeline holds the stage collaborators. It keeps no per-run state and
// may be shared across concurrent runs.
type Pipeline struct {
	qualifier   Qualifier
	prioritizer Prioritizer
	recommender Recommender
	concurrency int
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithConcurrency bounds the per-lead calls in flight within the qualify
// and recommend stages. Values below 1 mean 1.
func WithConcurrency(n int) Option {
	return func(p *Pipeline) {
		p.concurrency = max(n, 1)
	}
}

// New creates a Pipeline.
func New(q Qualifier, pr Prioritizer, r Recommender, opts ...Option) *Pipeline {
	p := &Pipeline{
		qualifier:   q,
		prioritizer: pr,
		recommender: r,
		concurrency: 1,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Run executes a full run over raw and returns the final state, which is
// always in StageDone. Callers check State.Failed.
func (p *Pipeline) Run(ctx context.Context, raw []model.RawLead) *State {
	st := NewState(raw)
	log := zap.L().With(zap.String("run_id", st.RunID))
	log.Info("pipeline: starting run", zap.Int("leads", len(raw)))

	for st.Stage != StageDone {
		p.Step(ctx, st)
	}

	if !st.Failed() {
		log.Info("pipeline: run complete",
			zap.Int("prioritized", len(st.Prioritized)),
			zap.Int("approaches", len(st.Approaches)),
		)
	}
	return st
}

// Step performs one transition of the machine.
func (p *Pipeline) Step(ctx context.Context, st *State) {
	switch st.Stage {
	case StageDone:
		return
	case StageFailed:
		zap.L().Error("pipeline: run failed",
			zap.String("run_id", st.RunID),
			zap.String("error", st.Error),
		)
		st.Stage = StageDone
		return
	}

	fn, ok := p.stageFunc(st.Stage)
	if !ok {
		p.fail(st, st.Stage, eris.Errorf("unknown stage %q", st.Stage))
		return
	}

	if err := p.track(ctx, st, fn); err != nil {
		p.fail(st, st.Stage, err)
		return
	}
	st.Stage = next[st.Stage]
}

func (p *Pipeline) stageFunc(s Stage) (func(context.Context, *State) error, bool) {
	switch s {
	case StageProcess:
		return p.process, true
	case StageQualify:
		return p.qualify, true
	case StagePrioritize:
		return p.prioritize, true
	case StageRecommend:
		return p.recommend, true
	default:
		return nil, false
	}
}

// track runs fn and records duration, outcome and metrics for the stage.
func (p *Pipeline) track(ctx context.Context, st *State, fn func(context.Context, *State) error) error {
	stage := st.Stage
	start := time.Now()

	err := ctx.Err()
	if err == nil {
		err = fn(ctx, st)
	}
	elapsed := time.Since(start)

	rec := StageRecord{Stage: stage, Leads: len(st.Raw), Duration: elapsed}
	metrics.StageDuration.WithLabelValues(string(stage)).Observe(elapsed.Seconds())

	log := zap.L().With(zap.String("run_id", st.RunID), zap.String("stage", string(stage)))
	if err != nil {
		rec.Error = err.Error()
		metrics.StageFailures.WithLabelValues(string(stage)).Inc()
		log.Warn("pipeline: stage failed", zap.Duration("duration", elapsed), zap.Error(err))
	} else {
		log.Info("pipeline: stage complete", zap.Duration("duration", elapsed))
	}
	st.Trace = append(st.Trace, rec)
	return err
}

func (p *Pipeline) fail(st *State, stage Stage, err error) {
	if st.Error == "" {
		st.Error = fmt.Sprintf("%s: %v", stage, err)
	}
	st.Stage = StageFailed
}
