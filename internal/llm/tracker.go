package llm

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/sells-group/leadrank/internal/cost"
	"github.com/sells-group/leadrank/internal/metrics"
)

// PhaseTotals accumulates usage for one phase.
type PhaseTotals struct {
	Calls   int
	Failed  int
	Usage   cost.Usage
	CostUSD float64
}

// Tracker records call counts, token usage and estimated cost per phase.
type Tracker struct {
	next Client
	calc *cost.Calculator

	mu     sync.Mutex
	totals map[Phase]*PhaseTotals
}

// NewTracker wraps next. calc may be nil, in which case cost is not estimated.
func NewTracker(next Client, calc *cost.Calculator) *Tracker {
	return &Tracker{
		next:   next,
		calc:   calc,
		totals: make(map[Phase]*PhaseTotals),
	}
}

// Complete calls the wrapped client and records the outcome.
func (t *Tracker) Complete(ctx context.Context, req Request) (*Completion, error) {
	resp, err := t.next.Complete(ctx, req)

	t.mu.Lock()
	defer t.mu.Unlock()

	pt, ok := t.totals[req.Phase]
	if !ok {
		pt = &PhaseTotals{}
		t.totals[req.Phase] = pt
	}
	pt.Calls++

	if err != nil {
		pt.Failed++
		metrics.LLMCalls.WithLabelValues(string(req.Phase), metrics.StatusError).Inc()
		return nil, err
	}

	metrics.LLMCalls.WithLabelValues(string(req.Phase), metrics.StatusOK).Inc()
	pt.Usage = pt.Usage.Add(resp.Usage)
	if t.calc != nil {
		pt.CostUSD += t.calc.Tokens(resp.Model, resp.Usage)
	}
	return resp, nil
}

// Totals returns a copy of the per-phase totals.
func (t *Tracker) Totals() map[Phase]PhaseTotals {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[Phase]PhaseTotals, len(t.totals))
	for p, pt := range t.totals {
		out[p] = *pt
	}
	return out
}

// TotalCost sums the estimated cost across phases.
func (t *Tracker) TotalCost() float64 {
	var sum float64
	for _, pt := range t.Totals() {
		sum += pt.CostUSD
	}
	return sum
}

// LogSummary logs one cost attribution line per phase.
func (t *Tracker) LogSummary() {
	totals := t.Totals()
	phases := make([]string, 0, len(totals))
	for p := range totals {
		phases = append(phases, string(p))
	}
	sort.Strings(phases)

	for _, p := range phases {
		pt := totals[Phase(p)]
		zap.L().Info("cost attribution",
			zap.String("phase", p),
			zap.Int("calls", pt.Calls),
			zap.Int("failed", pt.Failed),
			zap.Int64("input_tokens", pt.Usage.Input),
			zap.Int64("output_tokens", pt.Usage.Output),
			zap.Int64("cache_write_tokens", pt.Usage.CacheWrite),
			zap.Int64("cache_read_tokens", pt.Usage.CacheRead),
			zap.Float64("estimated_cost_usd", pt.CostUSD),
		)
	}
}
