package pipeline

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/leadrank/internal/intake"
	"github.com/sells-group/leadrank/internal/metrics"
	"github.com/sells-group/leadrank/internal/model"
)

// process normalizes and renders every raw lead.
func (p *Pipeline) process(_ context.Context, st *State) error {
	out := make([]model.Lead, 0, len(st.Raw))
	for i, raw := range st.Raw {
		if raw == nil {
			return eris.Errorf("lead %d: record is null", i)
		}
		lead := intake.Normalize(raw)
		lead.FormattedInfo = intake.Render(lead)
		out = append(out, lead)
	}

	st.Processed = out
	metrics.LeadsProcessed.Add(float64(len(out)))
	return nil
}

// qualify scores every processed lead. Results keep input order.
func (p *Pipeline) qualify(ctx context.Context, st *State) error {
	out := make([]model.LeadBundle, len(st.Processed))

	err := p.forEach(ctx, len(st.Processed), func(ctx context.Context, i int) error {
		lead := st.Processed[i]
		q, err := p.qualifier.Qualify(ctx, lead.FormattedInfo)
		if err != nil {
			return eris.Wrapf(err, "lead %q", lead.ID)
		}
		zap.L().Debug("pipeline: lead qualified",
			zap.String("run_id", st.RunID),
			zap.String("lead_id", lead.ID),
			zap.Float64("overall_score", q.OverallScore),
			zap.String("tier", string(q.Tier)),
		)
		out[i] = model.LeadBundle{Lead: lead, Qualification: q}
		return nil
	})
	if err != nil {
		return err
	}

	st.Qualified = out
	return nil
}

// prioritize scores and stably sorts the qualified bundles.
func (p *Pipeline) prioritize(_ context.Context, st *State) error {
	for _, b := range st.Qualified {
		if b.Qualification.Tier == "" {
			return eris.Errorf("lead %q: missing qualification", b.Lead.ID)
		}
	}
	st.Prioritized = p.prioritizer.PrioritizeAll(st.Qualified)
	return nil
}

// recommend asks for an approach per prioritized lead. Later duplicates of
// an id overwrite earlier ones.
func (p *Pipeline) recommend(ctx context.Context, st *State) error {
	texts := make([]string, len(st.Prioritized))

	err := p.forEach(ctx, len(st.Prioritized), func(ctx context.Context, i int) error {
		text, err := p.recommender.Recommend(ctx, st.Prioritized[i])
		if err != nil {
			return err
		}
		texts[i] = text
		return nil
	})
	if err != nil {
		return err
	}

	out := make(map[string]string, len(texts))
	for i, b := range st.Prioritized {
		out[b.Lead.ID] = texts[i]
	}
	st.Approaches = out
	return nil
}

// forEach runs fn for indexes [0, n) with at most p.concurrency in flight.
// The first error cancels the rest and is returned.
func (p *Pipeline) forEach(ctx context.Context, n int, fn func(context.Context, int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}
	return g.Wait()
}
