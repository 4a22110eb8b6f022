// Package qualify scores a rendered lead against the BANT rubric using the
// analysis model.
package qualify

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/leadrank/internal/metrics"
	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/scorer"
)

// Analyzer sends an analysis prompt and returns the model's raw reply.
type Analyzer interface {
	Analyze(ctx context.Context, prompt string) (string, error)
}

// Qualifier produces a Qualification per lead.
type Qualifier struct {
	analyzer Analyzer
	rubric   *scorer.Rubric
}

// New creates a Qualifier.
func New(analyzer Analyzer, rubric *scorer.Rubric) *Qualifier {
	return &Qualifier{analyzer: analyzer, rubric: rubric}
}

// Qualify asks the analysis model to score the lead and applies the rubric.
//
// An unusable reply is not an error: the lead gets a zeroed qualification
// with tier cold and the failure in Reasoning. Errors returned here come
// from the call itself.
func (q *Qualifier) Qualify(ctx context.Context, leadInfo string) (model.Qualification, error) {
	text, err := q.analyzer.Analyze(ctx, BuildPrompt(leadInfo))
	if err != nil {
		return model.Qualification{}, eris.Wrap(err, "qualify: call analysis")
	}

	reply, err := ParseReply(text)
	if err != nil {
		metrics.QualifyDegraded.Inc()
		zap.L().Warn("qualify: unusable analysis reply, scoring as zero",
			zap.Error(err),
			zap.Int("reply_len", len(text)),
		)
		return q.rubric.Zero("analysis error: " + err.Error()), nil
	}

	result := q.rubric.Score(reply.SubScores(), reply.Reasoning)
	if below := q.rubric.CheckThresholds(result); len(below) > 0 {
		zap.L().Debug("qualify: criteria below threshold",
			zap.Any("criteria", below),
			zap.Float64("overall_score", result.OverallScore),
		)
	}
	return result, nil
}

// CheckThresholds reports which criteria fell below their thresholds.
func (q *Qualifier) CheckThresholds(result model.Qualification) []model.Criterion {
	return q.rubric.CheckThresholds(result)
}
