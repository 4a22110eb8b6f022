package pipeline

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/leadrank/internal/model"
	"github.com/sells-group/leadrank/internal/scorer"
)

// --- Analyzer Mock (qualify.Analyzer) ---

type mockAnalyzer struct {
	mock.Mock
}

func (m *mockAnalyzer) Analyze(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// --- Collaborator Mock (approach.Collaborator) ---

type mockCollaborator struct {
	mock.Mock
}

func (m *mockCollaborator) Recommend(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// --- Qualifier Mock ---

type mockQualifier struct {
	mock.Mock
}

func (m *mockQualifier) Qualify(ctx context.Context, leadInfo string) (model.Qualification, error) {
	args := m.Called(ctx, leadInfo)
	return args.Get(0).(model.Qualification), args.Error(1)
}

// --- Recommender Mock ---

type mockRecommender struct {
	mock.Mock
}

func (m *mockRecommender) Recommend(ctx context.Context, b model.LeadBundle) (string, error) {
	args := m.Called(ctx, b)
	return args.String(0), args.Error(1)
}

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func testPrioritizer() *scorer.Prioritizer {
	return scorer.NewPrioritizer(scorer.DefaultScorerConfig(),
		scorer.WithClock(func() time.Time { return fixedNow }))
}
