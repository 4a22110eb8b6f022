// Package approach asks the recommendation model for a tailored outreach
// plan per lead.
package approach

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadrank/internal/model"
)

const recommendationTemplate = `Com base nas informações e na qualificação deste lead, sugira uma abordagem personalizada para o time de vendas.
Informações do Lead:
%s

Qualificação BANT:
- Budget: %s
- Authority: %s
- Need: %s
- Timeline: %s
- Pontuação geral: %s
- Categoria: %s

Forneça:
1. Um assunto de email personalizado
2. Pontos principais a serem abordados na primeira interação
3. Objeções potenciais e como responder a elas
4. Próximos passos recomendados
`

// Collaborator sends a recommendation prompt and returns the raw reply.
type Collaborator interface {
	Recommend(ctx context.Context, prompt string) (string, error)
}

// Recommender builds outreach recommendations.
type Recommender struct {
	collab Collaborator
}

// New creates a Recommender.
func New(collab Collaborator) *Recommender {
	return &Recommender{collab: collab}
}

// Recommend returns the model's reply for the bundle verbatim.
func (r *Recommender) Recommend(ctx context.Context, b model.LeadBundle) (string, error) {
	text, err := r.collab.Recommend(ctx, BuildPrompt(b))
	if err != nil {
		return "", eris.Wrapf(err, "approach: recommend for lead %q", b.Lead.ID)
	}
	return text, nil
}

// BuildPrompt renders the recommendation prompt for a qualified lead.
func BuildPrompt(b model.LeadBundle) string {
	q := b.Qualification
	return fmt.Sprintf(recommendationTemplate,
		b.Lead.FormattedInfo,
		score(q.BudgetScore),
		score(q.AuthorityScore),
		score(q.NeedScore),
		score(q.TimelineScore),
		score(q.OverallScore),
		q.Tier,
	)
}

func score(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
