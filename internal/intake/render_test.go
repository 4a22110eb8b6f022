package intake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/leadrank/internal/model"
)

func TestRender_Full(t *testing.T) {
	lead := Normalize(model.RawLead{
		"name":              "Ana",
		"company":           "Acme",
		"position":          "CTO",
		"company_size":      "200",
		"industry":          "SaaS",
		"source":            "webinar",
		"last_interaction":  "2026-10-01",
		"interactions":      []any{"email", "demo", "call"},
		"budget_info":       "approved",
		"is_decision_maker": true,
		"needs":             "CRM",
		"timeline":          "Q1",
		"notes":             "warm",
	})

	want := `Nome: Ana
Empresa: Acme
Cargo: CTO
Tamanho da empresa: 200
Indústria: SaaS
Fonte do lead: webinar
Última interação: 2026-10-01
Histórico de interações: email; demo; call
Informações sobre orçamento: approved
Tomador de decisão: Sim
Necessidades: CRM
Prazo: Q1
Notas adicionais: warm`

	assert.Equal(t, want, Render(lead))
}

func TestRender_NoInteractions(t *testing.T) {
	out := Render(Normalize(model.RawLead{"name": "A"}))

	assert.Contains(t, out, "Histórico de interações: Nenhuma")
	assert.Contains(t, out, "Tomador de decisão: Não")
	assert.Contains(t, out, "Indústria: unknown")
}

func TestRender_InteractionOrderPreserved(t *testing.T) {
	out := Render(model.Lead{Interactions: []string{"z", "a", "m"}})
	assert.Contains(t, out, "Histórico de interações: z; a; m")
}

func TestRender_Deterministic(t *testing.T) {
	lead := Normalize(model.RawLead{"name": "A", "interactions": []any{"x"}})
	assert.Equal(t, Render(lead), Render(lead))
}

func TestRender_TrimsTrailingWhitespace(t *testing.T) {
	out := Render(model.Lead{})
	assert.True(t, strings.HasSuffix(out, "Notas adicionais:"))
	assert.True(t, strings.HasPrefix(out, "Nome:"))
}
