package intake

import (
	"strings"

	"github.com/sells-group/leadrank/internal/model"
)

// NoInteractions is rendered when a lead has no interaction history.
const NoInteractions = "Nenhuma"

// Render formats a lead as the text block handed to the analysis model.
func Render(lead model.Lead) string {
	history := NoInteractions
	if len(lead.Interactions) > 0 {
		history = strings.Join(lead.Interactions, "; ")
	}
	decision := "Não"
	if lead.DecisionMaker {
		decision = "Sim"
	}

	lines := [][2]string{
		{"Nome", lead.Name},
		{"Empresa", lead.Company},
		{"Cargo", lead.Position},
		{"Tamanho da empresa", lead.CompanySize},
		{"Indústria", lead.Industry},
		{"Fonte do lead", lead.Source},
		{"Última interação", lead.LastInteraction},
		{"Histórico de interações", history},
		{"Informações sobre orçamento", lead.BudgetInfo},
		{"Tomador de decisão", decision},
		{"Necessidades", lead.Needs},
		{"Prazo", lead.Timeline},
		{"Notas adicionais", lead.AdditionalNotes},
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l[0])
		b.WriteString(": ")
		b.WriteString(l[1])
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}
