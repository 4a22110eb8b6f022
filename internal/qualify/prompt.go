package qualify

import (
	"fmt"
	"strings"
)

const analysisTemplate = `Analise as informações deste lead e avalie os critérios BANT (Budget, Authority, Need, Timeline).
Informações do Lead:
%s

Avalie cada critério em uma escala de 0 a 1:
- Budget (Orçamento): O lead tem orçamento disponível para nossa solução?
- Authority (Autoridade): O contato tem poder de decisão ou influência no processo de compra?
- Need (Necessidade): O lead tem uma necessidade clara que nosso produto/serviço pode resolver?
- Timeline (Prazo): O lead tem um prazo definido para implementação ou compra?
`

// FormatInstructions is the output-format directive appended to every
// analysis prompt. Its keys match the reply schema.
const FormatInstructions = "A saída deve ser um trecho de código markdown formatado no esquema abaixo, " +
	"incluindo as marcações \"```json\" e \"```\" no início e no fim:\n\n" +
	"```json\n" +
	"{\n" +
	"\t\"budget\": number  // Pontuação de orçamento de 0 a 1\n" +
	"\t\"authority\": number  // Pontuação de autoridade de 0 a 1\n" +
	"\t\"need\": number  // Pontuação de necessidade de 0 a 1\n" +
	"\t\"timeline\": number  // Pontuação de prazo de 0 a 1\n" +
	"\t\"reasoning\": string  // Raciocínio detalhado para cada pontuação\n" +
	"}\n" +
	"```"

// BuildPrompt renders the analysis prompt for a formatted lead.
func BuildPrompt(leadInfo string) string {
	var b strings.Builder
	fmt.Fprintf(&b, analysisTemplate, leadInfo)
	b.WriteString("\n")
	b.WriteString(FormatInstructions)
	return b.String()
}
