package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sells-group/leadrank/internal/pipeline"
)

// TopN is the number of leads listed by PrintSummary.
const TopN = 3

// PrintSummary prints run counts and the top ranked leads.
func PrintSummary(w io.Writer, st *pipeline.State) {
	fmt.Fprintln(w, "\nResultados do processamento:")
	fmt.Fprintf(w, "Leads processados: %d\n", len(st.Processed))
	fmt.Fprintf(w, "Leads qualificados e priorizados: %d\n", len(st.Prioritized))

	fmt.Fprintf(w, "\nTop %d leads priorizados:\n", TopN)
	for i, b := range st.Prioritized {
		if i == TopN {
			break
		}
		var level, score string
		if p := b.Prioritization; p != nil {
			level = string(p.PriorityLevel)
			score = formatScore(p.PriorityScore)
		}
		fmt.Fprintf(w, "%d. %s (%s) - Prioridade %s (Score: %s)\n",
			i+1, b.Lead.Name, b.Lead.Company, level, score)
	}
}

// PrintTable prints one line per ranked lead of a snapshot.
func PrintTable(w io.Writer, s Snapshot) {
	if len(s.PrioritizedLeads) == 0 {
		fmt.Fprintln(w, "No results.")
		return
	}

	fmt.Fprintf(w, "%-4s %-10s %-24s %-24s %6s %-5s %6s %-7s\n",
		"#", "ID", "Name", "Company", "BANT", "Tier", "Score", "Level")
	fmt.Fprintln(w, strings.Repeat("-", 94))

	for i, e := range s.PrioritizedLeads {
		fmt.Fprintf(w, "%-4d %-10s %-24s %-24s %6.2f %-5s %6.2f %-7s\n",
			i+1,
			truncate(e.ID, 10),
			truncate(e.Name, 24),
			truncate(e.Company, 24),
			e.Qualification.OverallScore,
			e.Qualification.Tier,
			e.Prioritization.PriorityScore,
			e.Prioritization.PriorityLevel,
		)
	}
}

func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
