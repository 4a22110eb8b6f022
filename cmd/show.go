package main

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/leadrank/internal/report"
)

var showLead string

var showCmd = &cobra.Command{
	Use:   "show <results.json>",
	Short: "Print a ranking table from a results file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showResults(cmd.OutOrStdout(), args[0], showLead)
	},
}

func init() {
	showCmd.Flags().StringVar(&showLead, "lead", "", "print the full entry for this lead id")
	rootCmd.AddCommand(showCmd)
}

func showResults(w io.Writer, path, leadID string) error {
	snap, err := report.ReadJSON(path)
	if err != nil {
		return err
	}

	if leadID == "" {
		report.PrintTable(w, snap)
		return nil
	}

	for _, e := range snap.PrioritizedLeads {
		if e.ID == leadID {
			printEntry(w, e)
			return nil
		}
	}
	return eris.Errorf("show: lead %q not found in %s", leadID, path)
}

func printEntry(w io.Writer, e report.Entry) {
	q, p := e.Qualification, e.Prioritization
	fmt.Fprintf(w, "ID:       %s\n", e.ID)
	fmt.Fprintf(w, "Name:     %s\n", e.Name)
	fmt.Fprintf(w, "Company:  %s\n", e.Company)
	fmt.Fprintf(w, "Tier:     %s (%.2f)\n", q.Tier, q.OverallScore)
	fmt.Fprintf(w, "Priority: %s (%.2f)\n", p.PriorityLevel, p.PriorityScore)

	fmt.Fprintln(w, "\nBANT:")
	fmt.Fprintf(w, "  %-10s %.2f\n", "budget", q.BudgetScore)
	fmt.Fprintf(w, "  %-10s %.2f\n", "authority", q.AuthorityScore)
	fmt.Fprintf(w, "  %-10s %.2f\n", "need", q.NeedScore)
	fmt.Fprintf(w, "  %-10s %.2f\n", "timeline", q.TimelineScore)

	fmt.Fprintln(w, "\nFactors:")
	fmt.Fprintf(w, "  %-14s %.2f\n", "qualification", p.Factors.QualificationScore)
	fmt.Fprintf(w, "  %-14s %.2f\n", "recency", p.Factors.RecencyScore)
	fmt.Fprintf(w, "  %-14s %.2f\n", "engagement", p.Factors.EngagementScore)

	if q.Reasoning != "" {
		fmt.Fprintf(w, "\nReasoning:\n%s\n", q.Reasoning)
	}
	if e.RecommendedApproach != "" {
		fmt.Fprintf(w, "\nRecommended approach:\n%s\n", e.RecommendedApproach)
	}
}
