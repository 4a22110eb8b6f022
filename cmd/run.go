package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/leadrank/internal/api"
	"github.com/sells-group/leadrank/internal/intake"
	"github.com/sells-group/leadrank/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Qualify, prioritize and recommend approaches for a lead file",
	Long: `Loads leads from a JSON, YAML, CSV or XLSX file, runs the pipeline
(process, qualify, prioritize, recommend), prints a summary and writes the
ranked results as JSON. Nothing is written when the run fails.`,
	Example: `  leadrank run
  leadrank run --input data/leads.csv --output out.json --csv ranking.csv
  leadrank run --concurrency 4 --xlsx ranking.xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		applyRunOverrides(cmd)

		env, err := initPipeline(cmd.Context(), "run")
		if err != nil {
			return err
		}
		defer env.Tracker.LogSummary()

		return runLeads(cmd.Context(), cmd.OutOrStdout(), env.Pipeline, runOptions{
			Input:       cfg.IO.Input,
			Output:      cfg.IO.Output,
			CSVEncoding: cfg.IO.CSVEncoding,
			CSVPath:     runCSV,
			XLSXPath:    runXLSX,
		})
	},
}

var (
	runCSV  string
	runXLSX string
)

func init() {
	f := runCmd.Flags()
	f.String("input", "", "lead file (default from io.input)")
	f.String("output", "", "results JSON file (default from io.output)")
	f.Int("concurrency", 0, "leads processed in parallel per stage (default from pipeline.concurrency)")
	f.StringVar(&runCSV, "csv", "", "also export the ranking as CSV to this path")
	f.StringVar(&runXLSX, "xlsx", "", "also export the ranking as XLSX to this path")
	rootCmd.AddCommand(runCmd)
}

// applyRunOverrides copies explicitly set flags over the loaded config.
func applyRunOverrides(cmd *cobra.Command) {
	f := cmd.Flags()
	if f.Changed("input") {
		cfg.IO.Input, _ = f.GetString("input")
	}
	if f.Changed("output") {
		cfg.IO.Output, _ = f.GetString("output")
	}
	if f.Changed("concurrency") {
		cfg.Pipeline.Concurrency, _ = f.GetInt("concurrency")
	}
}

type runOptions struct {
	Input       string
	Output      string
	CSVEncoding string
	CSVPath     string
	XLSXPath    string
}

// runLeads loads, ranks and persists one batch of leads.
func runLeads(ctx context.Context, w io.Writer, ranker api.Ranker, opts runOptions) error {
	fmt.Fprintln(w, "Iniciando Sistema de Qualificação e Priorização de Leads...")

	raw := intake.LoadAll(opts.Input, intake.LoadOptions{CSVEncoding: opts.CSVEncoding})
	if len(raw) == 0 {
		fmt.Fprintln(w, "Nenhum lead encontrado. Verifique o arquivo de dados.")
		return eris.Errorf("run: no leads found in %s", opts.Input)
	}
	fmt.Fprintf(w, "Carregados %d leads para processamento.\n", len(raw))

	st := ranker.Run(ctx, raw)
	if st.Failed() {
		fmt.Fprintf(w, "Erro durante a execução: %s\n", st.Error)
		return eris.Errorf("run: %s", st.Error)
	}

	report.PrintSummary(w, st)

	snap := report.Build(st)
	if err := report.WriteJSON(opts.Output, snap); err != nil {
		return err
	}
	fmt.Fprintf(w, "Resultados salvos em %s\n", opts.Output)

	if opts.CSVPath != "" {
		if err := report.WriteCSVFile(opts.CSVPath, snap); err != nil {
			return err
		}
		fmt.Fprintf(w, "CSV salvo em %s\n", opts.CSVPath)
	}
	if opts.XLSXPath != "" {
		if err := report.WriteXLSX(opts.XLSXPath, snap); err != nil {
			return err
		}
		fmt.Fprintf(w, "XLSX salvo em %s\n", opts.XLSXPath)
	}
	return nil
}
