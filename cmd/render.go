package main

import (
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/leadrank/internal/intake"
)

var renderInput string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Print the normalized text of each lead without calling the LLM",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := renderInput
		if input == "" {
			input = cfg.IO.Input
		}
		return renderLeads(cmd.OutOrStdout(), input, intake.LoadOptions{CSVEncoding: cfg.IO.CSVEncoding})
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderInput, "input", "", "lead file (default from io.input)")
	rootCmd.AddCommand(renderCmd)
}

func renderLeads(w io.Writer, path string, opts intake.LoadOptions) error {
	raw, err := intake.Load(path, opts)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return eris.Errorf("render: no leads found in %s", path)
	}

	for i, r := range raw {
		if r == nil {
			return eris.Errorf("render: lead %d is null", i)
		}
		lead := intake.Normalize(r)
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "=== %d. %s ===\n", i+1, lead.ID)
		fmt.Fprintln(w, intake.Render(lead))
	}
	return nil
}
