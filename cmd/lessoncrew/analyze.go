// Copyright Brightwork Labs Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/lessoncrew/lessoncrew/internal/analysis"
	"github.com/lessoncrew/lessoncrew/internal/notes"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [notes-file]",
	Short: "Run the local analysis tools on a notes document",
	Long: `Analyze runs the two deterministic analysis tools — structured field
extraction and grade-level complexity estimation — on a notes document and
prints the result. No orchestrator or API key is needed; this is the local,
offline view of what the agents will receive.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().Bool("example", false, "use the built-in example notes")
	analyzeCmd.Flags().String("format", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var text string
	var err error

	if example, _ := cmd.Flags().GetBool("example"); example {
		text = notes.Example()
	} else if len(args) == 1 {
		text, err = notes.ReadFile(args[0])
		if err != nil {
			return err
		}
	} else {
		return fmt.Errorf("provide a notes file or --example")
	}

	result := analysis.Analyze(text)

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshaling analysis: %w", err)
		}
		os.Stdout.Write(data)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("marshaling analysis: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q: use yaml or json", format)
	}
	return nil
}
