// Copyright Brightwork Labs Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lessoncrew/lessoncrew/internal/analysis"
	"github.com/lessoncrew/lessoncrew/internal/crew"
	"github.com/lessoncrew/lessoncrew/internal/log"
	"github.com/lessoncrew/lessoncrew/internal/notes"
	"github.com/lessoncrew/lessoncrew/internal/results"
	"github.com/lessoncrew/lessoncrew/pkg/types"
)

const previewLength = 300

var runCmd = &cobra.Command{
	Use:   "run [notes-file]",
	Short: "Generate teaching materials from a notes document",
	Long: `Run reads teaching notes from a file, from the built-in example
(--example), or interactively from the terminal, then dispatches the crew
pipeline to the configured orchestrator and writes the generated lesson plan,
quiz, and teaching-strategies guide to the results file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().Bool("example", false, "use the built-in example notes")
	runCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	runCmd.Flags().String("output", "", "results file path (overrides config)")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if err := requireAPIKey(); err != nil {
		return err
	}

	text, err := gatherNotes(cmd, args)
	if err != nil {
		return err
	}
	log.Info("notes loaded", "characters", len(text), "words", len(strings.Fields(text)))

	fmt.Fprintln(os.Stderr, "\nNotes preview:")
	fmt.Fprintln(os.Stderr, notes.Preview(text, previewLength))

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		ok, err := confirm(os.Stdin, os.Stderr)
		if err != nil {
			return err
		}
		if !ok {
			log.Info("cancelled")
			return nil
		}
	}

	cfg := pipelineConfig()

	spec, err := crew.Load(cfg.Crew)
	if err != nil {
		return err
	}
	log.Debug("crew loaded", "agents", len(spec.Agents), "tasks", len(spec.Tasks))

	orch, err := crew.NewExecOrchestrator(cfg.Orchestrator)
	if err != nil {
		return err
	}

	req, err := buildRequest(spec, text)
	if err != nil {
		return err
	}

	started := time.Now()
	log.Info("dispatching crew", "orchestrator", cfg.Orchestrator.Command)

	output, err := orch.Kickoff(cmd.Context(), req)
	if err != nil {
		return err
	}

	outPath := cfg.Output.ResultsFile
	if flagPath, _ := cmd.Flags().GetString("output"); flagPath != "" {
		outPath = flagPath
	}
	if outPath == "" {
		outPath = results.DefaultPath
	}

	run := results.NewRun(output, started)
	if err := results.Write(outPath, run); err != nil {
		return err
	}

	log.Info("results written", "path", outPath, "run", run.ID, "elapsed", time.Since(started).Round(time.Second))
	return nil
}

// buildRequest assembles the orchestrator payload for one notes document:
// the crew definition, the raw notes, the analysis records, and the rendered
// output of every tool the crew's agents are bound to.
func buildRequest(spec types.CrewSpec, text string) (types.RunRequest, error) {
	toolOutputs, err := crew.RunTools(spec, text)
	if err != nil {
		return types.RunRequest{}, err
	}
	return types.RunRequest{
		Crew:        spec,
		Notes:       text,
		Analysis:    analysis.Analyze(text),
		ToolOutputs: toolOutputs,
	}, nil
}

// gatherNotes resolves the notes text from the example flag, a file
// argument, or interactive input, in that order.
func gatherNotes(cmd *cobra.Command, args []string) (string, error) {
	if example, _ := cmd.Flags().GetBool("example"); example {
		log.Info("using built-in example notes")
		return notes.Example(), nil
	}
	if len(args) == 1 {
		log.Info("reading notes", "path", args[0])
		return notes.ReadFile(args[0])
	}

	fmt.Fprintln(os.Stderr, "Enter your teaching notes (topic, grade level, key concepts, objectives).")
	fmt.Fprintln(os.Stderr, "Finish with two blank lines or Ctrl-D.")
	return notes.ReadInteractive(os.Stdin)
}

// confirm asks for a yes/no answer on w and reads it from r.
func confirm(r *os.File, w *os.File) (bool, error) {
	fmt.Fprint(w, "\nGenerate teaching materials from these notes? This takes a few minutes. (yes/no): ")
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "yes" || answer == "y", nil
}
