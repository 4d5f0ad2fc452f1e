// Copyright Brightwork Labs Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lessoncrew/lessoncrew/internal/crew"
	"github.com/lessoncrew/lessoncrew/internal/log"
)

// trainingNotes is the fixed document used for training and test runs, so
// iterations are comparable across invocations.
const trainingNotes = `Topic: Introduction to Fractions
Grade Level: 4th Grade Mathematics
Key Concepts:
- Numerator and denominator
- Parts of a whole
Learning Objectives:
- Students will understand numerator and denominator
- Students will compare fractions
`

var trainCmd = &cobra.Command{
	Use:   "train <iterations> <filename>",
	Short: "Run the orchestrator's training loop",
	Long: `Train dispatches a training run to the orchestration framework for the
given number of iterations. Training data is persisted to the given filename
on the framework side.`,
	Args: cobra.ExactArgs(2),
	RunE: runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	if err := requireAPIKey(); err != nil {
		return err
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return fmt.Errorf("iterations must be a positive integer, got %q", args[0])
	}
	filename := args[1]

	cfg := pipelineConfig()
	spec, err := crew.Load(cfg.Crew)
	if err != nil {
		return err
	}
	orch, err := crew.NewExecOrchestrator(cfg.Orchestrator)
	if err != nil {
		return err
	}

	req, err := buildRequest(spec, trainingNotes)
	if err != nil {
		return err
	}

	log.Info("training", "iterations", n, "filename", filename)
	if err := orch.Train(cmd.Context(), n, filename, req); err != nil {
		return err
	}
	log.Info("training completed")
	return nil
}
