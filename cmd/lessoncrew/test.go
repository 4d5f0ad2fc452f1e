// Copyright Brightwork Labs Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lessoncrew/lessoncrew/internal/crew"
	"github.com/lessoncrew/lessoncrew/internal/log"
)

var testCmd = &cobra.Command{
	Use:   "test <iterations> <model>",
	Short: "Evaluate the pipeline against a model",
	Long: `Test dispatches an evaluation run to the orchestration framework for the
given number of iterations against the named model, using the fixed training
notes so results are comparable.`,
	Args: cobra.ExactArgs(2),
	RunE: runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	if err := requireAPIKey(); err != nil {
		return err
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return fmt.Errorf("iterations must be a positive integer, got %q", args[0])
	}
	model := args[1]

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

	log.Info("testing", "iterations", n, "model", model)
	if err := orch.Test(cmd.Context(), n, model, req); err != nil {
		return err
	}
	log.Info("test completed")
	return nil
}
