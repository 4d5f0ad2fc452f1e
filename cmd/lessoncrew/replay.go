// Copyright Brightwork Labs Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/lessoncrew/lessoncrew/internal/crew"
	"github.com/lessoncrew/lessoncrew/internal/log"
)

var replayCmd = &cobra.Command{
	Use:   "replay <task-id>",
	Short: "Replay a prior pipeline run from a specific task",
	Long: `Replay asks the orchestration framework to re-execute a prior run
starting from the given task ID. The framework holds the replay state; no
notes are sent.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	if err := requireAPIKey(); err != nil {
		return err
	}

	orch, err := crew.NewExecOrchestrator(pipelineConfig().Orchestrator)
	if err != nil {
		return err
	}

	log.Info("replaying", "task", args[0])
	if err := orch.Replay(cmd.Context(), args[0]); err != nil {
		return err
	}
	log.Info("replay completed")
	return nil
}
