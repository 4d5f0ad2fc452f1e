// Copyright Brightwork Labs Inc., 2026. All rights reserved.

package types

import "time"

// OrchestratorConfig holds settings for dispatching to the external
// agent-orchestration framework.
type OrchestratorConfig struct {
	// Command is the orchestrator executable invoked for kickoff, train,
	// replay, and test runs. Arguments are appended per operation.
	Command string `json:"command" yaml:"command" validate:"required"`

	// Args are extra arguments prepended before the operation arguments.
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`

	// Timeout bounds a single orchestrator invocation (default 10m).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// CrewConfig holds the file locations of the declarative pipeline definition.
type CrewConfig struct {
	// AgentsFile is the path to agents.yaml. Empty means the embedded
	// defaults.
	AgentsFile string `json:"agents_file,omitempty" yaml:"agents_file,omitempty"`

	// TasksFile is the path to tasks.yaml. Empty means the embedded defaults.
	TasksFile string `json:"tasks_file,omitempty" yaml:"tasks_file,omitempty"`
}

// OutputConfig holds settings for the results file.
type OutputConfig struct {
	// ResultsFile is where generated material is written
	// (default "output/lessoncrew_results.txt").
	ResultsFile string `json:"results_file" yaml:"results_file"`
}

// PipelineConfig groups all configuration for the CLI.
type PipelineConfig struct {
	Orchestrator OrchestratorConfig `json:"orchestrator" yaml:"orchestrator"`
	Crew         CrewConfig         `json:"crew" yaml:"crew"`
	Output       OutputConfig       `json:"output" yaml:"output"`
}
