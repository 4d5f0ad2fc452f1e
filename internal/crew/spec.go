// Copyright Brightwork Labs Inc., 2026. All rights reserved.

// Package crew loads and validates the declarative pipeline definition
// (agent personas and task prompts), exposes the analysis tools behind a
// registry, and dispatches runs to the external orchestration framework.
// The framework itself, the language-model client, and prompt templating
// all live on the other side of the Orchestrator boundary.
package crew

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"go.yaml.in/yaml/v3"

	"github.com/lessoncrew/lessoncrew/pkg/types"
)

//go:embed config/agents.yaml
var defaultAgentsYAML []byte

//go:embed config/tasks.yaml
var defaultTasksYAML []byte

// agentsFile is the on-disk shape of agents.yaml.
type agentsFile struct {
	Agents []types.AgentSpec `yaml:"agents"`
}

// tasksFile is the on-disk shape of tasks.yaml. Task order is execution
// order under the sequential process.
type tasksFile struct {
	Process types.Process    `yaml:"process"`
	Tasks   []types.TaskSpec `yaml:"tasks"`
}

// Load builds a CrewSpec from the configured agents and tasks files. An
// empty path falls back to the embedded defaults, which reproduce the
// lesson-plan / quiz / teaching-strategy pipeline. The returned spec is
// validated.
func Load(cfg types.CrewConfig) (types.CrewSpec, error) {
	agentsData, err := readOrDefault(cfg.AgentsFile, defaultAgentsYAML)
	if err != nil {
		return types.CrewSpec{}, fmt.Errorf("reading agents file: %w", err)
	}
	tasksData, err := readOrDefault(cfg.TasksFile, defaultTasksYAML)
	if err != nil {
		return types.CrewSpec{}, fmt.Errorf("reading tasks file: %w", err)
	}

	var af agentsFile
	if err := yaml.Unmarshal(agentsData, &af); err != nil {
		return types.CrewSpec{}, fmt.Errorf("parsing agents file: %w", err)
	}
	var tf tasksFile
	if err := yaml.Unmarshal(tasksData, &tf); err != nil {
		return types.CrewSpec{}, fmt.Errorf("parsing tasks file: %w", err)
	}

	spec := types.CrewSpec{
		Agents:  af.Agents,
		Tasks:   tf.Tasks,
		Process: tf.Process,
	}
	if spec.Process == "" {
		spec.Process = types.ProcessSequential
	}

	if err := Validate(spec); err != nil {
		return types.CrewSpec{}, err
	}
	return spec, nil
}

// readOrDefault reads path when set, otherwise returns the embedded fallback.
func readOrDefault(path string, fallback []byte) ([]byte, error) {
	if path == "" {
		return fallback, nil
	}
	return os.ReadFile(path)
}

// Validate checks a CrewSpec for structural errors: missing required fields,
// duplicate names, tasks bound to unknown agents, context references to
// unknown or later tasks, and agents bound to unregistered tools.
func Validate(spec types.CrewSpec) error {
	if err := validator.New().Struct(spec); err != nil {
		return fmt.Errorf("invalid crew definition: %w", err)
	}

	agents := make(map[string]bool, len(spec.Agents))
	for _, a := range spec.Agents {
		if agents[a.Name] {
			return fmt.Errorf("duplicate agent %q", a.Name)
		}
		agents[a.Name] = true
		for _, tool := range a.Tools {
			if !Registered(tool) {
				return fmt.Errorf("agent %q references unknown tool %q", a.Name, tool)
			}
		}
	}

	seen := make(map[string]bool, len(spec.Tasks))
	for _, t := range spec.Tasks {
		if seen[t.Name] {
			return fmt.Errorf("duplicate task %q", t.Name)
		}
		if !agents[t.Agent] {
			return fmt.Errorf("task %q references unknown agent %q", t.Name, t.Agent)
		}
		for _, ctx := range t.Context {
			if !seen[ctx] {
				return fmt.Errorf("task %q lists context task %q that is not declared earlier", t.Name, ctx)
			}
		}
		seen[t.Name] = true
	}

	return nil
}
