// Copyright Brightwork Labs Inc., 2026. All rights reserved.

package types

import "time"

// Process selects how the orchestrator sequences tasks.
type Process string

const (
	// ProcessSequential runs tasks in declaration order, feeding each task's
	// output to the tasks that list it as context.
	ProcessSequential Process = "sequential"
)

// AgentSpec declares one agent persona for the crew. The orchestration
// framework interprets the persona; this side only declares and validates it.
type AgentSpec struct {
	// Name identifies the agent for task bindings (e.g. "lesson_plan_agent").
	Name string `json:"name" yaml:"name" validate:"required"`

	// Role is the agent's short role title.
	Role string `json:"role" yaml:"role" validate:"required"`

	// Goal states what the agent is trying to produce.
	Goal string `json:"goal" yaml:"goal" validate:"required"`

	// Backstory is the persona text that frames the agent's answers.
	Backstory string `json:"backstory" yaml:"backstory"`

	// Tools lists registry names of tools the agent may call.
	Tools []string `json:"tools,omitempty" yaml:"tools,omitempty"`

	// AllowDelegation permits the agent to hand work to other agents.
	AllowDelegation bool `json:"allow_delegation" yaml:"allow_delegation"`
}

// TaskSpec declares one task in the pipeline.
type TaskSpec struct {
	// Name identifies the task (e.g. "generate_lesson_plan").
	Name string `json:"name" yaml:"name" validate:"required"`

	// Description is the task prompt handed to the orchestrator. Placeholders
	// such as {notes} are the orchestrator's concern, not ours.
	Description string `json:"description" yaml:"description" validate:"required"`

	// ExpectedOutput describes the deliverable format.
	ExpectedOutput string `json:"expected_output" yaml:"expected_output" validate:"required"`

	// Agent names the AgentSpec that executes this task.
	Agent string `json:"agent" yaml:"agent" validate:"required"`

	// Context lists earlier tasks whose outputs feed this one.
	Context []string `json:"context,omitempty" yaml:"context,omitempty"`
}

// CrewSpec is the full declarative pipeline: agents, tasks, and process.
type CrewSpec struct {
	Agents  []AgentSpec `json:"agents" yaml:"agents" validate:"required,min=1,dive"`
	Tasks   []TaskSpec  `json:"tasks" yaml:"tasks" validate:"required,min=1,dive"`
	Process Process     `json:"process" yaml:"process" validate:"required,oneof=sequential"`
}

// RunRequest is the record handed to the external orchestrator for one run.
type RunRequest struct {
	// Crew is the declarative pipeline definition.
	Crew CrewSpec `json:"crew" yaml:"crew"`

	// Notes is the raw notes document text.
	Notes string `json:"notes" yaml:"notes"`

	// Analysis is the pre-digested tool output for the notes, so the
	// orchestrator can seed prompts without calling back into this process.
	Analysis Analysis `json:"analysis" yaml:"analysis"`

	// ToolOutputs maps tool names to their rendered output for these notes,
	// covering every tool some agent in the crew is bound to.
	ToolOutputs map[string]string `json:"tool_outputs,omitempty" yaml:"tool_outputs,omitempty"`
}

// Run is the outcome of one orchestrator invocation.
type Run struct {
	// ID is a unique identifier for the run, usable with the replay command.
	ID string `json:"id" yaml:"id"`

	// StartedAt is when the run was dispatched.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Output is the generated teaching material returned by the orchestrator.
	Output string `json:"output" yaml:"output"`
}
