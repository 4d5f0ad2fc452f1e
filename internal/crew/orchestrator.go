// Copyright Brightwork Labs Inc., 2026. All rights reserved.

package crew

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/lessoncrew/lessoncrew/pkg/types"
)

// defaultTimeout bounds one orchestrator invocation when the configuration
// does not set one. Full pipeline runs take minutes.
const defaultTimeout = 10 * time.Minute

// Orchestrator is the boundary to the external agent-orchestration
// framework. Everything behind it — agent turn-taking, prompt templating,
// language-model calls, retries — is the framework's responsibility.
type Orchestrator interface {
	// Kickoff runs the full pipeline for one notes document and returns the
	// generated teaching material.
	Kickoff(ctx context.Context, req types.RunRequest) (string, error)

	// Train runs the framework's training loop for n iterations, persisting
	// training data to filename on the framework side.
	Train(ctx context.Context, n int, filename string, req types.RunRequest) error

	// Replay re-executes a prior run from the given task ID.
	Replay(ctx context.Context, taskID string) error

	// Test evaluates the pipeline for n iterations against the named model.
	Test(ctx context.Context, n int, model string, req types.RunRequest) error
}

// executor abstracts subprocess execution so tests can avoid real binaries.
type executor interface {
	RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) RunPiped(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	return cmd.Run()
}

// ExecOrchestrator dispatches to an orchestrator executable. Each operation
// invokes the configured command with an operation argument, streams the
// RunRequest as YAML on stdin, and reads the result from stdout.
type ExecOrchestrator struct {
	cfg  types.OrchestratorConfig
	exec executor
}

// NewExecOrchestrator builds an orchestrator around the configured command.
// It verifies the command resolves on PATH so a misconfiguration surfaces
// before a run starts.
func NewExecOrchestrator(cfg types.OrchestratorConfig) (*ExecOrchestrator, error) {
	if cfg.Command == "" {
		return nil, fmt.Errorf("no orchestrator command configured")
	}
	if _, err := exec.LookPath(cfg.Command); err != nil {
		return nil, fmt.Errorf("orchestrator command %q not found: %w", cfg.Command, err)
	}
	return &ExecOrchestrator{cfg: cfg, exec: osExecutor{}}, nil
}

// Kickoff runs the pipeline and returns the orchestrator's stdout.
func (o *ExecOrchestrator) Kickoff(ctx context.Context, req types.RunRequest) (string, error) {
	out, err := o.dispatch(ctx, []string{"kickoff"}, &req)
	if err != nil {
		return "", err
	}
	if len(bytes.TrimSpace(out)) == 0 {
		return "", fmt.Errorf("orchestrator produced no output")
	}
	return string(out), nil
}

// Train dispatches a training run.
func (o *ExecOrchestrator) Train(ctx context.Context, n int, filename string, req types.RunRequest) error {
	_, err := o.dispatch(ctx, []string{"train", fmt.Sprint(n), filename}, &req)
	return err
}

// Replay re-runs a prior task. No request payload is sent; the framework
// holds the replay state.
func (o *ExecOrchestrator) Replay(ctx context.Context, taskID string) error {
	_, err := o.dispatch(ctx, []string{"replay", taskID}, nil)
	return err
}

// Test dispatches an evaluation run against the named model.
func (o *ExecOrchestrator) Test(ctx context.Context, n int, model string, req types.RunRequest) error {
	_, err := o.dispatch(ctx, []string{"test", fmt.Sprint(n), model}, &req)
	return err
}

// dispatch invokes the orchestrator command with the given operation
// arguments, piping the request (when present) as YAML on stdin.
func (o *ExecOrchestrator) dispatch(ctx context.Context, opArgs []string, req *types.RunRequest) ([]byte, error) {
	timeout := o.cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdin io.Reader
	if req != nil {
		payload, err := yaml.Marshal(req)
		if err != nil {
			return nil, fmt.Errorf("marshaling run request: %w", err)
		}
		stdin = bytes.NewReader(payload)
	}

	args := append(append([]string{}, o.cfg.Args...), opArgs...)

	var out bytes.Buffer
	if err := o.exec.RunPiped(ctx, o.cfg.Command, args, stdin, &out); err != nil {
		return nil, fmt.Errorf("orchestrator %s: %w", opArgs[0], err)
	}
	return out.Bytes(), nil
}
