// Copyright Brightwork Labs Inc., 2026. All rights reserved.

// Package results writes generated teaching material to the flat results
// file. This file is the pipeline's only persistent output.
package results

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lessoncrew/lessoncrew/pkg/types"
)

// DefaultPath is where results land when the configuration does not
// override it.
const DefaultPath = "output/lessoncrew_results.txt"

const banner = "================================================================================"

// NewRun stamps orchestrator output with a fresh run ID and start time.
func NewRun(output string, startedAt time.Time) types.Run {
	return types.Run{
		ID:        uuid.NewString(),
		StartedAt: startedAt,
		Output:    output,
	}
}

// Write renders the run to path in the banner-framed flat format, creating
// parent directories as needed.
func Write(path string, run types.Run) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString("LESSONCREW - RESULTS\n")
	fmt.Fprintf(&b, "Run: %s\n", run.ID)
	fmt.Fprintf(&b, "Started: %s\n", run.StartedAt.Format(time.RFC3339))
	b.WriteString(banner + "\n\n")
	b.WriteString(run.Output)
	b.WriteString("\n\n" + banner + "\n")
	b.WriteString("End of Results\n")
	b.WriteString(banner + "\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing results file: %w", err)
	}
	return nil
}
