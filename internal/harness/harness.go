package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/roach88/days/internal/cli"
	"github.com/roach88/days/internal/clock"
	"github.com/roach88/days/internal/config"
	"github.com/roach88/days/internal/testutil"
)

// Harness runs the steps of one scenario against one data directory.
type Harness struct {
	dir   string
	file  string // events file path
	clock clock.Clock
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh temp data directory for isolation and with
// a fixed clock for reproducible output.
//
// Execution flow:
// 1. Create the data directory, config.yaml and the seeded events file
// 2. Run each step through cli.Run and check its exit code
// 3. Capture the final events file
// 4. Evaluate assertions
func Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	dir, err := os.MkdirTemp("", "days-scenario-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	defer os.RemoveAll(dir)

	h := &Harness{dir: dir, clock: testutil.FixedClock(scenario.Today)}
	if err := h.prepare(scenario); err != nil {
		return nil, err
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		sr := h.runStep(ctx, step)
		result.AddStep(sr)
		if sr.Exit != step.Exit {
			result.AddError(fmt.Sprintf("steps[%d] %v: exit code %d, want %d (stderr: %s)", i, step.Args, sr.Exit, step.Exit, sr.Stderr))
		}
	}

	data, err := os.ReadFile(h.file)
	switch {
	case err == nil:
		content := string(data)
		result.File = &content
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to read events file: %w", err)
	}

	for _, errMsg := range EvaluateAssertions(result, scenario) {
		result.AddError(errMsg)
	}

	return result, nil
}

func (h *Harness) prepare(scenario *Scenario) error {
	if scenario.Config != "" {
		if err := os.WriteFile(filepath.Join(h.dir, config.FileName), []byte(scenario.Config), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	// Some scenarios exercise an invalid config; the events file then
	// keeps its default name.
	h.file = filepath.Join(h.dir, config.DefaultFile)
	if cfg, err := config.Load(h.dir); err == nil {
		h.file = cfg.EventsPath()
	}

	if scenario.Seed != nil {
		if err := os.WriteFile(h.file, []byte(*scenario.Seed), 0o644); err != nil {
			return fmt.Errorf("failed to seed events file: %w", err)
		}
	}
	return nil
}

func (h *Harness) runStep(ctx context.Context, step Step) StepResult {
	var stdout, stderr bytes.Buffer
	args := append([]string{"--dir", h.dir}, step.Args...)
	code := cli.Run(ctx, &cli.RootOptions{Clock: h.clock}, args, &stdout, &stderr)
	return StepResult{
		Args:   step.Args,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
		Exit:   code,
	}
}
