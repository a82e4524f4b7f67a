package build

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openslides/ospackd/internal/manifest"
	"github.com/openslides/ospackd/internal/runtime"
)

// Executes a list of steps in order against the build container.
func executeSteps(ctx context.Context, ctr *runtime.Container, steps []manifest.Step, state *stepState, buildCtx string) error {
	for i, step := range steps {
		if err := executeStep(ctx, ctr, step, state, buildCtx); err != nil {
			return fmt.Errorf("%w: step %d: %w", ErrBuild, i+1, err)
		}
	}
	return nil
}

// Executes a single step, dispatching to operation execution or state
// mutation depending on the step's fields.
func executeStep(ctx context.Context, ctr *runtime.Container, step manifest.Step, state *stepState, buildCtx string) error {
	// Operation with optional scoped modifiers.
	if step.Run != "" || step.Copy != "" {
		return executeOperation(ctx, ctr, step, state, buildCtx)
	}

	// Standalone modifier(s): persist in state.
	state.apply(step)
	return nil
}

// Executes a run or copy operation with scoped modifier overrides.
//
// Step-level modifiers override the persistent state for this operation only.
// The persistent state is not modified.
func executeOperation(ctx context.Context, ctr *runtime.Container, step manifest.Step, state *stepState, buildCtx string) error {
	resolved := state.resolve(step)

	if resolved.workdir != "" {
		if err := ctr.MkdirAll(ctx, resolved.workdir); err != nil {
			return err
		}
	}

	switch {
	case step.Run != "":
		slog.Debug("run", "command", step.Run, "shell", resolved.shell)
		result, err := ctr.Exec(ctx, resolved.shell, step.Run, resolved.environ(), resolved.workdir)
		if err != nil {
			return err
		}
		if result.ExitCode != 0 {
			return fmt.Errorf("%w: exit code %d: %s", ErrCommandFailed, result.ExitCode, result.Stderr)
		}

	case step.Copy != "":
		if err := executeCopy(ctx, ctr, step.Copy, resolved.workdir, buildCtx); err != nil {
			return err
		}
	}

	return nil
}
