package manifest

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRecipe = errors.New("invalid recipe")

// Checks the recipe for literal correctness.
//
// Validation is shallow on purpose: paths and commands are opaque to the
// builder, so only structural mistakes are caught here. Anything deeper
// (a missing file, a failing install) aborts the build itself.
func (r *Recipe) Validate() error {
	if strings.TrimSpace(r.Base) == "" {
		return fmt.Errorf("%w: base image reference is required", ErrInvalidRecipe)
	}

	if len(r.Entrypoint) == 0 && len(r.Cmd) == 0 {
		return fmt.Errorf("%w: either cmd or entrypoint is required", ErrInvalidRecipe)
	}

	for _, p := range r.Expose {
		if p < 1 || p > 65535 {
			return fmt.Errorf("%w: port %d out of range", ErrInvalidRecipe, p)
		}
	}

	for _, pkg := range r.Packages {
		if strings.TrimSpace(pkg) == "" {
			return fmt.Errorf("%w: empty package name", ErrInvalidRecipe)
		}
		if strings.ContainsAny(pkg, " \t\n") {
			return fmt.Errorf("%w: package name %q contains whitespace", ErrInvalidRecipe, pkg)
		}
	}

	for i, step := range r.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("%w: step %d: %w", ErrInvalidRecipe, i+1, err)
		}
	}

	for key := range r.Env {
		if strings.TrimSpace(key) == "" || strings.Contains(key, "=") {
			return fmt.Errorf("%w: invalid environment key %q", ErrInvalidRecipe, key)
		}
	}

	return nil
}

// Checks a single step for structural correctness.
func (s Step) validate() error {
	if s.Run != "" && s.Copy != "" {
		return errors.New("run and copy are mutually exclusive")
	}

	if s.Copy != "" {
		if parts := strings.Fields(s.Copy); len(parts) != 2 {
			return fmt.Errorf("copy %q: expected source and destination", s.Copy)
		}
	}

	if s.Run == "" && s.Copy == "" && s.Workdir == "" && s.Shell == "" && len(s.Env) == 0 {
		return errors.New("empty step")
	}

	return nil
}
