package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	goruntime "runtime"

	"github.com/openslides/ospackd/internal/manifest"
	"github.com/openslides/ospackd/internal/paths"
	"github.com/openslides/ospackd/internal/runtime"
)

// Controls recipe execution.
type Options struct {
	Recipe      *manifest.Recipe // Recipe to execute.
	Name        string           // Image name, used as a prefix for build container IDs.
	BaseArchive string           // Path to the base image archive.
	Output      string           // Directory for the exported image.
	Root        string           // Build context, for resolving copy sources.
	Platforms   []string         // Target platforms (e.g., ["linux/amd64"]). Defaults to host.
}

// Returned after successful recipe execution.
type Result struct {
	Output string // Directory containing the exported image.
}

// Executes a recipe against the container runtime.
//
// Each platform is built independently from the same base archive. The
// exported image lands in the output directory, or in per-platform
// subdirectories for multi-platform builds.
func Run(ctx context.Context, rt *runtime.Runtime, opts Options) (*Result, error) {
	if len(opts.Platforms) == 0 {
		opts.Platforms = []string{"linux/" + goruntime.GOARCH}
	}

	if err := opts.Recipe.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuild, err)
	}

	slog.Info("executing recipe",
		"name", opts.Name,
		"base", opts.Recipe.Base,
		"output", opts.Output,
		"steps", len(opts.Recipe.Steps),
		"platforms", opts.Platforms,
	)

	if err := os.MkdirAll(opts.Output, paths.DefaultDirMode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	return newBuilder(rt, opts).build(ctx)
}
