package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/openslides/ospackd/internal/manifest"
	"github.com/openslides/ospackd/internal/paths"
	"github.com/openslides/ospackd/internal/runtime"
)

// Holds shared state for building a recipe across platforms.
type builder struct {
	rt          *runtime.Runtime     // Container runtime for image and container operations.
	recipe      *manifest.Recipe     // Recipe being executed.
	name        string               // Image name, used as a prefix for container IDs.
	baseArchive string               // Path to the base image archive.
	output      string               // Output directory for the final build artifact.
	context     string               // Build context, root for resolving copy sources.
	platforms   []string             // Target platforms to build for.
	containers  []*runtime.Container // Build containers across all platforms, destroyed after the build completes.
}

// Creates a new [builder] from the given options.
func newBuilder(rt *runtime.Runtime, opts Options) *builder {
	return &builder{
		rt:          rt,
		recipe:      opts.Recipe,
		name:        opts.Name,
		baseArchive: opts.BaseArchive,
		output:      opts.Output,
		context:     opts.Root,
		platforms:   opts.Platforms,
	}
}

// Builds the recipe end-to-end against the container runtime.
//
// Each target platform is built independently from the base archive. All
// build containers are destroyed when the build completes, successful or
// not.
func (b *builder) build(ctx context.Context) (*Result, error) {
	defer b.destroyContainers(ctx)

	for _, platform := range b.platforms {
		if err := b.buildPlatform(ctx, platform); err != nil {
			return nil, fmt.Errorf("%w: platform %s: %w", ErrBuild, platform, err)
		}
	}

	return &Result{Output: b.output}, nil
}

// Builds the recipe for a single platform.
//
// Runs the full sequence: start a container from the base image, install
// the OS packages, create the working directory, apply the steps in
// declaration order, then stop the container and export it with the
// recipe's image settings.
func (b *builder) buildPlatform(ctx context.Context, platform string) error {
	slog.Info("building platform", "platform", platform)

	output := b.platformOutput(platform)
	if err := os.MkdirAll(output, paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	ctr, err := b.rt.StartContainer(ctx, b.baseArchive, b.containerID(platform), platform)
	if err != nil {
		return err
	}
	b.containers = append(b.containers, ctr)

	if err := b.installPackages(ctx, ctr); err != nil {
		return err
	}

	state := newStepState()
	if b.recipe.Workdir != "" {
		if err := ctr.MkdirAll(ctx, b.recipe.Workdir); err != nil {
			return err
		}
		state.workdir = b.recipe.Workdir
	}

	if err := executeSteps(ctx, ctr, b.recipe.Steps, state, b.context); err != nil {
		return err
	}

	if err := ctr.Stop(ctx); err != nil {
		return err
	}

	return ctr.Export(ctx, output, b.imageSettings())
}

// Returns the image config settings declared by the recipe.
func (b *builder) imageSettings() runtime.ImageSettings {
	return runtime.ImageSettings{
		Entrypoint:   b.recipe.Entrypoint,
		Cmd:          b.recipe.Cmd,
		Env:          b.recipe.Env,
		WorkingDir:   b.recipe.Workdir,
		ExposedPorts: b.recipe.ExposedPorts(),
	}
}

// Destroys all build containers.
func (b *builder) destroyContainers(ctx context.Context) {
	for _, ctr := range b.containers {
		ctr.Destroy(ctx)
	}
}

// Returns a unique container ID for a platform build, scoped to this image.
func (b *builder) containerID(platform string) string {
	return fmt.Sprintf("%s-%s-build", b.name, platformSlug(platform))
}

// Returns the output directory for a specific platform.
//
// When building for a single platform, the output directory is left as-is
// to preserve the {output}/image.tar convention. For multi-platform
// builds, each platform gets a subdirectory (e.g., {output}/linux-amd64).
func (b *builder) platformOutput(platform string) string {
	if len(b.platforms) == 1 {
		return b.output
	}
	return filepath.Join(b.output, platformSlug(platform))
}

// Converts a platform string to a filesystem-safe slug.
//
// Replaces slashes with dashes (e.g., "linux/amd64" becomes "linux-amd64").
func platformSlug(platform string) string {
	return strings.ReplaceAll(platform, "/", "-")
}
