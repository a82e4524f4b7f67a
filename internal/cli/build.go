package cli

import (
	"context"
	"log/slog"

	"github.com/openslides/ospackd/internal/build"
	"github.com/openslides/ospackd/internal/manifest"
	"github.com/openslides/ospackd/internal/registry"
	"github.com/openslides/ospackd/internal/runtime"
)

// Represents the 'ospackd build' command.
type BuildCmd struct {
	Recipe     string   `short:"r" help:"Recipe file to build. Defaults to the stock backend recipe." placeholder:"PATH" type:"existingfile" optional:""`
	Name       string   `short:"n" help:"Image name." default:"openslides-backend"`
	Base       string   `short:"b" help:"Base image archive. Pulled from the recipe's base reference when omitted." placeholder:"PATH" type:"existingfile" optional:""`
	Output     string   `short:"o" help:"Output directory." default:"." type:"path"`
	Context    string   `short:"c" help:"Directory resolving relative copy sources." default:"." type:"existingdir"`
	Platform   []string `short:"p" help:"Target platforms. Defaults to the host platform."`
	Containerd string   `help:"Containerd socket address." default:"${containerd_address}" placeholder:"PATH"`
	Namespace  string   `help:"Containerd namespace." default:"${containerd_namespace}"`
}

// Executes the build command.
//
// Loads the recipe, pulls the base image into the local cache when no
// archive is given, and packages the image for each requested platform.
func (c *BuildCmd) Run(ctx context.Context) error {
	rcp, err := c.loadRecipe()
	if err != nil {
		return err
	}

	if err := rcp.Validate(); err != nil {
		return err
	}

	base, err := registry.ResolveBase(ctx, c.Base, rcp.Base, c.Platform)
	if err != nil {
		return err
	}

	rt, err := runtime.New(c.Containerd, c.Namespace)
	if err != nil {
		return err
	}
	defer rt.Close()

	result, err := build.Run(ctx, rt, build.Options{
		Recipe:      rcp,
		Name:        c.Name,
		BaseArchive: base,
		Output:      c.Output,
		Root:        c.Context,
		Platforms:   c.Platform,
	})
	if err != nil {
		return err
	}

	slog.Info("build complete", "output", result.Output)
	return nil
}

// Loads the recipe from the given path, or the stock backend recipe when no
// path was given.
func (c *BuildCmd) loadRecipe() (*manifest.Recipe, error) {
	if c.Recipe == "" {
		return manifest.Default(), nil
	}
	return manifest.Load(c.Recipe)
}
