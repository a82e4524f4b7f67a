package cli

import (
	"context"
	"log/slog"

	"github.com/openslides/ospackd/internal/runtime"
)

// Represents the 'ospackd run' command.
type RunCmd struct {
	Archive    string `arg:"" help:"Packaged image archive to run." type:"existingfile"`
	Tag        string `short:"t" help:"Tag for the imported image." default:"openslides-backend:latest"`
	ID         string `help:"Container identifier." default:"openslides-backend"`
	Containerd string `help:"Containerd socket address." default:"${containerd_address}" placeholder:"PATH"`
	Namespace  string `help:"Containerd namespace." default:"${containerd_namespace}"`
}

// Executes the run command.
//
// Imports the archive under the given tag and starts a service container
// running the image's own command.
func (c *RunCmd) Run(ctx context.Context) error {
	rt, err := runtime.New(c.Containerd, c.Namespace)
	if err != nil {
		return err
	}
	defer rt.Close()

	if err := rt.ImportImage(ctx, c.Archive, c.Tag); err != nil {
		return err
	}

	if _, err := rt.StartService(ctx, c.Tag, c.ID); err != nil {
		return err
	}

	slog.Info("service started", "id", c.ID, "tag", c.Tag)
	return nil
}
