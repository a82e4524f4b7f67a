package cli

import (
	"context"
	"log/slog"

	"github.com/openslides/ospackd/internal/registry"
)

// Represents the 'ospackd pull' command.
type PullCmd struct {
	Ref      string `arg:"" help:"Image reference, e.g. python:3.10.17-slim-bookworm."`
	Output   string `short:"o" help:"Archive destination. Defaults to the local image cache." placeholder:"PATH" type:"path" optional:""`
	Platform string `short:"p" help:"Target platform. Defaults to the host platform."`
}

// Executes the pull command.
func (c *PullCmd) Run(ctx context.Context) error {
	var img *registry.Image
	var err error

	if c.Output == "" {
		img, err = registry.PullCached(ctx, c.Ref, c.Platform)
	} else {
		img, err = registry.Pull(ctx, c.Ref, c.Platform, c.Output)
	}
	if err != nil {
		return err
	}

	slog.Info("pull complete", "archive", img.Archive, "digest", img.Digest)
	return nil
}
