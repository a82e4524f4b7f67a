package cli

import (
	"context"
	"log/slog"

	"github.com/openslides/ospackd/internal/server"
)

// Represents the 'ospackd start' command.
type StartCmd struct {
	Containerd string `help:"Containerd socket address." default:"${containerd_address}" placeholder:"PATH"`
	Namespace  string `help:"Containerd namespace." default:"${containerd_namespace}"`
}

// Executes the start command.
//
// Starts the command server on a Unix domain socket and blocks until the
// context is cancelled (e.g. via SIGINT or SIGTERM).
func (c *StartCmd) Run(ctx context.Context) error {
	srv, err := server.New(server.Config{
		SocketPath:          RootCmd.Socket,
		ContainerdAddress:   c.Containerd,
		ContainerdNamespace: c.Namespace,
	})
	if err != nil {
		return err
	}

	if err := srv.Start(); err != nil {
		return err
	}

	slog.Info("ospackd is running")

	// Exit on a signal or on a shutdown command received over the socket.
	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case <-srv.Done():
		slog.Info("stopped")
	}

	return srv.Stop()
}
