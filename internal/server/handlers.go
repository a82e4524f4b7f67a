package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/openslides/ospackd/internal"
	"github.com/openslides/ospackd/internal/build"
	"github.com/openslides/ospackd/internal/manifest"
	"github.com/openslides/ospackd/internal/protocol"
	"github.com/openslides/ospackd/internal/registry"
)

// Handles a build command.
//
// A request without a recipe builds the stock backend recipe. When no
// base archive is given, the recipe's base image is pulled into the
// local cache first.
func (s *Server) handleBuild(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.BuildRequest](payload)
	if err != nil {
		s.respondError(conn, err)
		return
	}

	rcp := req.Recipe
	if rcp == nil {
		rcp = manifest.Default()
	}

	name := req.Name
	if name == "" {
		name = "openslides-backend"
	}

	id := uuid.NewString()
	slog.Info("build accepted", "id", id, "name", name)

	base, err := registry.ResolveBase(ctx, req.Base, rcp.Base, req.Platforms)
	if err != nil {
		s.respondError(conn, err)
		return
	}

	result, err := build.Run(ctx, s.runtime, build.Options{
		Recipe:      rcp,
		Name:        name,
		BaseArchive: base,
		Output:      req.Output,
		Root:        req.Root,
		Platforms:   req.Platforms,
	})
	if err != nil {
		s.respondError(conn, err)
		return
	}

	s.mu.Lock()
	s.builds++
	s.mu.Unlock()

	s.respond(conn, protocol.CmdOK, &protocol.BuildResult{ID: id, Output: result.Output})
}

// Handles a pull command.
func (s *Server) handlePull(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.PullRequest](payload)
	if err != nil {
		s.respondError(conn, err)
		return
	}

	img, err := registry.Pull(ctx, req.Ref, req.Platform, req.Output)
	if err != nil {
		s.respondError(conn, err)
		return
	}

	s.respond(conn, protocol.CmdOK, &protocol.PullResult{Archive: img.Archive, Digest: img.Digest})
}

// Handles an image import command.
func (s *Server) handleImageImport(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.ImageImportRequest](payload)
	if err != nil {
		s.respondError(conn, err)
		return
	}

	if err := s.runtime.ImportImage(ctx, req.Path, req.Tag); err != nil {
		s.respondError(conn, err)
		return
	}

	s.respond(conn, protocol.CmdOK, nil)
}

// Handles an image start command.
//
// Starts a service container whose primary process is the image's own
// command, e.g. the backend module for images built from the stock recipe.
func (s *Server) handleImageStart(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.ImageStartRequest](payload)
	if err != nil {
		s.respondError(conn, err)
		return
	}

	if _, err := s.runtime.StartService(ctx, req.Tag, req.ID); err != nil {
		s.respondError(conn, err)
		return
	}

	s.respond(conn, protocol.CmdOK, nil)
}

// Handles an image destroy command.
func (s *Server) handleImageDestroy(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.ImageDestroyRequest](payload)
	if err != nil {
		s.respondError(conn, err)
		return
	}

	if err := s.runtime.DestroyImage(ctx, req.Tag); err != nil {
		s.respondError(conn, err)
		return
	}

	s.respond(conn, protocol.CmdOK, nil)
}

// Handles a container stop command.
func (s *Server) handleContainerStop(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.ContainerRequest](payload)
	if err != nil {
		s.respondError(conn, err)
		return
	}

	if err := s.runtime.Container(req.ID).Stop(ctx); err != nil {
		s.respondError(conn, err)
		return
	}

	s.respond(conn, protocol.CmdOK, nil)
}

// Handles a container status command.
func (s *Server) handleContainerStatus(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.ContainerRequest](payload)
	if err != nil {
		s.respondError(conn, err)
		return
	}

	state, err := s.runtime.Container(req.ID).Status(ctx)
	if err != nil {
		s.respondError(conn, err)
		return
	}

	s.respond(conn, protocol.CmdOK, &protocol.ContainerStatusResult{State: state})
}

// Handles a container destroy command.
func (s *Server) handleContainerDestroy(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.ContainerRequest](payload)
	if err != nil {
		s.respondError(conn, err)
		return
	}

	s.runtime.Container(req.ID).Destroy(ctx)
	s.respond(conn, protocol.CmdOK, nil)
}

// Handles a container exec command.
//
// Runs the given argument vector inside the container without shell
// wrapping and returns the captured output. Useful for verifying a
// packaged image, e.g. checking that the development flag is present in
// the environment.
func (s *Server) handleContainerExec(ctx context.Context, conn net.Conn, payload json.RawMessage) {
	req, err := protocol.DecodePayload[protocol.ContainerExecRequest](payload)
	if err != nil {
		s.respondError(conn, err)
		return
	}

	if len(req.Args) == 0 {
		s.respondError(conn, errors.New("exec requires a command"))
		return
	}

	result, err := s.runtime.Container(req.ID).ExecArgs(ctx, req.Args)
	if err != nil {
		s.respondError(conn, err)
		return
	}

	s.respond(conn, protocol.CmdOK, &protocol.ExecResult{
		ExitCode: result.ExitCode,
		Stdout:   result.Stdout,
		Stderr:   result.Stderr,
	})
}

// Handles a status command.
func (s *Server) handleStatus(conn net.Conn) {
	s.mu.Lock()
	builds := s.builds
	s.mu.Unlock()

	uptime := time.Since(s.startedAt).Truncate(time.Second)

	s.respond(conn, protocol.CmdOK, &protocol.StatusResult{
		Running: true,
		Version: internal.VersionString(),
		Pid:     os.Getpid(),
		Uptime:  uptime.String(),
		Builds:  builds,
	})
}

// Handles a shutdown command.
func (s *Server) handleShutdown(conn net.Conn) {
	s.respond(conn, protocol.CmdOK, nil)
	slog.Info("shutdown requested")

	go func() {
		s.Stop()
	}()
}
