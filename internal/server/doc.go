// Package server implements the ospackd daemon.
//
// The daemon listens on a Unix domain socket for JSON-encoded commands
// from the ospack CLI. Each connection carries a single request-response
// exchange: the client sends a newline-delimited JSON envelope, the
// server dispatches the command, and writes the result back before
// closing the connection.
//
// Supported commands cover the packaging lifecycle: pulling base images,
// building recipes, importing and starting built images, managing the
// resulting containers, querying daemon status, and initiating shutdown.
// Builds are delegated to the build package, which in turn uses the
// runtime package for container operations against containerd.
//
// Example usage:
//
//	srv, err := server.New(server.Config{
//	    ContainerdAddress:   "/run/containerd/containerd.sock",
//	    ContainerdNamespace: "ospackd",
//	})
//	if err != nil {
//	    return err
//	}
//
//	if err := srv.Start(); err != nil {
//	    return err
//	}
//	defer srv.Stop()
//
//	srv.Wait()
package server
