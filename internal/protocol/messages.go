package protocol

import "github.com/openslides/ospackd/internal/manifest"

// Request payload for [CmdBuild].
type BuildRequest struct {
	Recipe    *manifest.Recipe `json:"recipe,omitempty"`    // Recipe to execute. Nil means the stock backend recipe.
	Name      string           `json:"name"`                // Image name, used as a prefix for build container IDs.
	Base      string           `json:"base,omitempty"`      // Path to the base image archive. Empty means pull the recipe's base.
	Output    string           `json:"output"`              // Directory for the exported image.
	Root      string           `json:"root"`                // Build context for resolving copy sources.
	Platforms []string         `json:"platforms,omitempty"` // Target platforms. Empty means the host platform.
}

// Result payload for a successful [CmdBuild].
type BuildResult struct {
	ID     string `json:"id"`     // Daemon-assigned build identifier.
	Output string `json:"output"` // Directory containing the exported image.
}

// Request payload for [CmdPull].
type PullRequest struct {
	Ref      string `json:"ref"`                // Image reference to fetch.
	Output   string `json:"output"`             // Path for the written archive.
	Platform string `json:"platform,omitempty"` // Target platform. Empty means the host platform.
}

// Result payload for a successful [CmdPull].
type PullResult struct {
	Archive string `json:"archive"` // Path to the written archive.
	Digest  string `json:"digest"`  // Digest of the fetched image.
}

// Request payload for [CmdImageImport].
type ImageImportRequest struct {
	Path string `json:"path"` // Path to the image archive.
	Tag  string `json:"tag"`  // Tag to store the image under.
}

// Request payload for [CmdImageStart].
type ImageStartRequest struct {
	Tag string `json:"tag"` // Tag of a previously imported image.
	ID  string `json:"id"`  // Container ID to create.
}

// Request payload for [CmdImageDestroy].
type ImageDestroyRequest struct {
	Tag string `json:"tag"`
}

// Request payload for the container lifecycle commands.
type ContainerRequest struct {
	ID string `json:"id"`
}

// Result payload for [CmdContainerStatus].
type ContainerStatusResult struct {
	State ContainerState `json:"state"`
}

// Request payload for [CmdContainerExec].
type ContainerExecRequest struct {
	ID   string   `json:"id"`
	Args []string `json:"args"`
}

// Result payload for [CmdContainerExec].
type ExecResult struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// Result payload for [CmdStatus].
type StatusResult struct {
	Running bool   `json:"running"`
	Version string `json:"version"`
	Pid     int    `json:"pid"`
	Uptime  string `json:"uptime"`
	Builds  int    `json:"builds"`
}

// Result payload for [CmdError].
type ErrorResult struct {
	Message string `json:"message"`
}
