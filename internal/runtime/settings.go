package runtime

import (
	"sort"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// Metadata recorded in an exported image's config.
//
// These fields correspond to the declarative parts of a packaging recipe:
// they do not change the filesystem, only how containers started from the
// image behave. Zero-valued fields leave the base image's config untouched.
type ImageSettings struct {
	Entrypoint   []string          // OCI entrypoint override.
	Cmd          []string          // Default command for containers.
	Env          map[string]string // Environment defaults, merged over the base image's env.
	WorkingDir   string            // Working directory for the container process.
	ExposedPorts []string          // Advisory port declarations in "port/proto" form.
}

// Applies the settings to an OCI image config.
//
// Environment entries are merged over the base env and sorted so that
// rebuilds from unchanged inputs produce identical config blobs. Setting
// an entrypoint clears the base image's command unless the settings carry
// their own, mirroring how a derived image redefines its process.
func (s ImageSettings) apply(config *ocispec.Image) {
	if len(s.Entrypoint) > 0 {
		config.Config.Entrypoint = s.Entrypoint
		config.Config.Cmd = nil
	}
	if len(s.Cmd) > 0 {
		config.Config.Cmd = s.Cmd
	}
	if s.WorkingDir != "" {
		config.Config.WorkingDir = s.WorkingDir
	}

	if len(s.Env) > 0 {
		merged := mergeEnv(config.Config.Env, s.environ())
		sort.Strings(merged)
		config.Config.Env = merged
	}

	if len(s.ExposedPorts) > 0 {
		if config.Config.ExposedPorts == nil {
			config.Config.ExposedPorts = make(map[string]struct{}, len(s.ExposedPorts))
		}
		for _, port := range s.ExposedPorts {
			config.Config.ExposedPorts[port] = struct{}{}
		}
	}
}

// Returns the env map as a sorted list of "key=value" strings.
func (s ImageSettings) environ() []string {
	env := make([]string, 0, len(s.Env))
	for k, v := range s.Env {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)
	return env
}
