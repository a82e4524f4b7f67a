package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Describes how to package a service into an OCI image.
//
// The zero value is not buildable; a recipe needs at least a base image
// and a command. Fields mirror the sequential build operations: resolve
// the base, install OS packages, establish the working directory, apply
// the steps in declaration order, then record the advisory metadata
// (ports, environment, command) in the image config.
type Recipe struct {
	Base       string            `yaml:"base"`       // Pinned base image reference (e.g. "docker.io/library/python:3.10.17-slim-bookworm").
	Packages   []string          `yaml:"packages"`   // OS packages installed before any step runs.
	Workdir    string            `yaml:"workdir"`    // Working directory for steps and for the finished image.
	Steps      []Step            `yaml:"steps"`      // Copy and run steps, executed in order.
	Expose     []int             `yaml:"expose"`     // Ports the service intends to listen on. Advisory; recorded in the image config, never bound here.
	Env        map[string]string `yaml:"env"`        // Environment defaults baked into the image config.
	Entrypoint []string          `yaml:"entrypoint"` // OCI entrypoint. Usually empty; the backend is started via Cmd.
	Cmd        []string          `yaml:"cmd"`        // Default command for containers started from the image.
}

// A single build instruction within a recipe.
//
// A step is either an operation (exactly one of Run or Copy) or a
// standalone modifier that adjusts the working directory, shell, or
// environment for all subsequent steps. Modifier fields on an operation
// step apply to that operation only.
type Step struct {
	Run     string            `yaml:"run"`     // Shell command executed inside the build container.
	Copy    string            `yaml:"copy"`    // "src dest" pair copied from the build context into the container.
	Workdir string            `yaml:"workdir"` // Working directory override.
	Shell   string            `yaml:"shell"`   // Shell override for run steps.
	Env     map[string]string `yaml:"env"`     // Environment entries merged into the step environment.
}

// Reads and parses a recipe from a YAML file.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe: %w", err)
	}
	return Parse(data)
}

// Parses a recipe from YAML bytes.
//
// Unknown fields are rejected so that typos in recipe files surface as
// errors instead of silently dropped instructions.
func Parse(data []byte) (*Recipe, error) {
	var rcp Recipe
	if err := yaml.UnmarshalStrict(data, &rcp); err != nil {
		return nil, fmt.Errorf("parse recipe: %w", err)
	}
	return &rcp, nil
}

// Returns the exposed ports in OCI image config notation (e.g. "9002/tcp").
func (r *Recipe) ExposedPorts() []string {
	ports := make([]string, 0, len(r.Expose))
	for _, p := range r.Expose {
		ports = append(ports, fmt.Sprintf("%d/tcp", p))
	}
	return ports
}
