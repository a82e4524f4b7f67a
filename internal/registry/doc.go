// Package registry fetches base images from container registries.
//
// Images are resolved through go-containerregistry, selected for a
// single platform, and written to a local tar archive that the runtime
// package imports into containerd. References without a registry host
// are normalized against docker.io, so "python:3.10-slim" and
// "docker.io/library/python:3.10-slim" name the same image.
package registry
