package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	goruntime "runtime"
	"strings"

	"github.com/google/go-containerregistry/pkg/name"
	v1 "github.com/google/go-containerregistry/pkg/v1"
	"github.com/google/go-containerregistry/pkg/v1/remote"
	"github.com/google/go-containerregistry/pkg/v1/tarball"

	"github.com/openslides/ospackd/internal/paths"
)

var ErrPull = errors.New("pull failed")

// Result of a completed pull.
type Image struct {
	Archive string // Path to the written archive.
	Digest  string // Digest of the fetched manifest.
}

// Fetches an image from its registry and writes it to dest as a tar
// archive.
//
// The reference is normalized (docker.io is assumed when no registry is
// given) and the manifest matching the platform is selected. Multi-arch
// references therefore always yield a single-platform archive. An empty
// platform selects the host platform.
func Pull(ctx context.Context, imageRef, platform, dest string) (*Image, error) {
	ref, err := name.ParseReference(Normalize(imageRef))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reference %q: %w", ErrPull, imageRef, err)
	}

	if platform == "" {
		platform = hostPlatform()
	}

	p, err := v1.ParsePlatform(platform)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid platform %q: %w", ErrPull, platform, err)
	}

	slog.Info("pulling image", "ref", ref.String(), "platform", platform)

	img, err := remote.Image(ref, remote.WithContext(ctx), remote.WithPlatform(*p))
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", ErrPull, ref, err)
	}

	dgst, err := img.Digest()
	if err != nil {
		return nil, fmt.Errorf("%w: digest: %w", ErrPull, err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), paths.DefaultDirMode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPull, err)
	}

	if err := tarball.WriteToFile(dest, ref, img); err != nil {
		return nil, fmt.Errorf("%w: write archive: %w", ErrPull, err)
	}

	slog.Info("image pulled", "ref", ref.String(), "digest", dgst.String(), "archive", dest)

	return &Image{Archive: dest, Digest: dgst.String()}, nil
}

// Returns the host platform in OS/architecture form. Image builds run on
// Linux regardless of the client's OS.
func hostPlatform() string {
	return "linux/" + goruntime.GOARCH
}

// Normalizes an image reference to a fully qualified form.
//
// Bare names get the docker.io/library prefix, and repository paths
// whose first component is not a registry host (no dot, no port) get
// the docker.io prefix.
func Normalize(imageRef string) string {
	if !strings.Contains(imageRef, "/") {
		return "docker.io/library/" + imageRef
	}

	host := strings.SplitN(imageRef, "/", 2)[0]
	if host != "localhost" && !strings.ContainsAny(host, ".:") {
		return "docker.io/" + imageRef
	}

	return imageRef
}
