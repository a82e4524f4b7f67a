package registry

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/openslides/ospackd/internal/paths"
)

// Fetches an image into the local archive cache, reusing a previously
// pulled archive when one exists.
//
// The cache key covers the normalized reference and the platform, so the
// same reference pulled for two platforms yields two archives. Because
// base references are pinned to exact versions, a cached archive is
// served without consulting the registry; its Digest is left empty.
func PullCached(ctx context.Context, imageRef, platform string) (*Image, error) {
	dest := filepath.Join(paths.Images(), cacheKey(imageRef, platform)+".tar")

	if _, err := os.Stat(dest); err == nil {
		slog.Debug("base image cache hit", "ref", imageRef, "archive", dest)
		return &Image{Archive: dest}, nil
	}

	return Pull(ctx, imageRef, platform, dest)
}

// Resolves the base image archive for a build.
//
// An explicit archive path wins. Otherwise the recipe's base reference
// is pulled into the cache for the single target platform. Multi-platform
// builds need a multi-platform archive, which a single registry pull
// cannot provide.
func ResolveBase(ctx context.Context, archive, imageRef string, platforms []string) (string, error) {
	if archive != "" {
		return archive, nil
	}

	if len(platforms) > 1 {
		return "", fmt.Errorf("%w: multi-platform build requires an explicit base archive", ErrPull)
	}

	platform := ""
	if len(platforms) == 1 {
		platform = platforms[0]
	}

	img, err := PullCached(ctx, imageRef, platform)
	if err != nil {
		return "", err
	}
	return img.Archive, nil
}

// Produces a filesystem-safe cache key for a reference and platform.
//
// An empty platform means the host platform, so it hashes identically
// to spelling the host platform out.
func cacheKey(imageRef, platform string) string {
	if platform == "" {
		platform = hostPlatform()
	}
	h := sha256.Sum256([]byte(Normalize(imageRef) + "|" + platform))
	return hex.EncodeToString(h[:])
}
