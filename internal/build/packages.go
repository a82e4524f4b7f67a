package build

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/openslides/ospackd/internal/runtime"
)

// Environment for package manager invocations. Debconf must not prompt
// inside a build container that has no terminal attached.
var aptEnv = []string{"DEBIAN_FRONTEND=noninteractive"}

// Installs the recipe's OS packages in a single package-manager invocation.
//
// Update, install, and index cleanup run as one shell command so the
// package index never survives into the exported layer. A failing install
// aborts the build; there is nothing to retry at this level.
func (b *builder) installPackages(ctx context.Context, ctr *runtime.Container) error {
	if len(b.recipe.Packages) == 0 {
		return nil
	}

	slog.Info("installing system packages", "packages", len(b.recipe.Packages))

	result, err := ctr.Exec(ctx, defaultShell, installCommand(b.recipe.Packages), aptEnv, "")
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return fmt.Errorf("%w: exit code %d: %s", ErrPackageInstall, result.ExitCode, result.Stderr)
	}

	return nil
}

// Builds the shell command that installs the given packages.
//
// Packages are sorted so the command line, and with it the produced
// layer, is stable across rebuilds regardless of recipe ordering.
func installCommand(packages []string) string {
	sorted := make([]string, len(packages))
	copy(sorted, packages)
	sort.Strings(sorted)

	return "apt-get update && " +
		"apt-get install --yes --no-install-recommends " + strings.Join(sorted, " ") + " && " +
		"rm -rf /var/lib/apt/lists/*"
}
