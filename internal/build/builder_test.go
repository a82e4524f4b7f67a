package build

import (
	"reflect"
	"strings"
	"testing"

	"github.com/openslides/ospackd/internal/manifest"
)

func TestInstallCommand(t *testing.T) {
	cmd := installCommand([]string{"libpq-dev", "gcc", "make"})

	if !strings.HasPrefix(cmd, "apt-get update && ") {
		t.Errorf("command %q does not update the index first", cmd)
	}
	if !strings.Contains(cmd, "install --yes --no-install-recommends gcc libpq-dev make") {
		t.Errorf("command %q does not install sorted packages non-interactively", cmd)
	}
	if !strings.HasSuffix(cmd, "rm -rf /var/lib/apt/lists/*") {
		t.Errorf("command %q does not clean up the package index", cmd)
	}

	// Ordering in the recipe must not change the command.
	if installCommand([]string{"make", "gcc", "libpq-dev"}) != cmd {
		t.Error("install command depends on recipe package order")
	}
}

func TestContainerID(t *testing.T) {
	b := &builder{name: "openslides-backend", platforms: []string{"linux/amd64"}}

	id := b.containerID("linux/amd64")
	if id != "openslides-backend-linux-amd64-build" {
		t.Fatalf("containerID = %q", id)
	}
}

func TestPlatformOutput(t *testing.T) {
	single := &builder{output: "dist", platforms: []string{"linux/amd64"}}
	if got := single.platformOutput("linux/amd64"); got != "dist" {
		t.Fatalf("single-platform output = %q, want dist", got)
	}

	multi := &builder{output: "dist", platforms: []string{"linux/amd64", "linux/arm64"}}
	if got := multi.platformOutput("linux/arm64"); got != "dist/linux-arm64" {
		t.Fatalf("multi-platform output = %q, want dist/linux-arm64", got)
	}
}

func TestPlatformSlug(t *testing.T) {
	if got := platformSlug("linux/amd64"); got != "linux-amd64" {
		t.Fatalf("platformSlug = %q, want linux-amd64", got)
	}
}

func TestImageSettings(t *testing.T) {
	b := &builder{recipe: manifest.Default()}
	settings := b.imageSettings()

	if settings.WorkingDir != "/app" {
		t.Errorf("workingDir = %q, want /app", settings.WorkingDir)
	}
	if settings.Env[manifest.DevelopmentEnv] != manifest.DevelopmentValue {
		t.Errorf("env = %v, missing development flag", settings.Env)
	}
	if !reflect.DeepEqual(settings.ExposedPorts, []string{"9002/tcp", "9003/tcp"}) {
		t.Errorf("exposedPorts = %v", settings.ExposedPorts)
	}
	if !reflect.DeepEqual(settings.Cmd, []string{"python", "-m", "openslides_backend"}) {
		t.Errorf("cmd = %v", settings.Cmd)
	}
	if len(settings.Entrypoint) != 0 {
		t.Errorf("entrypoint = %v, want empty", settings.Entrypoint)
	}
}
