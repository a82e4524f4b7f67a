package runtime

import (
	"reflect"
	"testing"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

func TestImageSettingsApply(t *testing.T) {
	config := ocispec.Image{}
	config.Config.Env = []string{"PATH=/usr/bin", "LANG=C"}
	config.Config.Cmd = []string{"/bin/sh"}

	settings := ImageSettings{
		Cmd:          []string{"python", "-m", "openslides_backend"},
		WorkingDir:   "/app",
		Env:          map[string]string{"OPENSLIDES_DEVELOPMENT": "1"},
		ExposedPorts: []string{"9002/tcp", "9003/tcp"},
	}
	settings.apply(&config)

	if config.Config.WorkingDir != "/app" {
		t.Errorf("workingDir = %q, want /app", config.Config.WorkingDir)
	}

	wantCmd := []string{"python", "-m", "openslides_backend"}
	if !reflect.DeepEqual(config.Config.Cmd, wantCmd) {
		t.Errorf("cmd = %v, want %v", config.Config.Cmd, wantCmd)
	}

	wantEnv := []string{"LANG=C", "OPENSLIDES_DEVELOPMENT=1", "PATH=/usr/bin"}
	if !reflect.DeepEqual(config.Config.Env, wantEnv) {
		t.Errorf("env = %v, want %v", config.Config.Env, wantEnv)
	}

	if _, ok := config.Config.ExposedPorts["9002/tcp"]; !ok {
		t.Error("port 9002/tcp not recorded")
	}
	if _, ok := config.Config.ExposedPorts["9003/tcp"]; !ok {
		t.Error("port 9003/tcp not recorded")
	}
	if len(config.Config.ExposedPorts) != 2 {
		t.Errorf("len(exposedPorts) = %d, want 2", len(config.Config.ExposedPorts))
	}
}

func TestImageSettingsApplyZeroValue(t *testing.T) {
	config := ocispec.Image{}
	config.Config.Env = []string{"PATH=/usr/bin"}
	config.Config.Cmd = []string{"/bin/sh"}
	config.Config.WorkingDir = "/srv"

	ImageSettings{}.apply(&config)

	if !reflect.DeepEqual(config.Config.Env, []string{"PATH=/usr/bin"}) {
		t.Errorf("env mutated: %v", config.Config.Env)
	}
	if !reflect.DeepEqual(config.Config.Cmd, []string{"/bin/sh"}) {
		t.Errorf("cmd mutated: %v", config.Config.Cmd)
	}
	if config.Config.WorkingDir != "/srv" {
		t.Errorf("workingDir mutated: %q", config.Config.WorkingDir)
	}
	if config.Config.ExposedPorts != nil {
		t.Errorf("exposedPorts = %v, want nil", config.Config.ExposedPorts)
	}
}

func TestImageSettingsApplyEntrypointClearsCmd(t *testing.T) {
	config := ocispec.Image{}
	config.Config.Cmd = []string{"/bin/sh"}

	ImageSettings{Entrypoint: []string{"/entry"}}.apply(&config)

	if !reflect.DeepEqual(config.Config.Entrypoint, []string{"/entry"}) {
		t.Errorf("entrypoint = %v", config.Config.Entrypoint)
	}
	if config.Config.Cmd != nil {
		t.Errorf("cmd = %v, want nil after entrypoint override", config.Config.Cmd)
	}
}

func TestImageSettingsApplyEnvOverride(t *testing.T) {
	config := ocispec.Image{}
	config.Config.Env = []string{"OPENSLIDES_DEVELOPMENT=0"}

	ImageSettings{Env: map[string]string{"OPENSLIDES_DEVELOPMENT": "1"}}.apply(&config)

	if !reflect.DeepEqual(config.Config.Env, []string{"OPENSLIDES_DEVELOPMENT=1"}) {
		t.Errorf("env = %v, want override to 1", config.Config.Env)
	}
}

func TestImageSettingsEnviron(t *testing.T) {
	s := ImageSettings{Env: map[string]string{"B": "2", "A": "1"}}
	got := s.environ()
	want := []string{"A=1", "B=2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("environ = %v, want %v (sorted)", got, want)
	}
}
