package manifest

// Development-mode switch understood by the backend. The value "1" means
// enabled; every container instance inherits it from the image config.
const (
	DevelopmentEnv   = "OPENSLIDES_DEVELOPMENT"
	DevelopmentValue = "1"
)

// Ports the backend binds at runtime: 9002 serves actions, 9003 serves
// presenters. Declared on the image as advisory metadata.
const (
	ActionPort    = 9002
	PresenterPort = 9003
)

// Returns the stock packaging recipe for the OpenSlides backend.
//
// The recipe pins the Python base image, installs the OS tools the
// dependency install needs (gcc and libpq-dev for psycopg2, libmagic1
// for file type detection, plus the usual development utilities), copies
// the dependency manifests, the setup configuration, the Makefile, and
// the dev assets into /app, and installs the Python requirements with
// the pip cache disabled. The finished image starts the backend as a
// runnable module with no arguments.
func Default() *Recipe {
	return &Recipe{
		Base: "docker.io/library/python:3.10.17-slim-bookworm",
		Packages: []string{
			"bash-completion",
			"curl",
			"gcc",
			"git",
			"libmagic1",
			"libpq-dev",
			"make",
			"mime-support",
		},
		Workdir: "/app",
		Steps: []Step{
			{Copy: "requirements requirements"},
			{Copy: "setup.cfg setup.cfg"},
			{Copy: "Makefile Makefile"},
			{Copy: "dev dev"},
			{Run: "pip install --no-cache-dir --requirement requirements/requirements_development.txt"},
		},
		Expose: []int{ActionPort, PresenterPort},
		Env: map[string]string{
			DevelopmentEnv: DevelopmentValue,
		},
		Cmd: []string{"python", "-m", "openslides_backend"},
	}
}
