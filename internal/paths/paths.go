package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	daemonName = "ospackd"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory for runtime files (sockets, PIDs).
//
//	Linux:   $XDG_RUNTIME_DIR/ospackd or /run/user/<uid>/ospackd
//	macOS:   ~/Library/Caches/ospackd/run
func Runtime() string {
	if xdg.RuntimeDir != "" {
		return filepath.Join(xdg.RuntimeDir, daemonName)
	}
	return filepath.Join(xdg.CacheHome, daemonName, "run")
}

// Default path to the Unix domain socket for CLI-to-daemon communication.
//
//	Linux:   $XDG_RUNTIME_DIR/ospackd/ospackd.sock
//	macOS:   ~/Library/Caches/ospackd/run/ospackd.sock
func Socket() string {
	return filepath.Join(Runtime(), daemonName+".sock")
}

// Default path to the PID file.
//
//	Linux:   $XDG_RUNTIME_DIR/ospackd/ospackd.pid
//	macOS:   ~/Library/Caches/ospackd/run/ospackd.pid
func PIDFile() string {
	return filepath.Join(Runtime(), daemonName+".pid")
}

// Path to the cache directory for pulled base image archives.
//
//	Linux:   ~/.cache/ospackd/images
//	macOS:   ~/Library/Caches/ospackd/images
func Images() string {
	return filepath.Join(xdg.CacheHome, daemonName, "images")
}
