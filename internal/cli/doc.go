// Parses flags and configures logging for the ospackd daemon.
//
// The daemon accepts the following flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output.
//	-d, --debug     Enable debug output.
//	-s, --socket    Unix socket path.
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is reconfigured to reflect the final level before the selected
// subcommand runs.
//
// Besides the daemon itself (ospackd start), the CLI carries one-shot
// subcommands that operate on containerd directly without a running daemon:
// build packages the backend image from a recipe, pull fetches a base image
// into the local cache, and run imports a packaged archive and starts it as a
// service container.
package cli
