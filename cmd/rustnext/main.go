package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬─┐┬ ┬┌─┐┌┬┐┌┐┌┌─┐─┐ ┬┌┬┐
  ├┬┘│ │└─┐ │ │││├┤ ┌┴┬┘ │
  ┴└─└─┘└─┘ ┴ ┘└┘└─┘┴ └─ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "rustnext",
		Short: "A server-driven web framework for Go",
		Long: `rustnext is a server-driven web framework for Go.

Route requests with path templates, compose middleware onion-style,
and let the dispatcher own error rendering. Features include:

  • Pattern routing with :params and * wildcards
  • Composable middleware (logging, CORS, rate limiting, auth)
  • JWT authentication and cookie sessions
  • Static file serving with ETag caching
  • Prometheus metrics and OpenTelemetry tracing
  • Hot reload development mode`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
