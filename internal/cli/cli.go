// Package cli implements the reqdetect command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/reqdetect/pkg/buildinfo"
	"github.com/matzehuels/reqdetect/pkg/manifest"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "reqdetect"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "reqdetect parses and normalizes pip requirement lines",
		Long:         `reqdetect parses lines of Python requirements manifests into structured requirements (names, version constraints, extras, paths, archive and VCS URLs) and prints them in canonical pip form.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.parseCommand())
	root.AddCommand(c.formatCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Options Helpers
// =============================================================================

// scanPolicy maps the --strict flag to a manifest policy.
func scanPolicy(strict bool) manifest.Policy {
	if strict {
		return manifest.PolicyAbort
	}
	return manifest.PolicySkip
}
