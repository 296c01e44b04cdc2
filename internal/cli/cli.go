// Package cli implements the charturl command-line interface.
//
// This package provides commands for turning chart description files into
// Google Chart API URLs, inspecting the generated parameters, emitting
// embeddable image tags, and serving the conversion over HTTP. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
//   - url: Print the chart URL for a description file
//   - params: Show the chart parameters as a table
//   - img: Print an embeddable <img> tag
//   - serve: Run the HTTP conversion API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/charturl/charturl/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "charturl"

	// Default rendering size when no flags are given.
	defaultWidth  = 300
	defaultHeight = 200
)

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
		Use:          "charturl",
		Short:        "Charturl turns chart descriptions into Google Chart API URLs",
		Long:         `Charturl reads chart description files (TOML or JSON) and encodes them as Google Chart API URLs, so charts can be embedded anywhere an image can.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.urlCommand())
	root.AddCommand(c.paramsCommand())
	root.AddCommand(c.imgCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
