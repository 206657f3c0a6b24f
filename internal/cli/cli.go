// Package cli implements the ggfx command-line interface.
//
// # Commands
//
//   - apply: run a filter recipe over an image file
//   - filters: list the filter types a recipe may use
//
// All commands support --verbose (-v) for debug-level logging, which also
// turns on the per-filter records of the ggfx package.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/ggfx"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer
}

// New creates a CLI that logs to w at the given level and routes the
// library's records through the same logger.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level), out: w}
	ggfx.SetLogger(slog.New(c.Logger))
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output such as the filter listing.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "ggfx",
		Short:        "ggfx applies cellular and geometric image filters",
		Long:         `ggfx runs filter pipelines described by TOML recipes over image files: crystallize, pointillize, cellular textures, diffuse, offset, scale, rotate, shear and color matrices.`,
		Version:      ggfx.Version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("ggfx %s\n", ggfx.Version))

	root.AddCommand(c.applyCommand())
	root.AddCommand(c.filtersCommand())

	return root
}
