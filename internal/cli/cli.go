// Package cli implements the coordtask command-line interface.
//
// This package provides commands for parsing Maven-style coordinate strings,
// checking task files that declare dependencies through coords attributes,
// and serving the parser over HTTP. The CLI is built using cobra and logs
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - parse: Parse coordinate strings with the dependency, exclusion or pom grammar
//   - check: Load a task file (and optionally a pom.xml) and report its coordinates
//   - serve: Run the HTTP parse endpoint
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"encoding/json"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "coordtask"

	// envAddr overrides the default listen address of the serve command.
	envAddr = "COORDTASK_ADDR"
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

// =============================================================================
// Output Helpers
// =============================================================================

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// defaultAddr returns the listen address from the environment or the server default.
func defaultAddr(fallback string) string {
	if addr := os.Getenv(envAddr); addr != "" {
		return addr
	}
	return fallback
}
