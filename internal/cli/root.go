package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/coordtask/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
// The CLI's logger is attached to the command context before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "coordtask parses Maven-style artifact coordinates for task runners",
		Long:         `coordtask turns colon-delimited coordinate strings into structured dependency, exclusion and POM records, checks task files that declare them, and serves the parser over HTTP.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.parseCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
