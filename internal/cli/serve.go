package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/coordtask/internal/server"
	"github.com/matzehuels/coordtask/pkg/buildinfo"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the coordinate parser over HTTP",
		Long: `Serve the coordinate parser over HTTP until interrupted.

Routes:
  GET  /healthz
  GET  /v1/coords/{variant}?raw=<coords>
  POST /v1/coords/{variant}   {"coords": ["...", "..."]}

The listen address defaults to $` + envAddr + ` or ` + server.DefaultAddr + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			logger.Info("Starting "+appName, "version", buildinfo.Version, "commit", buildinfo.Commit)
			return server.New(addr, logger).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr(server.DefaultAddr), "listen address")

	return cmd
}
