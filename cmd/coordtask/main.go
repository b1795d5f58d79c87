package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/coordtask/internal/cli"
	"github.com/matzehuels/coordtask/pkg/errors"
)

// Exit codes. Configuration errors (malformed coords, bad task files) get
// their own code so task runners can tell them apart from crashes.
const (
	exitFailure     = 1
	exitConfigError = 2
	exitInterrupted = 130 // Standard shell convention for SIGINT
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	err := root.ExecuteContext(ctx)
	if err != nil && !stderrors.Is(err, context.Canceled) {
		if verbose {
			c.Logger.Error(err)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", errors.UserMessage(err))
		}
	}
	return err
}

func exitCode(err error) int {
	switch {
	case stderrors.Is(err, context.Canceled):
		return exitInterrupted
	case errors.Is(err, errors.ErrCodeInvalidCoordinate),
		errors.Is(err, errors.ErrCodeInvalidTaskFile),
		errors.Is(err, errors.ErrCodeInvalidVariant),
		errors.Is(err, errors.ErrCodeInvalidPath),
		errors.Is(err, errors.ErrCodeFileNotFound):
		return exitConfigError
	default:
		return exitFailure
	}
}
