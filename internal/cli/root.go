package cli

import (
	"context"
	"errors"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/blastbay/mazelib/pkg/buildinfo"
)

// Execute runs the mazelib CLI and returns an error if any command fails.
//
// Command errors are printed with the shared UI helpers; the caller only
// decides the process exit code. Cancellation is not reported, since it
// means the user interrupted the run themselves.
func Execute(ctx context.Context) error {
	err := newRootCmd().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		printError("%v", err)
	}
	return err
}

// newRootCmd builds the root command with all subcommands (generate,
// play, serve, cache, completion) attached. Logging is configured from
// the --verbose flag and the logger is carried in the command context,
// accessible via loggerFromContext.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "mazelib",
		Short:         "mazelib generates random mazes with the growing tree algorithm",
		Long:          `mazelib generates random, simply-connected mazes deterministically from a seed, using a configurable growing tree algorithm. Mazes can be rendered as text, SVG or JSON, explored interactively, or served over HTTP.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newPlayCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root
}
