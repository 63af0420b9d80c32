package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"task-tracker/internal/observability/jsonlog"
)

// Version is overridden at build time with -ldflags "-X task-tracker/internal/cli.Version=...".
var Version = "dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Quiet bool
}

// logger writes JSON lines to the command's stderr, or nowhere with --quiet.
func (o *RootOptions) logger(cmd *cobra.Command) *jsonlog.Logger {
	if o.Quiet {
		return jsonlog.Discard()
	}
	return jsonlog.New(cmd.ErrOrStderr())
}

// NewRootCommand creates the root command for the task-tracker CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "task-tracker",
		Short:         "A minimal task-tracking HTTP service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress log output")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "task-tracker %s\n", Version)
			return err
		},
	}
}
