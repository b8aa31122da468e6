package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cratchit-dev/cratchit/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "cratchit",
		Short:   "Chart of accounts toolkit",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.repo, "repo", ".", "project directory")
	flags.StringVar(&opts.chart, "chart", "", "chart file (overrides the configured path)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (overrides the configured level)")

	rootCmd.AddCommand(
		newInitCommand(),
		newCountCommand(opts),
		newIDsCommand(opts),
		newShowCommand(opts),
		newTreeCommand(opts),
		newCheckCommand(opts),
		newExportCommand(opts),
		newAddCommand(opts),
		newServeCommand(opts),
	)

	return rootCmd
}
