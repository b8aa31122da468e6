package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cratchit-dev/cratchit/internal/accounts"
)

func newExportCommand(opts *options) *cobra.Command {
	var format string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the chart as JSON, YAML or CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.open()
			if err != nil {
				return err
			}
			defer p.close()

			chart, err := p.loadChart()
			if err != nil {
				return err
			}

			if output != "" {
				if err := accounts.SaveFile(output, chart); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d accounts to %s\n", chart.Count(), output)
				return nil
			}

			f, err := accounts.ParseFormat(format)
			if err != nil {
				return err
			}
			return accounts.Encode(cmd.OutOrStdout(), chart, f)
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "output format when writing to stdout: json, yaml or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; the format follows its extension")
	cmd.MarkFlagsMutuallyExclusive("format", "output")

	return cmd
}
