package commands

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/cratchit-dev/cratchit/internal/accounts"
	"github.com/cratchit-dev/cratchit/internal/model"
)

// ErrDuplicateIDs is returned by the check command when IDs repeat.
var ErrDuplicateIDs = errors.New("chart has duplicate account ids")

func newCountCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of distinct account IDs",
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
			fmt.Fprintln(cmd.OutOrStdout(), chart.Count())
			return nil
		},
	}
}

func newIDsCommand(opts *options) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "ids",
		Short: "List every account ID",
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

			if typeName == "" {
				for _, id := range chart.SortedIDs() {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			}

			accountType := model.ParseAccountType(typeName)
			if accountType.String() != strings.ToLower(typeName) {
				return fmt.Errorf("unknown account type %q", typeName)
			}
			for _, acct := range chart.ByType(accountType) {
				fmt.Fprintln(cmd.OutOrStdout(), acct.ID())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "", "only list accounts of this type: asset, equity, expense, income, liability, other")

	return cmd
}

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
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
			acct, ok := chart.Get(args[0])
			if !ok {
				return fmt.Errorf("account %q not found", args[0])
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "ID:\t%s\n", acct.ID())
			fmt.Fprintf(tw, "Name:\t%s\n", acct.Name())
			fmt.Fprintf(tw, "Description:\t%s\n", acct.Description())
			fmt.Fprintf(tw, "Type:\t%s\n", acct.Type())
			fmt.Fprintf(tw, "Currency:\t%s\n", acct.Currency())
			fmt.Fprintf(tw, "Placeholder:\t%t\n", acct.Placeholder())
			fmt.Fprintf(tw, "Sub-accounts:\t%d\n", len(acct.Children()))
			return tw.Flush()
		},
	}
}

func newTreeCommand(opts *options) *cobra.Command {
	var useColor bool

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the chart as an indented tree",
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
			return accounts.RenderTree(cmd.OutOrStdout(), chart, accounts.RenderOptions{Color: useColor})
		},
	}

	cmd.Flags().BoolVar(&useColor, "color", false, "highlight placeholder accounts")

	return cmd
}

func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report account IDs used more than once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.open()
			if err != nil {
				return err
			}
			defer p.close()

			chart, err := accounts.LoadFile(p.chartPath)
			if err != nil {
				return err
			}
			verr := chart.Validate()
			if verr == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %d accounts\n", chart.Count())
				return nil
			}
			for _, e := range multierr.Errors(verr) {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return ErrDuplicateIDs
		},
	}
}
