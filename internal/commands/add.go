package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cratchit-dev/cratchit/internal/accounts"
	"github.com/cratchit-dev/cratchit/internal/model"
)

type addParams struct {
	id          string
	name        string
	description string
	accountType string
	currency    string
	placeholder bool
}

func newAddCommand(opts *options) *cobra.Command {
	var params addParams

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a top-level account to the chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.open()
			if err != nil {
				return err
			}
			defer p.close()

			msg, err := runAdd(p, params)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.id, "id", "", "account id (required)")
	cmd.Flags().StringVar(&params.name, "name", "", "account name (required)")
	cmd.Flags().StringVar(&params.description, "description", "", "account description")
	cmd.Flags().StringVar(&params.accountType, "type", "asset", "account type: asset, equity, expense, income, liability")
	cmd.Flags().StringVar(&params.currency, "currency", "USD", "currency code")
	cmd.Flags().BoolVar(&params.placeholder, "placeholder", false, "account only groups sub-accounts")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runAdd(p *project, params addParams) (string, error) {
	chart, err := p.loadChart()
	if err != nil {
		return "", err
	}

	if p.cfg.Chart.StrictIDs && chart.Exists(params.id) {
		return "", fmt.Errorf("account %q already exists", params.id)
	}

	acct := model.NewAccount(params.id, params.name, params.description,
		model.ParseAccountType(params.accountType), model.ParseCurrency(params.currency), params.placeholder)
	chart.AddTopLevelAccount(acct)

	if err := accounts.SaveFile(p.chartPath, chart); err != nil {
		return "", err
	}
	p.logger.Info("top-level account added",
		zap.String("account_id", acct.ID()),
		zap.String("chart", p.chartPath),
	)

	repo := p.repo()
	if !p.cfg.Git.AutoCommit || !repo.IsRepo() {
		return fmt.Sprintf("Added account %s", acct.ID()), nil
	}

	rel, err := filepath.Rel(p.root, p.chartPath)
	if err != nil {
		return "", fmt.Errorf("resolving chart path: %w", err)
	}
	hash, err := repo.Commit(fmt.Sprintf("accounts: add %s %s", acct.ID(), acct.Name()), rel)
	if err != nil {
		return "", fmt.Errorf("committing chart: %w", err)
	}
	return fmt.Sprintf("Added account %s (%s)", acct.ID(), hash), nil
}
