package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cratchit-dev/cratchit/internal/accounts"
	"github.com/cratchit-dev/cratchit/internal/config"
	"github.com/cratchit-dev/cratchit/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var name string
	var withGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new project with a starter chart of accounts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			msg, err := runInit(absDir, name, withGit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().BoolVar(&withGit, "git", false, "initialize a git repository and commit")

	return cmd
}

func runInit(dir, name string, withGit bool) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return "", fmt.Errorf("%s already exists", cfgPath)
	}

	// Write cratchit.yaml.
	cfg := config.Default(name)
	if err := config.Save(cfgPath, cfg); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}

	// Write chart of accounts.
	if err := accounts.SaveFile(filepath.Join(dir, cfg.Chart.Path), accounts.DefaultChart()); err != nil {
		return "", fmt.Errorf("writing chart of accounts: %w", err)
	}

	if !withGit {
		return fmt.Sprintf("Initialized cratchit project at %s", dir), nil
	}

	repo := gitops.Repo{Dir: dir, AuthorName: cfg.Git.AuthorName, AuthorEmail: cfg.Git.AuthorEmail}
	if err := repo.Init(); err != nil {
		return "", fmt.Errorf("git init: %w", err)
	}
	hash, err := repo.Commit("init: Initialize " + name)
	if err != nil {
		return "", fmt.Errorf("initial commit: %w", err)
	}
	return fmt.Sprintf("Initialized cratchit project at %s (%s)", dir, hash), nil
}
