package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/cratchit-dev/cratchit/internal/accounts"
	"github.com/cratchit-dev/cratchit/internal/config"
	"github.com/cratchit-dev/cratchit/internal/gitops"
	"github.com/cratchit-dev/cratchit/internal/logging"
)

// options holds the persistent flags shared by all subcommands.
type options struct {
	repo     string
	chart    string
	logLevel string
}

// project is an opened cratchit project directory.
type project struct {
	root      string
	cfg       *config.Config
	chartPath string
	logger    *zap.Logger
}

// open resolves the project directory, reads cratchit.yaml when present and
// builds the logger. A missing config file falls back to defaults.
func (o *options) open() (*project, error) {
	root, err := filepath.Abs(o.repo)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.Default("")
	} else if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	logger, err := logging.New(level)
	if err != nil {
		return nil, err
	}

	chartPath := filepath.Join(root, cfg.Chart.Path)
	if o.chart != "" {
		if chartPath, err = filepath.Abs(o.chart); err != nil {
			return nil, fmt.Errorf("resolving chart path: %w", err)
		}
	}

	return &project{root: root, cfg: cfg, chartPath: chartPath, logger: logger}, nil
}

// loadChart reads the chart file. With chart.strict_ids set, duplicate
// account IDs fail the load; otherwise they are logged.
func (p *project) loadChart() (*accounts.Chart, error) {
	chart, err := accounts.LoadFile(p.chartPath)
	if err != nil {
		return nil, err
	}

	if err := chart.Validate(); err != nil {
		if p.cfg.Chart.StrictIDs {
			return nil, fmt.Errorf("validating %s: %w", p.chartPath, err)
		}
		p.logger.Warn("duplicate account ids, later accounts shadow earlier ones",
			zap.String("chart", p.chartPath),
			zap.Error(err),
		)
	}

	p.logger.Debug("chart loaded",
		zap.String("chart", p.chartPath),
		zap.Int("accounts", chart.Count()),
	)
	return chart, nil
}

func (p *project) repo() gitops.Repo {
	return gitops.Repo{
		Dir:         p.root,
		AuthorName:  p.cfg.Git.AuthorName,
		AuthorEmail: p.cfg.Git.AuthorEmail,
	}
}

func (p *project) close() {
	_ = p.logger.Sync()
}
