package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillfolio/skillfolio/internal/app"
	"github.com/skillfolio/skillfolio/internal/config"
	"github.com/skillfolio/skillfolio/internal/logging"
	"github.com/skillfolio/skillfolio/internal/report"
	"github.com/skillfolio/skillfolio/internal/skills"
	"github.com/skillfolio/skillfolio/internal/source"
)

// appEnv bundles the collaborators every command needs.
type appEnv struct {
	cfg    *config.Config
	log    *logging.Logger
	loader source.Loader
}

// buildEnv loads config (with flag overrides), opens the log file, and picks
// a data loader.
func buildEnv(cmd *cobra.Command) (*appEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		cfg.DataPath = p
	}
	if p, _ := cmd.Flags().GetString("report"); p != "" {
		cfg.ReportPath = p
	}
	if cfg.DataPath == "" {
		return nil, errors.New("no assessment data configured (use --data or SKILLFOLIO_DATA_PATH)")
	}

	log, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	loader, err := source.ForPath(cfg.DataPath, cfg.DataFormat, log)
	if err != nil {
		return nil, err
	}

	return &appEnv{cfg: cfg, log: log, loader: loader}, nil
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	env, err := buildEnv(cmd)
	if err != nil {
		return err
	}
	defer env.log.Sync()

	return app.Run(app.Options{
		Store:    skills.NewStore(),
		Loader:   env.loader,
		Exporter: report.NewExporter(env.cfg.ReportPath, env.cfg.FontPath, env.log),
		Log:      env.log,
	})
}
