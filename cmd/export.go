package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillfolio/skillfolio/internal/report"
	"github.com/skillfolio/skillfolio/internal/skills"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate the printable report without opening the UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := buildEnv(cmd)
		if err != nil {
			return err
		}
		defer env.log.Sync()

		records, err := env.loader.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load assessment: %w", err)
		}

		store := skills.NewStore()
		if err := store.Load(records); err != nil {
			return fmt.Errorf("install records: %w", err)
		}

		snapshot := store.Snapshot()
		exporter := report.NewExporter(env.cfg.ReportPath, env.cfg.FontPath, env.log)
		path, err := exporter.Export(snapshot, skills.BuildRadar(snapshot))
		if err != nil {
			return err
		}

		fmt.Printf("Report written to %s-page-N.png (%d skills)\n", path, len(snapshot))
		return nil
	},
}
