package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillfolio/skillfolio/internal/skills"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skills in the assessment",
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

		for _, rec := range store.Snapshot() {
			flag := " "
			if rec.IsFlagged() {
				flag = "⚑"
			}
			depth := "N/A"
			if rec.IterationDepth != nil {
				depth = fmt.Sprintf("%d", *rec.IterationDepth)
			}
			fmt.Printf("%s %-30s %5.1f/10  attempts:%-3d iterations:%s\n",
				flag, rec.Name, rec.Score, len(rec.AttemptTimestamps), depth)
		}
		return nil
	},
}
