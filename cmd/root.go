package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillfolio",
	Short: "Review skill assessments in the terminal",
	Long:  "Skillfolio — terminal tool for reviewing a candidate's skill assessment, adjusting scores, and exporting a printable report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Path to the assessment data file (overrides SKILLFOLIO_DATA_PATH)")
	rootCmd.PersistentFlags().String("report", "", "Base path for exported report pages (overrides SKILLFOLIO_REPORT_PATH)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(skillsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
