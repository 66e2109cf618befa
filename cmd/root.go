package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "assistant-l",
	Short: "AI learning roadmap tutor",
	Long:  "Assistant-L — an AI tutor that builds step-by-step learning roadmaps with guides, quizzes, and persona-driven chat.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ASSISTANT_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
