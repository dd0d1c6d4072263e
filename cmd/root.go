package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/playtrack/internal/store"
)

// NewRootCmd builds the playtrack command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "playtrack",
		Short: "Progress tracker for the mini-game collection",
		Long:  "playtrack records mini-game completions, scores and accuracy, and adapts each game's experience level to recent performance.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHome(cmd)
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PLAYTRACK_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error, silent (overrides PLAYTRACK_LOG_LEVEL)")

	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newLevelCmd())
	rootCmd.AddCommand(newAutoAdjustCmd())
	rootCmd.AddCommand(newProfileCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PLAYTRACK_DB (env or .env), then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
