package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/playtrack/internal/progress"
	"github.com/abhisek/playtrack/internal/theme"
)

func newCompleteCmd() *cobra.Command {
	var (
		score      int
		percentage float64
	)

	cmd := &cobra.Command{
		Use:   "complete <game>",
		Short: "Record a finished mini-game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if percentage < 0 || percentage > 1 {
				return fmt.Errorf("percentage must be between 0 and 1, got %v", percentage)
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			game := args[0]
			firstTime := !s.progress.IsGameCompleted(game)
			s.progress.CompleteMiniGame(cmd.Context(), game, score, percentage)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s: score %d, accuracy %.0f%%\n",
				theme.Completed.Render("✓"), game, score, percentage*100)
			if firstTime {
				fmt.Fprintf(out, "%s %s\n", theme.Title.Render("Achievement unlocked:"), theme.Value.Render(progress.AchievementLabel(game)))
			}
			fmt.Fprintf(out, "%s %s\n", theme.Label.Render("Level:"), theme.RenderLevel(s.progress.ExperienceLevel(game)))
			return nil
		},
	}

	cmd.Flags().IntVar(&score, "score", 0, "Score achieved")
	cmd.Flags().Float64Var(&percentage, "percentage", 0, "Accuracy as a fraction between 0 and 1")
	_ = cmd.MarkFlagRequired("score")
	_ = cmd.MarkFlagRequired("percentage")
	return cmd
}
