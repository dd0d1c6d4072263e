package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/playtrack/internal/progress"
	"github.com/abhisek/playtrack/internal/theme"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset all game progress",
		Long:  "Clears completions, scores, achievements and performance history, resets every experience level to Rookie and removes saved game phases. The profile and the auto-adjust setting are kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				fmt.Fprint(cmd.OutOrStdout(), "This erases all game progress. Type 'yes' to continue: ")
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if strings.TrimSpace(strings.ToLower(line)) != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			var wasReset bool
			cancel := s.progress.Subscribe(func(ev progress.Event) {
				if ev.Kind == progress.ProgressReset {
					wasReset = true
				}
			})
			defer cancel()

			s.progress.ResetProgress(cmd.Context())
			if wasReset {
				fmt.Fprintln(cmd.OutOrStdout(), theme.Completed.Render("Progress reset."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
