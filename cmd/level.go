package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/playtrack/internal/progress"
	"github.com/abhisek/playtrack/internal/theme"
)

func newLevelCmd() *cobra.Command {
	levelCmd := &cobra.Command{
		Use:   "level",
		Short: "Show or override a game's experience level",
	}

	getCmd := &cobra.Command{
		Use:   "get <game>",
		Short: "Show a game's experience level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], theme.RenderLevel(s.progress.ExperienceLevel(args[0])))
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <game> <" + levelChoices() + ">",
		Short: "Override a game's experience level",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := progress.ParseExperienceLevel(args[1])
			if err != nil {
				return err
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			s.progress.SetExperienceLevel(cmd.Context(), args[0], level)
			fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", args[0], theme.RenderLevel(level))
			if s.progress.AutoAdjust() {
				fmt.Fprintln(cmd.OutOrStdout(), theme.Hint.Render("Auto-adjust is on; the next completion may change this level."))
			}
			return nil
		},
	}

	levelCmd.AddCommand(getCmd, setCmd)
	return levelCmd
}

func levelChoices() string {
	names := make([]string, 0, len(progress.AllExperienceLevels()))
	for _, l := range progress.AllExperienceLevels() {
		names = append(names, string(l))
	}
	return strings.Join(names, "|")
}
