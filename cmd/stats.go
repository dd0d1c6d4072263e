package cmd

import (
	"fmt"
	"sort"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/playtrack/internal/progress"
	"github.com/abhisek/playtrack/internal/theme"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-game progress and achievements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			fmt.Fprintln(cmd.OutOrStdout(), renderStats(s.progress.Snapshot()))
			return nil
		},
	}
}

// knownGames returns every game id mentioned anywhere in the profile.
func knownGames(p progress.Profile) []string {
	seen := make(map[string]bool)
	for id := range p.ExperienceLevels {
		seen[id] = true
	}
	for id := range p.CompletedGames {
		seen[id] = true
	}
	for id := range p.Scores {
		seen[id] = true
	}
	for id := range p.Percentages {
		seen[id] = true
	}
	for id := range p.PerformanceHistory {
		seen[id] = true
	}
	games := make([]string, 0, len(seen))
	for id := range seen {
		games = append(games, id)
	}
	sort.Strings(games)
	return games
}

func renderStats(p progress.Profile) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Game", "Completed", "Score", "Accuracy", "Level").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.Header
			}
			return theme.Cell
		})

	for _, id := range knownGames(p) {
		done := "-"
		if p.CompletedGames[id] {
			done = "✓"
		}
		level, ok := p.ExperienceLevels[id]
		if !ok {
			level = progress.Rookie
		}
		t.Row(
			id,
			done,
			fmt.Sprintf("%d", p.Scores[id]),
			fmt.Sprintf("%.0f%%", p.Percentages[id]*100),
			level.DisplayName(),
		)
	}

	out := theme.Title.Render("Progress") + "\n" + t.String() + "\n"
	out += fmt.Sprintf("%s %s\n", theme.Label.Render("Auto-adjust:"), onOff(p.AutoAdjust))

	out += theme.Title.Render("Achievements") + "\n"
	if len(p.Achievements) == 0 {
		out += theme.Hint.Render("None yet. Finish a game to earn one!")
		return out
	}
	for _, a := range p.Achievements {
		out += "  " + theme.Completed.Render("★") + " " + a + "\n"
	}
	return out
}
