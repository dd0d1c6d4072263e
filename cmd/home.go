package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/playtrack/internal/theme"
)

// runHome greets first-time players and prints a short status line.
func runHome(cmd *cobra.Command) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ps := s.progress
	out := cmd.OutOrStdout()

	if ps.IsFirstLaunch() {
		fmt.Fprintln(out, theme.Title.Render("Welcome to playtrack!"))
		fmt.Fprintln(out, theme.Hint.Render("Set your name with `playtrack profile set --name <name>`, then record games with `playtrack complete`."))
		ps.SetFirstLaunchCompleted(cmd.Context())
		return nil
	}

	name := ps.UserName()
	if name == "" {
		name = "player"
	}
	fmt.Fprintf(out, "%s %s\n", theme.Title.Render("Welcome back,"), theme.Value.Render(name))
	fmt.Fprintf(out, "%s %d\n", theme.Label.Render("Achievements:"), len(ps.Achievements()))
	return nil
}
