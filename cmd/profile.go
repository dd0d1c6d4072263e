package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/playtrack/internal/theme"
)

func newProfileCmd() *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the player profile",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the player profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ps := s.progress
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, theme.Title.Render("Profile"))
			fmt.Fprintf(out, "%s %s\n", theme.Label.Render("Name: "), valueOrDash(ps.UserName()))
			fmt.Fprintf(out, "%s %s\n", theme.Label.Render("Age:  "), valueOrDash(ps.UserAge()))
			fmt.Fprintf(out, "%s %s\n", theme.Label.Render("Color:"), theme.RenderSwatch(ps.FavoriteColor()))
			return nil
		},
	}

	var name, age, color string
	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Update name, age or favourite colour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("name") && !flags.Changed("age") && !flags.Changed("color") {
				return fmt.Errorf("nothing to update: pass --name, --age or --color")
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ps := s.progress
			newName, newAge, newColor := ps.UserName(), ps.UserAge(), ps.FavoriteColor()
			if flags.Changed("name") {
				newName = strings.TrimSpace(name)
			}
			if flags.Changed("age") {
				newAge = strings.TrimSpace(age)
			}
			if flags.Changed("color") {
				sw, ok := theme.Lookup(color)
				if !ok {
					return fmt.Errorf("unknown colour %q (choose from %s)", color, colourChoices())
				}
				newColor = sw.Token
			}

			ps.SaveUserInfo(cmd.Context(), newName, newAge, newColor)
			fmt.Fprintln(cmd.OutOrStdout(), theme.Completed.Render("Profile saved."))
			return nil
		},
	}
	setCmd.Flags().StringVar(&name, "name", "", "Player name")
	setCmd.Flags().StringVar(&age, "age", "", "Player age")
	setCmd.Flags().StringVar(&color, "color", "", "Favourite colour")

	colorsCmd := &cobra.Command{
		Use:   "colors",
		Short: "List the available favourite colours",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, sw := range theme.Palette() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", theme.RenderSwatch(sw.Token), sw.Token)
			}
		},
	}

	profileCmd.AddCommand(showCmd, setCmd, colorsCmd)
	return profileCmd
}

func valueOrDash(s string) string {
	if s == "" {
		return theme.Hint.Render("-")
	}
	return theme.Value.Render(s)
}

func colourChoices() string {
	var names []string
	for _, sw := range theme.Palette() {
		names = append(names, strings.ToLower(sw.Name))
	}
	return strings.Join(names, ", ")
}
