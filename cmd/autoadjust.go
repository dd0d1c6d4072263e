package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAutoAdjustCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "auto-adjust [on|off]",
		Short:     "Show or toggle automatic experience-level adjustment",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			if len(args) == 1 {
				switch strings.ToLower(args[0]) {
				case "on", "true", "yes":
					enabled = true
				case "off", "false", "no":
					enabled = false
				default:
					return fmt.Errorf("expected on or off, got %q", args[0])
				}
			}

			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if len(args) == 1 {
				s.progress.SetAutoAdjustExperienceLevel(cmd.Context(), enabled)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "auto-adjust: %s\n", onOff(s.progress.AutoAdjust()))
			return nil
		},
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
