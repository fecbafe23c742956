package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"safeairway/internal/emergency"
)

func newEmergencyCommand() *cobra.Command {
	var suctionSize int

	cmd := &cobra.Command{
		Use:         "emergency [scenario]",
		Short:       "List emergency scenarios or print the steps for one",
		Args:        cobra.ArbitraryArgs,
		Annotations: skipConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			name := strings.ToLower(strings.TrimSpace(strings.Join(args, " ")))
			if name == "" {
				for _, n := range emergency.Names() {
					fmt.Fprintln(out, n)
				}
				return nil
			}
			text := emergency.Instructions(name, suctionSize)
			if text == "" {
				return fmt.Errorf("unknown emergency scenario %q (want one of %s)", name, strings.Join(emergency.Names(), ", "))
			}
			fmt.Fprintf(out, "%s:\n%s\n", name, text)
			return nil
		},
	}

	cmd.Flags().IntVar(&suctionSize, "suction-size", 0, "Patient suction catheter size, used to size the endotracheal tube")
	return cmd
}
