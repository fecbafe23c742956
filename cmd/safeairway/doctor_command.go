package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"safeairway/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check case storage, settings and log locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCaseStore(func(env *caseEnv) error {
				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)

				for _, line := range renderSectionHeader("Storage", colorize) {
					fmt.Fprintln(out, line)
				}
				results := preflight.RunAll(cmd.Context(), env.cfg, env.store)
				for _, r := range results {
					kind := statusOK
					if !r.Passed {
						kind = statusError
					}
					fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
				}

				fmt.Fprintln(out)
				for _, line := range renderSectionHeader("Settings", colorize) {
					fmt.Fprintln(out, line)
				}
				prefs, err := env.settings.Preferences(cmd.Context())
				if err != nil {
					fmt.Fprintln(out, renderStatusLine("Preferences", statusError, err.Error(), colorize))
				} else {
					autosave := fmt.Sprintf("every %d min", prefs.AutoSaveInterval)
					kind := statusInfo
					if !prefs.AutoSaveEnabled {
						autosave = "disabled"
						kind = statusWarn
					}
					fmt.Fprintln(out, renderStatusLine("Autosave", kind, autosave, colorize))
					fmt.Fprintln(out, renderStatusLine("Font size", statusInfo, fmt.Sprintf("%d", prefs.FontSize), colorize))
				}

				if preflight.Failed(results) {
					return errors.New("one or more checks failed")
				}
				return nil
			})
		},
	}
}
