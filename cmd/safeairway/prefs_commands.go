package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"safeairway/internal/config"
	"safeairway/internal/settings"
)

func newPrefsCommand(ctx *commandContext) *cobra.Command {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "View and change user preferences",
	}

	prefsCmd.AddCommand(newPrefsShowCommand(ctx))
	prefsCmd.AddCommand(newPrefsSetCommand(ctx))

	return prefsCmd
}

func newPrefsShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSettings(func(cfg *config.Config, store *settings.Store) error {
				prefs, err := store.Preferences(cmd.Context())
				if err != nil {
					return err
				}
				values := map[string]string{
					settings.KeyLastDirectory:    prefs.LastDirectory,
					settings.KeyFontSize:         strconv.Itoa(prefs.FontSize),
					settings.KeyAutoSaveEnabled:  strconv.FormatBool(prefs.AutoSaveEnabled),
					settings.KeyAutoSaveInterval: strconv.Itoa(prefs.AutoSaveInterval),
				}
				if asJSON {
					return writeJSON(cmd, values)
				}
				rows := make([][]string, 0, len(values))
				for _, key := range settings.PreferenceKeys() {
					rows = append(rows, []string{key, values[key]})
				}
				out := cmd.OutOrStdout()
				fmt.Fprint(out, renderTable([]string{"Preference", "Value"}, rows, nil))
				fmt.Fprintf(out, "Stored in %s\n", store.Path())
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newPrefsSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one preference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSettings(func(cfg *config.Config, store *settings.Store) error {
				key, value := args[0], args[1]
				if key == settings.KeyLastDirectory {
					expanded, err := config.ExpandPath(value)
					if err != nil {
						return fmt.Errorf("resolve directory: %w", err)
					}
					value = expanded
				}
				if err := store.SetPreference(cmd.Context(), key, value); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
				return nil
			})
		},
	}
}
