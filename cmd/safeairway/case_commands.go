package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"safeairway/internal/airwaycase"
	"safeairway/internal/bedside"
	"safeairway/internal/casestore"
	"safeairway/internal/config"
	"safeairway/internal/textutil"
)

func newCaseCommand(ctx *commandContext) *cobra.Command {
	caseCmd := &cobra.Command{
		Use:   "case",
		Short: "Create, inspect and manage airway cases",
	}

	caseCmd.AddCommand(newCaseNewCommand(ctx))
	caseCmd.AddCommand(newCaseShowCommand(ctx))
	caseCmd.AddCommand(newCaseEditCommand(ctx))
	caseCmd.AddCommand(newCaseListCommand(ctx))
	caseCmd.AddCommand(newCaseRecentCommand(ctx))
	caseCmd.AddCommand(newCaseFindCommand(ctx))
	caseCmd.AddCommand(newCaseDeleteCommand(ctx))
	caseCmd.AddCommand(newCaseExportCommand(ctx))
	caseCmd.AddCommand(newCaseImportCommand(ctx))
	caseCmd.AddCommand(newCaseFieldsCommand())

	return caseCmd
}

func newCaseNewCommand(ctx *commandContext) *cobra.Command {
	var typeFlag string
	var draft bool
	input := &caseInput{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create and save a new case",
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := airwaycase.ParseCaseTypeFlag(typeFlag)
			if err != nil {
				return err
			}
			return ctx.withCaseStore(func(env *caseEnv) error {
				c := airwaycase.New(ct)
				if err := input.apply(cmd, c, env.catalog); err != nil {
					return err
				}
				if !draft {
					if err := c.Validate(); err != nil {
						return fmt.Errorf("case incomplete (use --draft to save anyway):\n%w", err)
					}
				}
				path, err := env.store.Save(cmd.Context(), c)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s case %s to %s\n", ct.Label(), c.ID(), path)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", airwaycase.Tracheostomy.String(), "Case type")
	cmd.Flags().BoolVar(&draft, "draft", false, "Save even if required fields are missing")
	input.register(cmd.Flags(), false)
	return cmd
}

func newCaseEditCommand(ctx *commandContext) *cobra.Command {
	var draft bool
	input := &caseInput{}

	cmd := &cobra.Command{
		Use:   "edit <case>",
		Short: "Change fields of a saved case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCaseStore(func(env *caseEnv) error {
				path, err := resolveCaseRef(env.store, args[0])
				if err != nil {
					return err
				}
				c, err := env.store.Load(cmd.Context(), path)
				if err != nil {
					return err
				}
				if err := input.apply(cmd, c, env.catalog); err != nil {
					return err
				}
				if !draft {
					if err := c.Validate(); err != nil {
						return fmt.Errorf("case incomplete (use --draft to save anyway):\n%w", err)
					}
				}
				saved, err := env.store.Save(cmd.Context(), c)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated case %s at %s\n", c.ID(), saved)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&draft, "draft", false, "Save even if required fields are missing")
	input.register(cmd.Flags(), true)
	return cmd
}

func newCaseShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var asCard bool

	cmd := &cobra.Command{
		Use:   "show <case>",
		Short: "Display a saved case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON && asCard {
				return errors.New("--json and --bedside are mutually exclusive")
			}
			return ctx.withCaseStore(func(env *caseEnv) error {
				path, err := resolveCaseRef(env.store, args[0])
				if err != nil {
					return err
				}
				c, err := env.store.Load(cmd.Context(), path)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				switch {
				case asJSON:
					return writeCaseJSON(cmd, c)
				case asCard:
					fmt.Fprint(out, bedside.Render(c, env.catalog))
				default:
					fmt.Fprint(out, renderCaseDetail(c, env))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the case record as JSON")
	cmd.Flags().BoolVar(&asCard, "bedside", false, "Print the bedside card")
	return cmd
}

func newCaseListCommand(ctx *commandContext) *cobra.Command {
	var typeFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved cases, newest first within each type",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCaseStore(func(env *caseEnv) error {
				var paths []string
				var err error
				if strings.TrimSpace(typeFlag) != "" {
					ct, perr := airwaycase.ParseCaseTypeFlag(typeFlag)
					if perr != nil {
						return perr
					}
					paths, err = env.store.CasesByType(ct)
				} else {
					paths, err = env.store.AllCases()
				}
				if err != nil {
					return err
				}
				return printSummaries(cmd, env.store.Summaries(cmd.Context(), paths), asJSON, "No cases saved")
			})
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "Only list cases of this type")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newCaseRecentCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently opened cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCaseStore(func(env *caseEnv) error {
				paths, err := env.store.Recent(cmd.Context())
				if err != nil {
					return err
				}
				return printSummaries(cmd, env.store.Summaries(cmd.Context(), paths), asJSON, "No recent cases")
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newCaseFindCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Search cases by patient name, MRN or id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return ctx.withCaseStore(func(env *caseEnv) error {
				hits, err := env.store.Search(cmd.Context(), query)
				if err != nil {
					return err
				}
				return printSummaries(cmd, hits, asJSON, fmt.Sprintf("No cases match %q", query))
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newCaseDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <case>",
		Short: "Delete a saved case file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCaseStore(func(env *caseEnv) error {
				path, err := resolveCaseRef(env.store, args[0])
				if err != nil {
					return err
				}
				if err := env.store.Delete(path); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", path)
				return nil
			})
		},
	}
}

func newCaseExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export <case> <destination>",
		Short: "Write a readable copy of a case outside the store",
		Long: "Export writes the case as indented JSON. When destination is an existing " +
			"directory the file is named after the patient and case id.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCaseStore(func(env *caseEnv) error {
				path, err := resolveCaseRef(env.store, args[0])
				if err != nil {
					return err
				}
				c, err := env.store.Load(cmd.Context(), path)
				if err != nil {
					return err
				}
				dest, err := config.ExpandPath(args[1])
				if err != nil {
					return fmt.Errorf("resolve destination: %w", err)
				}
				if info, statErr := os.Stat(dest); statErr == nil && info.IsDir() {
					p := c.Details().Patient
					dest = filepath.Join(dest, textutil.ExportFileName(p.FirstName, p.LastName, c.ID()))
				}
				if err := env.store.Export(c, dest); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported case %s to %s\n", c.ID(), dest)
				return nil
			})
		},
	}
}

func newCaseImportCommand(ctx *commandContext) *cobra.Command {
	var copyIn bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Open a case file from anywhere on disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withCaseStore(func(env *caseEnv) error {
				src, err := config.ExpandPath(args[0])
				if err != nil {
					return fmt.Errorf("resolve import path: %w", err)
				}
				c, err := env.store.Import(cmd.Context(), src)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !copyIn {
					fmt.Fprintf(out, "Imported %s case %s from %s\n", c.Type().Label(), c.ID(), c.FilePath())
					return nil
				}
				c.SetFilePath("")
				saved, err := env.store.Save(cmd.Context(), c)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Imported %s case %s into %s\n", c.Type().Label(), c.ID(), saved)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&copyIn, "copy", false, "Save a copy into the case directory for its type")
	return cmd
}

func newCaseFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "fields [type]",
		Short:       "List the --field keys each case type collects",
		Args:        cobra.MaximumNArgs(1),
		Annotations: skipConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			types := airwaycase.CaseTypes
			if len(args) == 1 {
				ct, err := airwaycase.ParseCaseTypeFlag(args[0])
				if err != nil {
					return err
				}
				types = []airwaycase.CaseType{ct}
			}
			var rows [][]string
			for _, ct := range types {
				for _, f := range airwaycase.RelevantFields(ct) {
					rows = append(rows, []string{ct.String(), f.Key, f.Label})
				}
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTable([]string{"Type", "Key", "Label"}, rows, nil))
			return nil
		},
	}
}

// resolveCaseRef accepts a path to a case file or a case id. Ids are looked
// up in every case type directory.
func resolveCaseRef(store *casestore.Store, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("case reference is empty")
	}
	if expanded, err := config.ExpandPath(ref); err == nil {
		if info, statErr := os.Stat(expanded); statErr == nil && !info.IsDir() {
			return expanded, nil
		}
	}
	id := strings.TrimSuffix(filepath.Base(ref), ".json")
	paths, err := store.AllCases()
	if err != nil {
		return "", err
	}
	for _, path := range paths {
		if strings.TrimSuffix(filepath.Base(path), ".json") == id {
			return path, nil
		}
	}
	return "", fmt.Errorf("case %q not found under %s", ref, store.BasePath())
}
