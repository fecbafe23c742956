package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"safeairway/internal/autosave"
	"safeairway/internal/casestore"
	"safeairway/internal/logging"
)

func newSessionCommand(ctx *commandContext) *cobra.Command {
	var duration time.Duration
	var noWatch bool

	cmd := &cobra.Command{
		Use:   "session <case>",
		Short: "Keep a case open, auto-saving it and reporting changes to the case folders",
		Long: "Session loads a case and re-saves it on the autosave interval from the " +
			"preferences until interrupted. Case files created, changed or removed by " +
			"other programs are reported as they happen.",
		Args: cobra.ExactArgs(1),
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
				prefs, err := env.settings.Preferences(cmd.Context())
				if err != nil {
					return err
				}

				runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				if duration > 0 {
					var cancel context.CancelFunc
					runCtx, cancel = context.WithTimeout(runCtx, duration)
					defer cancel()
				}

				out := cmd.OutOrStdout()
				var outMu sync.Mutex
				printf := func(format string, a ...any) {
					outMu.Lock()
					defer outMu.Unlock()
					fmt.Fprintf(out, format, a...)
				}

				logger := logging.NewComponentLogger(env.logger, "session")
				timer := autosave.New(logger)
				timer.SetEnabled(prefs.AutoSaveEnabled)
				timer.SetInterval(prefs.AutoSaveInterval)

				printf("Opened %s case %s (%s)\n", c.Type().Label(), c.ID(), c.FilePath())
				if timer.Enabled() {
					printf("Autosave every %d min\n", timer.Interval())
				} else {
					printf("Autosave disabled\n")
				}

				var wg sync.WaitGroup
				if !noWatch {
					own, _ := filepath.Abs(c.FilePath())
					wg.Add(1)
					go func() {
						defer wg.Done()
						err := env.store.Watch(runCtx, func(ev casestore.ChangeEvent) {
							if ev.Path == own {
								return
							}
							printf("%s %s: %s\n", ev.Op, ev.Type.Label(), filepath.Base(ev.Path))
						})
						if err != nil && !errors.Is(err, context.Canceled) {
							logging.WarnWithContext(logger, "case folder watch stopped", "watch_failed",
								logging.Error(err),
								logging.String(logging.FieldErrorHint, "changes made by other programs will not be reported"),
							)
						}
					}()
				}

				timer.Run(runCtx, func(time.Time) {
					saved, err := env.store.Save(runCtx, c)
					if err != nil {
						logging.ErrorWithContext(logger, "autosave failed", "autosave_failed",
							logging.CaseID(c.ID()),
							logging.Error(err),
						)
						printf("Autosave failed: %v\n", err)
						return
					}
					logger.Info("case auto-saved", logging.Args(logging.CaseID(c.ID()), logging.Path(saved))...)
					printf("Auto-saved %s\n", saved)
				})
				wg.Wait()

				printf("Session ended\n")
				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&duration, "duration", 0, "End the session after this long (default: until interrupted)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not report changes made to the case folders")
	return cmd
}
