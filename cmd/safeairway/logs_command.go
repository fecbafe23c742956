package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"safeairway/internal/logging"
	"safeairway/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var follow bool
	var day string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Display the application log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			when := time.Now()
			if strings.TrimSpace(day) != "" {
				when, err = time.ParseInLocation("2006-01-02", strings.TrimSpace(day), time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q (want YYYY-MM-DD)", day)
				}
			}
			path := logging.LogFilePath(cfg.Paths.LogDir, when)

			tail, offset, err := logs.Last(path, lines)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, line := range tail {
				fmt.Fprintln(out, line)
			}
			if !follow {
				if len(tail) == 0 && lines > 0 {
					fmt.Fprintf(cmd.ErrOrStderr(), "No log entries in %s\n", path)
				}
				return nil
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return logs.Follow(runCtx, path, offset, func(line string) {
				fmt.Fprintln(out, line)
			})
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 20, "Number of trailing lines to show")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing lines as they are written")
	cmd.Flags().StringVar(&day, "date", "", "Show the log for this day (YYYY-MM-DD) instead of today")
	return cmd
}
