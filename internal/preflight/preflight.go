package preflight

import (
	"context"

	"safeairway/internal/airwaycase"
	"safeairway/internal/casestore"
	"safeairway/internal/config"
)

// minFreeBytes is the free space below which the case volume is flagged.
const minFreeBytes = 50 << 20

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every storage check for cfg. store may be nil, in which
// case the case file scan is skipped.
func RunAll(ctx context.Context, cfg *config.Config, store *casestore.Store) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryAccess("Base directory", cfg.Paths.BaseDir),
	}
	if store != nil && store.BasePath() != "" {
		for _, ct := range airwaycase.CaseTypes {
			results = append(results, CheckDirectoryAccess(ct.Label()+" cases", store.CaseDirectory(ct)))
		}
	}
	results = append(results,
		CheckFreeSpace("Case volume", cfg.Paths.BaseDir, minFreeBytes),
		CheckFileAccess("Settings database", cfg.Paths.SettingsPath),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	)
	if store != nil && store.BasePath() != "" {
		results = append(results, CheckCaseFiles(ctx, store))
	}
	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
