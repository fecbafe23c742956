package casestore

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"safeairway/internal/airwaycase"
	"safeairway/internal/logging"
)

// ChangeEvent reports that something changed in a case directory.
type ChangeEvent struct {
	Path string
	Type airwaycase.CaseType
	Op   string
}

// Watch calls fn for every create, write, remove, or rename of a case file
// until ctx is cancelled. Events are advisory: they prompt a listing refresh
// and carry no guarantee that the file is complete or still present.
func (s *Store) Watch(ctx context.Context, fn func(ChangeEvent)) error {
	if s.BasePath() == "" {
		return ErrNotInitialized
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: create watcher: %v", ErrIO, err)
	}
	defer watcher.Close()

	dirs := make(map[string]airwaycase.CaseType, len(airwaycase.CaseTypes))
	for _, ct := range airwaycase.CaseTypes {
		dir := s.CaseDirectory(ct)
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("%w: watch %s: %v", ErrIO, dir, err)
		}
		dirs[dir] = ct
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isCaseFile(event.Name) || event.Op == fsnotify.Chmod {
				continue
			}
			fn(ChangeEvent{
				Path: event.Name,
				Type: dirs[filepath.Dir(event.Name)],
				Op:   opName(event.Op),
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.WarnWithContext(s.logger, "case directory watch error", "case_watch_error",
				logging.Error(err),
				logging.String(logging.FieldImpact, "case listing may be stale until refreshed"),
			)
		}
	}
}

// isCaseFile filters out the temporary files written during atomic saves.
func isCaseFile(name string) bool {
	base := filepath.Base(name)
	return !strings.HasPrefix(base, ".") && strings.EqualFold(filepath.Ext(base), ".json")
}

func opName(op fsnotify.Op) string {
	switch {
	case op.Has(fsnotify.Create):
		return "create"
	case op.Has(fsnotify.Write):
		return "write"
	case op.Has(fsnotify.Remove):
		return "remove"
	case op.Has(fsnotify.Rename):
		return "rename"
	}
	return op.String()
}
