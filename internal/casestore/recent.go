package casestore

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"safeairway/internal/logging"
)

// RecentLimit is the maximum length of the recent-files list.
const RecentLimit = 10

const recentLockRetry = 50 * time.Millisecond

// RecentList persists the recent-files list.
type RecentList interface {
	RecentCases(ctx context.Context) ([]string, error)
	SaveRecentCases(ctx context.Context, list []string) error
}

// PushRecent returns list with path moved (or added) to the front and the
// result truncated to limit entries. list is not modified.
func PushRecent(list []string, path string, limit int) []string {
	out := make([]string, 0, min(len(list)+1, max(limit, 0)))
	if limit <= 0 {
		return out
	}
	out = append(out, path)
	for _, existing := range list {
		if len(out) == limit {
			break
		}
		if existing == path {
			continue
		}
		out = append(out, existing)
	}
	return out
}

// Recent returns the persisted recent-files list, most recent first.
func (s *Store) Recent(ctx context.Context) ([]string, error) {
	list, err := s.recent.RecentCases(ctx)
	if err != nil {
		return nil, fmt.Errorf("read recent cases: %w", err)
	}
	return list, nil
}

// touchRecent pushes path onto the recent list. The read-modify-write runs
// under a file lock so two processes touching cases at once do not drop each
// other's entries. Failures are logged; the save or load that triggered the
// update has already succeeded.
func (s *Store) touchRecent(ctx context.Context, path string) {
	if err := s.updateRecent(ctx, path); err != nil {
		logging.WarnWithContext(s.logger, "recent cases update failed", "recent_update_failed",
			logging.Path(path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the settings database"),
			logging.String(logging.FieldImpact, "case missing from the recent list"),
		)
	}
}

func (s *Store) updateRecent(ctx context.Context, path string) error {
	s.mu.Lock()
	lock := s.lock
	s.mu.Unlock()

	if lock != nil {
		locked, err := lock.TryLockContext(ctx, recentLockRetry)
		if err != nil {
			return fmt.Errorf("lock recent list: %w", err)
		}
		if !locked {
			return fmt.Errorf("lock recent list: not acquired")
		}
		defer func() { _ = lock.Unlock() }()
	}

	list, err := s.recent.RecentCases(ctx)
	if err != nil {
		return fmt.Errorf("read recent cases: %w", err)
	}
	if err := s.recent.SaveRecentCases(ctx, PushRecent(list, path, RecentLimit)); err != nil {
		return fmt.Errorf("save recent cases: %w", err)
	}
	return nil
}

// MemoryRecentList keeps the recent list in memory. It is used when no
// settings store is available.
type MemoryRecentList struct {
	mu   sync.Mutex
	list []string
}

func (m *MemoryRecentList) RecentCases(context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.list), nil
}

func (m *MemoryRecentList) SaveRecentCases(_ context.Context, list []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.list = slices.Clone(list)
	return nil
}
