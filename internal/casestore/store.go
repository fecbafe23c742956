package casestore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"

	"safeairway/internal/airwaycase"
	"safeairway/internal/fileutil"
	"safeairway/internal/logging"
)

const (
	savesDirName = "case_saves"
	lockFileName = ".recent.lock"
	fileMode     = 0o644
)

// Store mediates all case file I/O.
type Store struct {
	recent RecentList
	logger *slog.Logger

	mu       sync.Mutex
	basePath string
	lock     *flock.Flock
}

// New returns a store that records recent files through recent. Call
// Initialize before using directory-relative operations.
func New(recent RecentList, logger *slog.Logger) *Store {
	if recent == nil {
		recent = &MemoryRecentList{}
	}
	return &Store{
		recent: recent,
		logger: logging.NewComponentLogger(logger, "casestore"),
	}
}

// Initialize creates the case directory tree under basePath. It is
// idempotent; existing directories are left alone.
func (s *Store) Initialize(basePath string) error {
	if basePath == "" {
		return fmt.Errorf("%w: empty base path", ErrIO)
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return fmt.Errorf("%w: resolve base path: %v", ErrIO, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return fmt.Errorf("%w: create base directory %s: %v", ErrIO, abs, err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: base directory %s does not exist after creation", ErrIO, abs)
	}
	for _, ct := range airwaycase.CaseTypes {
		dir := caseDirectory(abs, ct)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create %s: %v", ErrIO, dir, err)
		}
	}

	s.mu.Lock()
	s.basePath = abs
	s.lock = flock.New(filepath.Join(abs, savesDirName, lockFileName))
	s.mu.Unlock()

	s.logger.Debug("case directories ready", logging.Path(abs))
	return nil
}

// BasePath returns the initialized base directory, or "" before Initialize.
func (s *Store) BasePath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.basePath
}

// CaseDirectory returns the directory holding cases of type t.
func (s *Store) CaseDirectory(t airwaycase.CaseType) string {
	base := s.BasePath()
	if base == "" {
		return ""
	}
	return caseDirectory(base, t)
}

func caseDirectory(base string, t airwaycase.CaseType) string {
	return filepath.Join(base, savesDirName, t.String())
}

// Save writes c as compact JSON. A case that already has an existing file is
// overwritten in place; otherwise it is written to <type dir>/<id>.json. On
// success the path is recorded on c and pushed onto the recent list.
func (s *Store) Save(ctx context.Context, c *airwaycase.Case) (string, error) {
	if c == nil {
		return "", errors.New("save: nil case")
	}
	path := c.FilePath()
	if path == "" || !fileutil.Exists(path) {
		dir := s.CaseDirectory(c.Type())
		if dir == "" {
			return "", ErrNotInitialized
		}
		path = filepath.Join(dir, c.ID()+".json")
	}

	data, err := airwaycase.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode case %s: %w", c.ID(), err)
	}
	if err := fileutil.WriteAtomic(path, data, fileMode); err != nil {
		logging.ErrorWithContext(s.logger, "case save failed", "case_save_failed",
			logging.CaseID(c.ID()),
			logging.Path(path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check that the case directory is writable"),
		)
		return "", fmt.Errorf("%w: save %s: %v", ErrIO, path, err)
	}

	c.SetFilePath(path)
	s.touchRecent(ctx, path)
	s.logger.Info("case saved",
		logging.CaseID(c.ID()),
		logging.CaseType(c.Type().String()),
		logging.Path(path),
	)
	return path, nil
}

// Load reads and parses the case at path. On failure no case is returned and
// the recent list is untouched. On success the case carries path as its file
// path and path moves to the front of the recent list.
func (s *Store) Load(ctx context.Context, path string) (*airwaycase.Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrIO, path, err)
	}
	c, err := airwaycase.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}

	if abs, absErr := filepath.Abs(path); absErr == nil {
		path = abs
	}
	c.SetFilePath(path)

	if raw, unknown := c.UnrecognizedType(); unknown {
		logging.WarnWithContext(s.logger, "unrecognized case type; treating as tracheostomy", "case_type_unrecognized",
			logging.CaseID(c.ID()),
			logging.Path(path),
			logging.CaseType(raw),
			logging.String(logging.FieldErrorHint, "re-save the case with the correct type"),
			logging.String(logging.FieldImpact, "case is listed and saved as tracheostomy"),
		)
	}
	if bad := c.InvalidTimestamps(); len(bad) > 0 {
		logging.WarnWithContext(s.logger, "unreadable case timestamps; treating as unset", "case_timestamp_invalid",
			logging.CaseID(c.ID()),
			logging.Path(path),
			logging.String("timestamps", strings.Join(bad, ", ")),
			logging.String(logging.FieldImpact, "affected times show as blank; editing the case refreshes updatedAt"),
		)
	}

	s.touchRecent(ctx, path)
	s.logger.Debug("case loaded", logging.CaseID(c.ID()), logging.Path(path))
	return c, nil
}

// Import behaves exactly like Load.
func (s *Store) Import(ctx context.Context, path string) (*airwaycase.Case, error) {
	return s.Load(ctx, path)
}

// Delete removes the case file at path.
func (s *Store) Delete(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: delete %s: %v", ErrIO, path, err)
	}
	s.logger.Info("case deleted", logging.Path(path))
	return nil
}

// Export writes c as indented JSON to an arbitrary path. The case's own file
// path and the recent list are not changed.
func (s *Store) Export(c *airwaycase.Case, path string) error {
	if c == nil {
		return errors.New("export: nil case")
	}
	data, err := airwaycase.MarshalIndent(c)
	if err != nil {
		return fmt.Errorf("encode case %s: %w", c.ID(), err)
	}
	if err := fileutil.WriteAtomic(path, data, fileMode); err != nil {
		return fmt.Errorf("%w: export %s: %v", ErrIO, path, err)
	}
	s.logger.Info("case exported", logging.CaseID(c.ID()), logging.Path(path))
	return nil
}
