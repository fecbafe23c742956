package casestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"safeairway/internal/airwaycase"
	"safeairway/internal/textutil"
)

// CasesByType lists the *.json files in the directory for t, most recently
// modified first.
func (s *Store) CasesByType(t airwaycase.CaseType) ([]string, error) {
	dir := s.CaseDirectory(t)
	if dir == "" {
		return nil, ErrNotInitialized
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", ErrIO, dir, err)
	}

	type candidate struct {
		path    string
		modTime time.Time
	}
	files := make([]candidate, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, candidate{path: filepath.Join(dir, entry.Name()), modTime: info.ModTime()})
	}
	sort.SliceStable(files, func(i, j int) bool {
		if files[i].modTime.Equal(files[j].modTime) {
			return files[i].path < files[j].path
		}
		return files[i].modTime.After(files[j].modTime)
	})

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.path
	}
	return paths, nil
}

// AllCases concatenates CasesByType for every case type in storage order.
// The result is not globally time-sorted.
func (s *Store) AllCases() ([]string, error) {
	var all []string
	for _, ct := range airwaycase.CaseTypes {
		paths, err := s.CasesByType(ct)
		if err != nil {
			return nil, err
		}
		all = append(all, paths...)
	}
	return all, nil
}

// Summary is the listing view of one case file.
type Summary struct {
	Path      string
	ID        string
	Type      airwaycase.CaseType
	Patient   string
	MRN       string
	UpdatedAt time.Time
	// Err is set when the file could not be read or parsed; the other
	// fields are then zero apart from Path.
	Err error
}

// SearchText is the text matched by case search.
func (s Summary) SearchText() string {
	return strings.Join([]string{s.Patient, s.MRN, s.ID}, " ")
}

// Summaries reads each path and returns listing data in the same order.
// Unlike Load it does not touch the recent list, and an unreadable file is
// reported in its summary rather than failing the whole listing.
func (s *Store) Summaries(ctx context.Context, paths []string) []Summary {
	out := make([]Summary, 0, len(paths))
	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		out = append(out, summarize(path))
	}
	return out
}

func summarize(path string) Summary {
	sum := Summary{Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		sum.Err = fmt.Errorf("%w: %v", ErrIO, err)
		return sum
	}
	c, err := airwaycase.Unmarshal(data)
	if err != nil {
		sum.Err = fmt.Errorf("%w: %v", ErrParse, err)
		return sum
	}
	d := c.Details()
	sum.ID = c.ID()
	sum.Type = c.Type()
	sum.Patient = textutil.DisplayName(d.Patient.FirstName, d.Patient.LastName)
	sum.MRN = d.Patient.MRN
	sum.UpdatedAt = c.UpdatedAt()
	return sum
}

// Search ranks the summaries of every stored case against query, best match
// first. Cases that do not match at all are omitted.
func (s *Store) Search(ctx context.Context, query string) ([]Summary, error) {
	paths, err := s.AllCases()
	if err != nil {
		return nil, err
	}
	type scored struct {
		summary Summary
		score   float64
	}
	var hits []scored
	for _, sum := range s.Summaries(ctx, paths) {
		if sum.Err != nil {
			continue
		}
		if score := textutil.MatchScore(query, sum.SearchText()); score > 0 {
			hits = append(hits, scored{summary: sum, score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	out := make([]Summary, len(hits))
	for i, h := range hits {
		out[i] = h.summary
	}
	return out, nil
}
