package casestore_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"safeairway/internal/airwaycase"
	"safeairway/internal/casestore"
	"safeairway/internal/logging"
	"safeairway/internal/testsupport"
)

func newStore(t *testing.T) (*casestore.Store, *casestore.MemoryRecentList, string) {
	t.Helper()
	recent := &casestore.MemoryRecentList{}
	store := casestore.New(recent, logging.NewNop())
	base := filepath.Join(t.TempDir(), "SafeAirway")
	if err := store.Initialize(base); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return store, recent, base
}

func TestInitializeIsIdempotent(t *testing.T) {
	store, _, base := newStore(t)
	if err := store.Initialize(base); err != nil {
		t.Fatalf("second Initialize: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(base, "case_saves"))
	if err != nil {
		t.Fatalf("read case_saves: %v", err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	want := []string{"difficult_airway", "ltr", "new_tracheostomy", "tracheostomy"}
	if !slices.Equal(dirs, want) {
		t.Fatalf("unexpected directories %v, want %v", dirs, want)
	}
	if store.CaseDirectory(airwaycase.LTR) != filepath.Join(base, "case_saves", "ltr") {
		t.Fatalf("unexpected LTR directory %q", store.CaseDirectory(airwaycase.LTR))
	}
}

func TestInitializeFailsWhenBaseIsAFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := casestore.New(nil, nil)
	err := store.Initialize(file)
	if !errors.Is(err, casestore.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	if store.BasePath() != "" {
		t.Fatalf("base path should stay unset, got %q", store.BasePath())
	}
}

func TestSaveBeforeInitialize(t *testing.T) {
	store := casestore.New(nil, nil)
	c := testsupport.NewCase(t, airwaycase.Tracheostomy, "Ann", "Lee")
	if _, err := store.Save(context.Background(), c); !errors.Is(err, casestore.ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestSaveKeepsIdentityAcrossEdits(t *testing.T) {
	store, _, _ := newStore(t)
	ctx := context.Background()
	c := testsupport.NewCase(t, airwaycase.Tracheostomy, "Ann", "Lee")

	first, err := store.Save(ctx, c)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if c.FilePath() != first {
		t.Fatalf("expected file path recorded on case, got %q", c.FilePath())
	}
	c.Edit(func(d *airwaycase.Details) { d.SpecialComments = "changed" })
	second, err := store.Save(ctx, c)
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if first != second {
		t.Fatalf("expected same path, got %q then %q", first, second)
	}

	paths, err := store.CasesByType(airwaycase.Tracheostomy)
	if err != nil {
		t.Fatalf("CasesByType: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("expected exactly one file, got %v", paths)
	}

	loaded, err := store.Load(ctx, first)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Details().SpecialComments != "changed" {
		t.Fatalf("expected edited content on disk")
	}
}

func TestSaveOverwritesLoadedFileOutsideTypeDirectory(t *testing.T) {
	store, _, _ := newStore(t)
	ctx := context.Background()
	c := testsupport.NewCase(t, airwaycase.DifficultAirway, "Bo", "Ng")

	external := filepath.Join(t.TempDir(), "handoff.json")
	if err := store.Export(c, external); err != nil {
		t.Fatalf("Export: %v", err)
	}
	imported, err := store.Import(ctx, external)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	path, err := store.Save(ctx, imported)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != external {
		t.Fatalf("expected overwrite of %q, got %q", external, path)
	}
}

func TestSaveFallsBackWhenRecordedPathIsGone(t *testing.T) {
	store, _, base := newStore(t)
	c := testsupport.NewCase(t, airwaycase.NewTracheostomy, "Cy", "Ray")
	c.SetFilePath(filepath.Join(t.TempDir(), "deleted.json"))

	path, err := store.Save(context.Background(), c)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	want := filepath.Join(base, "case_saves", "new_tracheostomy", c.ID()+".json")
	if path != want {
		t.Fatalf("got %q want %q", path, want)
	}
}

func TestSaveWritesCompactJSON(t *testing.T) {
	store, _, _ := newStore(t)
	c := testsupport.NewCase(t, airwaycase.Tracheostomy, "Di", "Fox")
	path, err := store.Save(context.Background(), c)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if slices.Contains(data, '\n') {
		t.Fatalf("expected compact JSON, got %q", data)
	}
}

func TestExportWritesIndentedJSONWithoutRecent(t *testing.T) {
	store, recent, _ := newStore(t)
	c := testsupport.NewCase(t, airwaycase.LTR, "Ed", "Hu")
	path := filepath.Join(t.TempDir(), "export.json")

	if err := store.Export(c, path); err != nil {
		t.Fatalf("Export: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "{\n    \"id\": ") {
		t.Fatalf("expected four-space indented JSON, got:\n%s", data)
	}
	if c.FilePath() != "" {
		t.Fatalf("export must not set the case file path, got %q", c.FilePath())
	}
	list, _ := recent.RecentCases(context.Background())
	if len(list) != 0 {
		t.Fatalf("export must not touch recent list, got %v", list)
	}
}

func TestLoadFailureIsolation(t *testing.T) {
	store, recent, _ := newStore(t)
	ctx := context.Background()
	good := testsupport.NewCase(t, airwaycase.Tracheostomy, "Fay", "Orr")
	goodPath := testsupport.MustSave(t, store, good)

	before, _ := recent.RecentCases(ctx)
	missing := filepath.Join(t.TempDir(), "missing.json")
	c, err := store.Load(ctx, missing)
	if !errors.Is(err, casestore.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
	if c != nil {
		t.Fatal("expected no case on failure")
	}

	malformed := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(malformed, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(ctx, malformed); !errors.Is(err, casestore.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}

	after, _ := recent.RecentCases(ctx)
	if !slices.Equal(before, after) || after[0] != goodPath {
		t.Fatalf("recent list changed on failure: before %v after %v", before, after)
	}
}

func TestCaseTypeRouting(t *testing.T) {
	store, _, base := newStore(t)
	c := testsupport.NewCase(t, airwaycase.LTR, "Gil", "Park")
	path := testsupport.MustSave(t, store, c)

	if filepath.Dir(path) != filepath.Join(base, "case_saves", "ltr") {
		t.Fatalf("expected ltr directory, got %q", path)
	}
	ltr, err := store.CasesByType(airwaycase.LTR)
	if err != nil {
		t.Fatalf("CasesByType: %v", err)
	}
	if !slices.Contains(ltr, path) {
		t.Fatalf("expected %q in LTR listing %v", path, ltr)
	}
	trach, err := store.CasesByType(airwaycase.Tracheostomy)
	if err != nil {
		t.Fatalf("CasesByType: %v", err)
	}
	if slices.Contains(trach, path) {
		t.Fatalf("LTR case leaked into tracheostomy listing")
	}
}

func TestCasesByTypeNewestFirstAndJSONOnly(t *testing.T) {
	store, _, _ := newStore(t)
	dir := store.CaseDirectory(airwaycase.Tracheostomy)
	base := time.Now().Add(-time.Hour)
	names := []string{"old.json", "mid.json", "new.json"}
	for i, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
		mod := base.Add(time.Duration(i) * time.Minute)
		if err := os.Chtimes(path, mod, mod); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	paths, err := store.CasesByType(airwaycase.Tracheostomy)
	if err != nil {
		t.Fatalf("CasesByType: %v", err)
	}
	var got []string
	for _, p := range paths {
		got = append(got, filepath.Base(p))
	}
	want := []string{"new.json", "mid.json", "old.json"}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestAllCasesFixedTypeOrder(t *testing.T) {
	store, _, _ := newStore(t)
	ltr := testsupport.MustSave(t, store, testsupport.NewCase(t, airwaycase.LTR, "A", "A"))
	da := testsupport.MustSave(t, store, testsupport.NewCase(t, airwaycase.DifficultAirway, "B", "B"))
	trach := testsupport.MustSave(t, store, testsupport.NewCase(t, airwaycase.Tracheostomy, "C", "C"))

	all, err := store.AllCases()
	if err != nil {
		t.Fatalf("AllCases: %v", err)
	}
	want := []string{trach, da, ltr}
	if !slices.Equal(all, want) {
		t.Fatalf("got %v want %v", all, want)
	}
}

func TestDelete(t *testing.T) {
	store, _, _ := newStore(t)
	path := testsupport.MustSave(t, store, testsupport.NewCase(t, airwaycase.Tracheostomy, "D", "D"))
	if err := store.Delete(path); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err=%v", err)
	}
	if err := store.Delete(path); !errors.Is(err, casestore.ErrIO) {
		t.Fatalf("expected ErrIO deleting twice, got %v", err)
	}
}

func TestLoadUnknownCaseTypeDefaultsToTracheostomy(t *testing.T) {
	store, _, _ := newStore(t)
	path := filepath.Join(t.TempDir(), "legacy.json")
	record := `{"id":"abc","caseType":"pediatric_icu","patient":{"firstName":"Zed"},"specTable":[]}`
	if err := os.WriteFile(path, []byte(record), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := store.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Type() != airwaycase.Tracheostomy {
		t.Fatalf("expected tracheostomy, got %v", c.Type())
	}
	if raw, ok := c.UnrecognizedType(); !ok || raw != "pediatric_icu" {
		t.Fatalf("expected unrecognized type flag, got %q %v", raw, ok)
	}
}

func TestLoadKeepsCaseWithUnreadableTimestamp(t *testing.T) {
	store, _, _ := newStore(t)
	path := filepath.Join(t.TempDir(), "odd.json")
	record := `{"id":"abc","caseType":"ltr","createdAt":"garbage","updatedAt":"2024-01-01T10:00:00Z"}`
	if err := os.WriteFile(path, []byte(record), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := store.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.CreatedAt().IsZero() {
		t.Fatalf("expected zero createdAt, got %v", c.CreatedAt())
	}
	if got := c.InvalidTimestamps(); !slices.Equal(got, []string{"createdAt=garbage"}) {
		t.Fatalf("unexpected invalid timestamps %v", got)
	}
}

func TestRecentListThroughStore(t *testing.T) {
	store, _, _ := newStore(t)
	ctx := context.Background()
	var paths []string
	for i := 0; i < 12; i++ {
		c := testsupport.NewCase(t, airwaycase.Tracheostomy, fmt.Sprintf("P%d", i), "Q")
		paths = append(paths, testsupport.MustSave(t, store, c))
	}
	list, err := store.Recent(ctx)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(list) != casestore.RecentLimit {
		t.Fatalf("expected %d entries, got %d", casestore.RecentLimit, len(list))
	}
	if list[0] != paths[11] || list[9] != paths[2] {
		t.Fatalf("unexpected order %v", list)
	}

	if _, err := store.Load(ctx, paths[5]); err != nil {
		t.Fatalf("Load: %v", err)
	}
	list, _ = store.Recent(ctx)
	if list[0] != paths[5] || len(list) != casestore.RecentLimit {
		t.Fatalf("expected reloaded path at front without growth, got %v", list)
	}
}

func TestRecentListPersistsInSettings(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store, prefs := testsupport.MustOpenStore(t, cfg)
	path := testsupport.MustSave(t, store, testsupport.NewCase(t, airwaycase.Tracheostomy, "Sam", "Vo"))

	list, err := prefs.RecentCases(context.Background())
	if err != nil {
		t.Fatalf("RecentCases: %v", err)
	}
	if !slices.Equal(list, []string{path}) {
		t.Fatalf("expected %q persisted, got %v", path, list)
	}
}
