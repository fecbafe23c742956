package settings_test

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"safeairway/internal/config"
	"safeairway/internal/settings"
)

func openStore(t *testing.T) (*settings.Store, *config.Config) {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.BaseDir = t.TempDir()
	cfg.Paths.SettingsPath = filepath.Join(t.TempDir(), "conf", "settings.db")
	store, err := settings.Open(&cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, &cfg
}

func TestPreferencesDefaults(t *testing.T) {
	store, cfg := openStore(t)
	prefs, err := store.Preferences(context.Background())
	if err != nil {
		t.Fatalf("Preferences: %v", err)
	}
	want := settings.Preferences{
		LastDirectory:    cfg.Paths.BaseDir,
		FontSize:         12,
		AutoSaveEnabled:  true,
		AutoSaveInterval: 5,
	}
	if prefs != want {
		t.Fatalf("unexpected defaults: got %+v want %+v", prefs, want)
	}
}

func TestSetPreferenceValidatesAndPersists(t *testing.T) {
	store, cfg := openStore(t)
	ctx := context.Background()

	if err := store.SetPreference(ctx, settings.KeyFontSize, " 14 "); err != nil {
		t.Fatalf("set font size: %v", err)
	}
	if err := store.SetPreference(ctx, settings.KeyAutoSaveEnabled, "false"); err != nil {
		t.Fatalf("set autosave enabled: %v", err)
	}
	if err := store.SetPreference(ctx, settings.KeyAutoSaveInterval, "0"); !errors.Is(err, settings.ErrInvalidValue) {
		t.Fatalf("expected invalid interval, got %v", err)
	}
	if err := store.SetPreference(ctx, "theme", "dark"); !errors.Is(err, settings.ErrUnknownKey) {
		t.Fatalf("expected unknown key, got %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := settings.Open(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	prefs, err := reopened.Preferences(ctx)
	if err != nil {
		t.Fatalf("Preferences: %v", err)
	}
	if prefs.FontSize != 14 || prefs.AutoSaveEnabled || prefs.AutoSaveInterval != 5 {
		t.Fatalf("unexpected persisted prefs %+v", prefs)
	}
}

func TestRecentCasesRoundTrip(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()

	list, err := store.RecentCases(ctx)
	if err != nil {
		t.Fatalf("RecentCases: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %v", list)
	}

	want := []string{"/b.json", "/a.json"}
	if err := store.SaveRecentCases(ctx, want); err != nil {
		t.Fatalf("SaveRecentCases: %v", err)
	}
	got, err := store.RecentCases(ctx)
	if err != nil {
		t.Fatalf("RecentCases: %v", err)
	}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestRecentCasesCorruptValueReadsEmpty(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()
	if err := store.Put(ctx, settings.KeyRecentCases, "{not json"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	list, err := store.RecentCases(ctx)
	if err != nil || len(list) != 0 {
		t.Fatalf("expected empty list without error, got %v %v", list, err)
	}
}

func TestDeleteMissingKey(t *testing.T) {
	store, _ := openStore(t)
	ctx := context.Background()
	if err := store.Delete(ctx, "nope"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, err := store.Get(ctx, "nope"); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
}
