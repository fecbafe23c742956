package testsupport

import (
	"context"
	"testing"

	"safeairway/internal/airwaycase"
	"safeairway/internal/casestore"
	"safeairway/internal/config"
	"safeairway/internal/logging"
	"safeairway/internal/settings"
)

// MustOpenSettings opens a settings.Store for tests and registers cleanup.
func MustOpenSettings(t testing.TB, cfg *config.Config) *settings.Store {
	t.Helper()

	store, err := settings.Open(cfg)
	if err != nil {
		t.Fatalf("settings.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// MustOpenStore returns an initialized case store backed by the settings
// database for cfg.
func MustOpenStore(t testing.TB, cfg *config.Config) (*casestore.Store, *settings.Store) {
	t.Helper()

	prefs := MustOpenSettings(t, cfg)
	store := casestore.New(prefs, logging.NewNop())
	if err := store.Initialize(cfg.Paths.BaseDir); err != nil {
		t.Fatalf("casestore.Initialize: %v", err)
	}
	return store, prefs
}

// NewCase builds a valid case of type ct with a named patient and one tube row.
func NewCase(t testing.TB, ct airwaycase.CaseType, first, last string) *airwaycase.Case {
	t.Helper()

	c := airwaycase.New(ct)
	c.Edit(func(d *airwaycase.Details) {
		d.Patient = airwaycase.Patient{FirstName: first, LastName: last, MRN: "MRN-" + last}
		d.SpecTable = []airwaycase.SpecRow{{
			MakeModel: "Bivona",
			Size:      "4.0",
			Type:      "Neonatal",
			Cuff:      "Cuffless",
		}}
		d.Suction = airwaycase.Suction{Size: 8, Depth: "5.5"}
	})
	if err := c.Validate(); err != nil {
		t.Fatalf("fixture case invalid: %v", err)
	}
	return c
}

// MustSave saves c and returns its path.
func MustSave(t testing.TB, store *casestore.Store, c *airwaycase.Case) string {
	t.Helper()

	path, err := store.Save(context.Background(), c)
	if err != nil {
		t.Fatalf("store.Save: %v", err)
	}
	return path
}
