package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDoctorReportsHealthyInstall(t *testing.T) {
	env := setupCLITestEnv(t)
	newTestCase(t, env)

	out := env.mustRun(t, "doctor")
	requireContains(t, out, "== Storage ==")
	requireContains(t, out, "Base directory:")
	requireContains(t, out, "Autosave:")
	requireNotContains(t, out, "[ERROR]")
}

func TestDoctorFailsOnUnreadableCase(t *testing.T) {
	env := setupCLITestEnv(t)
	newTestCase(t, env)

	bad := filepath.Join(env.cfg.Paths.BaseDir, "case_saves", "ltr", "broken.json")
	if err := os.WriteFile(bad, []byte("nope"), 0o644); err != nil {
		t.Fatalf("write broken case: %v", err)
	}
	out, _, err := runCLI(t, []string{"doctor"}, env.configPath)
	if err == nil {
		t.Fatal("expected doctor to fail")
	}
	requireContains(t, out, "[ERROR]")
}

func TestSessionRunsUntilDuration(t *testing.T) {
	env := setupCLITestEnv(t)
	view := newTestCase(t, env)

	start := time.Now()
	out := env.mustRun(t, "session", view.ID, "--duration", "150ms")
	if time.Since(start) < 150*time.Millisecond {
		t.Fatal("session returned before its duration")
	}
	requireContains(t, out, "Opened Tracheostomy case "+view.ID)
	requireContains(t, out, "Autosave every 5 min")
	if !strings.HasSuffix(out, "Session ended\n") {
		t.Fatalf("expected session to end cleanly, got %q", out)
	}

	env.mustRun(t, "prefs", "set", "autosave_enabled", "false")
	out = env.mustRun(t, "session", view.ID, "--duration", "50ms", "--no-watch")
	requireContains(t, out, "Autosave disabled")
}

func TestLogsShowsRecordedEntries(t *testing.T) {
	env := setupCLITestEnv(t)
	day := time.Date(2024, 3, 9, 12, 0, 0, 0, time.Local)
	path := filepath.Join(env.cfg.Paths.LogDir, "safeairway-2024-03-09.log")
	if err := os.MkdirAll(env.cfg.Paths.LogDir, 0o755); err != nil {
		t.Fatalf("mkdir logs: %v", err)
	}
	if err := os.WriteFile(path, []byte("first\nsecond\nthird\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	out := env.mustRun(t, "logs", "--date", day.Format("2006-01-02"), "-n", "2")
	if out != "second\nthird\n" {
		t.Fatalf("unexpected log tail %q", out)
	}

	if _, _, err := runCLI(t, []string{"logs", "--date", "yesterday"}, env.configPath); err == nil {
		t.Fatal("expected bad date to fail")
	}
}
