package apexfuel

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\noutput:\n%s", args, err, buf.String())
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apexfuel.db")
	for i := 0; i < 2; i++ {
		buf := &bytes.Buffer{}
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		rootCmd.SetArgs([]string{"--db", path, "init"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("init run %d failed: %v", i+1, err)
		}
	}
}

func TestQuickLogThenToday(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apexfuel.db")

	runCommand(t, "--db", path, "log", "quick", "carb", "50")
	out := runCommand(t, "--db", path, "today")

	if !strings.Contains(out, "Carbs: 50g") {
		t.Fatalf("expected today to show 50g carbs, got:\n%s", out)
	}
	if !strings.Contains(out, "Calories: 200 kcal") {
		t.Fatalf("expected 200 kcal for 50g carbs, got:\n%s", out)
	}
}

func TestFoodAddShowsUpInList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apexfuel.db")

	runCommand(t, "--db", path, "food", "add",
		"--name", "Beet juice", "--category", "Liquid", "--carbs", "9")
	out := runCommand(t, "--db", path, "food", "list")

	if !strings.Contains(out, "Beet juice") {
		t.Fatalf("added food missing from list:\n%s", out)
	}
}

func TestParseGramsClampsBadInput(t *testing.T) {
	t.Parallel()
	if got := parseGrams("abc"); got != 0 {
		t.Fatalf("parseGrams(abc) = %d, want 0", got)
	}
	if got := parseGrams("-5"); got != 0 {
		t.Fatalf("parseGrams(-5) = %d, want 0", got)
	}
	if got := parseGrams(" 120 "); got != 120 {
		t.Fatalf("parseGrams(120) = %d, want 120", got)
	}
}

func TestDateKeyOrToday(t *testing.T) {
	t.Parallel()
	key, err := dateKeyOrToday("2024-06-01")
	if err != nil || key != "2024-06-01" {
		t.Fatalf("dateKeyOrToday(2024-06-01) = %q, %v", key, err)
	}
	if _, err := dateKeyOrToday("June 1st"); err == nil {
		t.Fatalf("expected malformed date to fail")
	}
	if key, err := dateKeyOrToday(""); err != nil || len(key) != 10 {
		t.Fatalf("empty date should resolve to today, got %q, %v", key, err)
	}
}
