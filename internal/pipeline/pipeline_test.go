package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })
	return dir
}

func writeSource(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "main.lua")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_ExpandsAndWritesOutput(t *testing.T) {
	dir := withTempDir(t)
	path := writeSource(t, dir, "#define PI! = 3.14 #end\nx = PI!")

	if err := Run(path); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(dir, outputFile))
	if err != nil {
		t.Fatalf("expected %s to be written: %v", outputFile, err)
	}
	got := strings.Join(strings.Fields(string(out)), "")
	want := strings.Join(strings.Fields("x = 3.14"), "")
	if got != want {
		t.Errorf("got output %q, want %q", string(out), "x = 3.14")
	}
}

func TestRun_MissingFileIsAnError(t *testing.T) {
	withTempDir(t)
	if err := Run("does-not-exist.lua"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestRun_LexFailureIsAnError(t *testing.T) {
	dir := withTempDir(t)
	path := writeSource(t, dir, "x = `")

	if err := Run(path); err == nil {
		t.Fatal("expected a tokenization error")
	}
}

func TestRun_OverwritesExistingOutput(t *testing.T) {
	dir := withTempDir(t)
	if err := os.WriteFile(filepath.Join(dir, outputFile), []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := writeSource(t, dir, "x = 1")

	if err := Run(path); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	out, err := os.ReadFile(filepath.Join(dir, outputFile))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "stale") {
		t.Errorf("expected out.lua to be truncated, got %q", string(out))
	}
}
