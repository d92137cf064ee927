package secrets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPrefersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := Load(Source{Name: "api key", Value: "inline", File: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-file" {
		t.Fatalf("expected file secret, got %q", got)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := Load(Source{Name: "api key", File: path})
	if err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected empty file error, got %v", err)
	}
}

func TestLoadFallsBackToEnv(t *testing.T) {
	t.Setenv("RT_TEST_PRIMARY", "")
	t.Setenv("RT_TEST_SECONDARY", " env-secret ")

	got, err := Load(Source{Env: []string{"RT_TEST_PRIMARY", "RT_TEST_SECONDARY"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "env-secret" {
		t.Fatalf("expected env secret, got %q", got)
	}

	got, err = Load(Source{Value: "inline", Env: []string{"RT_TEST_SECONDARY"}})
	if err != nil || got != "inline" {
		t.Fatalf("expected inline value to win over env, got %q (%v)", got, err)
	}
}

func TestLoadNotConfigured(t *testing.T) {
	t.Setenv("RT_TEST_MISSING", "")

	_, err := Load(Source{Name: "Gemini API key", Env: []string{"RT_TEST_MISSING"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Gemini API key is not configured") || !strings.Contains(err.Error(), "RT_TEST_MISSING") {
		t.Fatalf("unexpected error message: %v", err)
	}
}
