package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_DefaultsWhenFileMissing(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Catalog.BaseURL != "https://api.themoviedb.org/3" {
		t.Fatalf("BaseURL = %q", cfg.Catalog.BaseURL)
	}
	if cfg.UI.ToastDuration != 2*time.Second {
		t.Fatalf("ToastDuration = %v, want 2s", cfg.UI.ToastDuration)
	}
	if cfg.UI.OverviewLimit != 150 {
		t.Fatalf("OverviewLimit = %d, want 150", cfg.UI.OverviewLimit)
	}
	if cfg.IsConfigured() {
		t.Fatalf("IsConfigured = true without API key")
	}
}

func TestLoadConfig_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`catalog:
  api_key: from-file
  poster_size: w185
  page: 0
ui:
  toast_duration: 3s
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MOVIEHOUSE_LOGGING_LEVEL", "debug")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Catalog.APIKey != "from-file" || !cfg.IsConfigured() {
		t.Fatalf("APIKey = %q, want from-file", cfg.Catalog.APIKey)
	}
	if cfg.Catalog.PosterSize != "w185" {
		t.Fatalf("PosterSize = %q, want w185", cfg.Catalog.PosterSize)
	}
	if cfg.Catalog.Page != 1 {
		t.Fatalf("Page = %d, want clamped to 1", cfg.Catalog.Page)
	}
	if cfg.UI.ToastDuration != 3*time.Second {
		t.Fatalf("ToastDuration = %v, want 3s", cfg.UI.ToastDuration)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("Logging.Level = %q, want env override", cfg.Logging.Level)
	}
}

func TestLoadConfig_EnvAPIKey(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("MOVIEHOUSE_CATALOG_API_KEY", "secret")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Catalog.APIKey != "secret" {
		t.Fatalf("APIKey = %q, want secret", cfg.Catalog.APIKey)
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Catalog.APIKey = "abc123"
	cfg.Opener.Command = "feh"
	cfg.UI.ToastDuration = 5 * time.Second

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig returned error: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if loaded.Catalog.APIKey != "abc123" {
		t.Fatalf("APIKey = %q, want abc123", loaded.Catalog.APIKey)
	}
	if loaded.Opener.Command != "feh" {
		t.Fatalf("Opener.Command = %q, want feh", loaded.Opener.Command)
	}
	if loaded.UI.ToastDuration != 5*time.Second {
		t.Fatalf("ToastDuration = %v, want 5s", loaded.UI.ToastDuration)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandPath("~/x/y"); got != filepath.Join(home, "x", "y") {
		t.Fatalf("ExpandPath = %q", got)
	}
	if got := ExpandPath("/abs"); got != "/abs" {
		t.Fatalf("ExpandPath(/abs) = %q", got)
	}
}
