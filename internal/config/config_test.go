package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BeatportURL == "" {
		t.Error("default config should have a Beatport URL")
	}
	if cfg.BeatportTimeoutSeconds != 8 {
		t.Errorf("expected Beatport timeout 8s, got %d", cfg.BeatportTimeoutSeconds)
	}
	if cfg.LastfmTimeoutSeconds != 5 {
		t.Errorf("expected Last.fm timeout 5s, got %d", cfg.LastfmTimeoutSeconds)
	}
	if cfg.LastfmMinCount != 20 {
		t.Errorf("expected min tag count 20, got %d", cfg.LastfmMinCount)
	}
	if cfg.GenreKeepProb != 0.10 {
		t.Errorf("expected keep probability 0.10, got %v", cfg.GenreKeepProb)
	}
	if cfg.LastfmAPIKey != "" {
		t.Error("default config should not carry an API key")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	saved := DefaultConfig()
	saved.LastfmAPIKey = "abc123"
	saved.Parallelism = 4
	if err := SaveConfig(path, saved); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded := &Config{}
	if err := LoadConfig(path, loaded); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.LastfmAPIKey != "abc123" {
		t.Errorf("expected API key to round-trip, got %q", loaded.LastfmAPIKey)
	}
	if loaded.Parallelism != 4 {
		t.Errorf("expected parallelism 4, got %d", loaded.Parallelism)
	}
}

func TestApplyDefaultsFillsMissingFields(t *testing.T) {
	cfg := &Config{LastfmAPIKey: "abc123"}
	cfg.ApplyDefaults()

	if cfg.BeatportURL == "" {
		t.Error("ApplyDefaults should fill the Beatport URL")
	}
	if cfg.LastfmAPIKey != "abc123" {
		t.Error("ApplyDefaults must not clobber set fields")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("LASTFM_API_KEY", "env-key")
	t.Setenv("DJTAGGER_PARALLELISM", "3")

	cfg := DefaultConfig()
	if err := ApplyEnvOverrides(cfg); err != nil {
		t.Fatalf("ApplyEnvOverrides failed: %v", err)
	}
	if cfg.LastfmAPIKey != "env-key" {
		t.Errorf("expected env API key, got %q", cfg.LastfmAPIKey)
	}
	if cfg.Parallelism != 3 {
		t.Errorf("expected parallelism 3 from env, got %d", cfg.Parallelism)
	}
	if cfg.BeatportTimeoutSeconds != 8 {
		t.Error("unset env vars must not clobber existing values")
	}
}
