package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Matching.FuzzyThreshold != 85 {
		t.Errorf("FuzzyThreshold = %d, want 85", cfg.Matching.FuzzyThreshold)
	}
	if cfg.Eval.MaxFalseNegativeRate != 0.25 {
		t.Errorf("MaxFalseNegativeRate = %v, want 0.25", cfg.Eval.MaxFalseNegativeRate)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Errorf("logging defaults = %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, path, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Error("exists = true for absent file")
	}
	if path == "" {
		t.Error("resolved path should be reported even when absent")
	}
	if cfg.Matching.FuzzyThreshold != 85 {
		t.Errorf("FuzzyThreshold = %d, want default", cfg.Matching.FuzzyThreshold)
	}
}

func TestLoadParsesAndExpands(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")
	content := `
[paths]
music_dir = "` + dir + `/music"

[matching]
fuzzy_threshold = 90

[logging]
level = "DEBUG"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, path, exists, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || path != configPath {
		t.Errorf("path=%q exists=%v", path, exists)
	}
	if cfg.Paths.MusicDir != filepath.Join(dir, "music") {
		t.Errorf("MusicDir = %q", cfg.Paths.MusicDir)
	}
	if cfg.Matching.FuzzyThreshold != 90 {
		t.Errorf("FuzzyThreshold = %d, want 90", cfg.Matching.FuzzyThreshold)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want lowercased", cfg.Logging.Level)
	}
	if !filepath.IsAbs(cfg.Paths.DBPath) {
		t.Errorf("DBPath not expanded: %q", cfg.Paths.DBPath)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "threshold out of range",
			content: "[matching]\nfuzzy_threshold = 150\n",
			wantErr: "fuzzy_threshold",
		},
		{
			name:    "bad ratchet",
			content: "[eval]\nmax_false_negative_rate = 2.0\n",
			wantErr: "max_false_negative_rate",
		},
		{
			name:    "bad log format",
			content: "[logging]\nformat = \"xml\"\n",
			wantErr: "logging.format",
		},
		{
			name:    "bad log level",
			content: "[logging]\nlevel = \"trace\"\n",
			wantErr: "logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := Load(configPath)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnvOverridesCredentials(t *testing.T) {
	t.Setenv("SPOTIFY_CLIENT_ID", "env-id")
	t.Setenv("SPOTIFY_CLIENT_SECRET", "env-secret")

	configPath := filepath.Join(t.TempDir(), "config.toml")
	content := "[spotify]\nclient_id = \"file-id\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, _, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Spotify.ClientID != "env-id" {
		t.Errorf("ClientID = %q, want environment override", cfg.Spotify.ClientID)
	}
	if cfg.Spotify.ClientSecret != "env-secret" {
		t.Errorf("ClientSecret = %q, want environment override", cfg.Spotify.ClientSecret)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[matching]") {
		t.Error("sample config missing [matching] section")
	}
}
