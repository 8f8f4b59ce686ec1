package config

import (
	"os"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Format != "text" {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
	if cfg.Color != "auto" {
		t.Errorf("Color = %q, want auto", cfg.Color)
	}
	if !cfg.Highlight {
		t.Error("Highlight should default to true")
	}
	if cfg.Budget.ContextLines != 3 {
		t.Errorf("Budget.ContextLines = %d, want 3", cfg.Budget.ContextLines)
	}
	if cfg.Budget.MinimumLines != 5 {
		t.Errorf("Budget.MinimumLines = %d, want 5", cfg.Budget.MinimumLines)
	}
	if cfg.Budget.RevealLines != 20 {
		t.Errorf("Budget.RevealLines = %d, want 20", cfg.Budget.RevealLines)
	}
	if cfg.Sizing.FallbackFloor != 5 {
		t.Errorf("Sizing.FallbackFloor = %d, want 5", cfg.Sizing.FallbackFloor)
	}
	if cfg.MaxFileBytes != 10_000_000 {
		t.Errorf("MaxFileBytes = %d, want 10000000", cfg.MaxFileBytes)
	}
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled should default to true")
	}
	if cfg.Cache.TTLSeconds != 86400 {
		t.Errorf("Cache.TTLSeconds = %d, want 86400", cfg.Cache.TTLSeconds)
	}
}

func TestMergeEnv(t *testing.T) {
	envs := map[string]string{
		"FOLDIFF_FORMAT":        "json",
		"FOLDIFF_THEME":         "dracula",
		"FOLDIFF_CONTEXT_LINES": "7",
		"FOLDIFF_WIDTH":         "100",
	}
	for k, v := range envs {
		t.Setenv(k, v)
	}

	cfg := Default()
	if err := mergeEnv(&cfg); err != nil {
		t.Fatalf("mergeEnv: %v", err)
	}

	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.Theme != "dracula" {
		t.Errorf("Theme = %q, want dracula", cfg.Theme)
	}
	if cfg.Budget.ContextLines != 7 {
		t.Errorf("Budget.ContextLines = %d, want 7", cfg.Budget.ContextLines)
	}
	if cfg.Width != 100 {
		t.Errorf("Width = %d, want 100", cfg.Width)
	}
}

func TestMergeEnvRejectsBadInt(t *testing.T) {
	t.Setenv("FOLDIFF_MIN_LINES", "many")

	cfg := Default()
	if err := mergeEnv(&cfg); err == nil {
		t.Error("expected error for non-numeric FOLDIFF_MIN_LINES")
	}

	t.Setenv("FOLDIFF_MIN_LINES", "-2")
	cfg = Default()
	if err := mergeEnv(&cfg); err == nil {
		t.Error("expected error for negative FOLDIFF_MIN_LINES")
	}
}

func TestMergeEnvUnsetLeavesDefaults(t *testing.T) {
	for _, key := range []string{
		"FOLDIFF_FORMAT", "FOLDIFF_COLOR", "FOLDIFF_THEME",
		"FOLDIFF_CACHE_DIR", "FOLDIFF_CONTEXT_LINES", "FOLDIFF_MIN_LINES",
		"FOLDIFF_REVEAL_LINES", "FOLDIFF_WIDTH", "FOLDIFF_MAX_FILE_BYTES",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Default()
	if err := mergeEnv(&cfg); err != nil {
		t.Fatalf("mergeEnv: %v", err)
	}
	if cfg != Default() {
		t.Errorf("mergeEnv with no env vars changed config: %+v", cfg)
	}
}

func TestSetField(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(Config) bool
	}{
		{"format", "markdown", func(c Config) bool { return c.Format == "markdown" }},
		{"color", "never", func(c Config) bool { return c.Color == "never" }},
		{"theme", "github", func(c Config) bool { return c.Theme == "github" }},
		{"highlight", "false", func(c Config) bool { return !c.Highlight }},
		{"width", "80", func(c Config) bool { return c.Width == 80 }},
		{"budget.contextLines", "5", func(c Config) bool { return c.Budget.ContextLines == 5 }},
		{"budget.minimumLines", "2", func(c Config) bool { return c.Budget.MinimumLines == 2 }},
		{"sizing.renderCap", "1000", func(c Config) bool { return c.Sizing.RenderCap == 1000 }},
		{"cache.enabled", "false", func(c Config) bool { return !c.Cache.Enabled }},
		{"cache.ttlSeconds", "60", func(c Config) bool { return c.Cache.TTLSeconds == 60 }},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := Default()
			if err := SetField(&cfg, tt.key, tt.value); err != nil {
				t.Fatalf("SetField(%s, %s): %v", tt.key, tt.value, err)
			}
			if !tt.check(cfg) {
				t.Errorf("SetField(%s, %s) did not apply", tt.key, tt.value)
			}
		})
	}
}

func TestSetFieldErrors(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"unknown.key", "1"},
		{"color", "sometimes"},
		{"width", "wide"},
		{"width", "-1"},
		{"highlight", "maybe"},
	}
	for _, tt := range tests {
		cfg := Default()
		if err := SetField(&cfg, tt.key, tt.value); err == nil {
			t.Errorf("SetField(%s, %s): expected error", tt.key, tt.value)
		}
	}
}

func TestLoadWithOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(map[string]string{
		"format":              "json",
		"budget.contextLines": "1",
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.Budget.ContextLines != 1 {
		t.Errorf("Budget.ContextLines = %d, want 1", cfg.Budget.ContextLines)
	}
	// Untouched fields keep their defaults.
	if cfg.Budget.MinimumLines != 5 {
		t.Errorf("Budget.MinimumLines = %d, want 5", cfg.Budget.MinimumLines)
	}
}

func TestSaveAndLoadFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Format = "markdown"
	cfg.Budget.ContextLines = 9
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Format != "markdown" {
		t.Errorf("Format = %q, want markdown", loaded.Format)
	}
	if loaded.Budget.ContextLines != 9 {
		t.Errorf("Budget.ContextLines = %d, want 9", loaded.Budget.ContextLines)
	}
}
