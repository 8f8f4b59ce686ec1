package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/foldiff/foldiff/internal/layout"
)

// Config represents the foldiff configuration.
type Config struct {
	Budget       layout.Budget `json:"budget"`
	Sizing       layout.Sizing `json:"sizing"`
	Format       string        `json:"format"`
	Color        string        `json:"color"` // auto, always, never
	Highlight    bool          `json:"highlight"`
	Theme        string        `json:"theme"`
	Width        int           `json:"width"` // 0 = renderer default
	MaxFileBytes int           `json:"maxFileBytes"`
	Cache        CacheConfig   `json:"cache"`
}

// CacheConfig controls caching of rendered results.
type CacheConfig struct {
	Enabled    bool   `json:"enabled"`
	Dir        string `json:"dir,omitempty"`
	TTLSeconds int    `json:"ttlSeconds"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Budget: layout.Budget{
			RevealLines:  20,
			MinimumLines: 5,
			ContextLines: 3,
		},
		Sizing: layout.Sizing{
			LineHeight:       20,
			PlaceholderBase:  40,
			HiddenLineHeight: 0,
			RenderCap:        5000,
			FallbackFloor:    5,
		},
		Format:       "text",
		Color:        "auto",
		Highlight:    true,
		Theme:        "monokai",
		MaxFileBytes: 10_000_000,
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 86400,
		},
	}
}

// ConfigDir returns the platform-appropriate config directory for foldiff.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "foldiff"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "foldiff"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "foldiff"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "foldiff"), nil
	default:
		return filepath.Join(home, ".config", "foldiff"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags; only explicitly set
// flags should appear in it.
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Budget.RevealLines > 0 {
		dst.Budget.RevealLines = src.Budget.RevealLines
	}
	if src.Budget.MinimumLines > 0 {
		dst.Budget.MinimumLines = src.Budget.MinimumLines
	}
	if src.Budget.ContextLines > 0 {
		dst.Budget.ContextLines = src.Budget.ContextLines
	}
	if src.Sizing.LineHeight > 0 {
		dst.Sizing.LineHeight = src.Sizing.LineHeight
	}
	if src.Sizing.PlaceholderBase > 0 {
		dst.Sizing.PlaceholderBase = src.Sizing.PlaceholderBase
	}
	if src.Sizing.HiddenLineHeight > 0 {
		dst.Sizing.HiddenLineHeight = src.Sizing.HiddenLineHeight
	}
	if src.Sizing.RenderCap > 0 {
		dst.Sizing.RenderCap = src.Sizing.RenderCap
	}
	if src.Sizing.FallbackFloor > 0 {
		dst.Sizing.FallbackFloor = src.Sizing.FallbackFloor
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.Color != "" {
		dst.Color = src.Color
	}
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
	if src.Width > 0 {
		dst.Width = src.Width
	}
	if src.MaxFileBytes > 0 {
		dst.MaxFileBytes = src.MaxFileBytes
	}
	if src.Cache.Dir != "" {
		dst.Cache.Dir = src.Cache.Dir
	}
	if src.Cache.TTLSeconds > 0 {
		dst.Cache.TTLSeconds = src.Cache.TTLSeconds
	}
	// Bool fields: the JSON zero value is indistinguishable from unset in a
	// simple merge, so file values only widen defaults, never narrow them.
	dst.Cache.Enabled = src.Cache.Enabled || dst.Cache.Enabled
	dst.Highlight = src.Highlight || dst.Highlight
}

func mergeEnv(cfg *Config) error {
	if v := os.Getenv("FOLDIFF_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("FOLDIFF_COLOR"); v != "" {
		cfg.Color = v
	}
	if v := os.Getenv("FOLDIFF_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("FOLDIFF_CACHE_DIR"); v != "" {
		cfg.Cache.Dir = v
	}
	intEnvs := []struct {
		key string
		dst *int
	}{
		{"FOLDIFF_CONTEXT_LINES", &cfg.Budget.ContextLines},
		{"FOLDIFF_MIN_LINES", &cfg.Budget.MinimumLines},
		{"FOLDIFF_REVEAL_LINES", &cfg.Budget.RevealLines},
		{"FOLDIFF_WIDTH", &cfg.Width},
		{"FOLDIFF_MAX_FILE_BYTES", &cfg.MaxFileBytes},
	}
	for _, e := range intEnvs {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid %s: %q", e.key, v)
		}
		*e.dst = n
	}
	return nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for key, value := range overrides {
		if err := SetField(cfg, key, value); err != nil {
			return err
		}
	}
	return nil
}

// SetField sets a single configuration field by dotted key name. Used by
// `foldiff config set` and by CLI flag overrides.
func SetField(cfg *Config, key, value string) error {
	setInt := func(dst *int) error {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s requires a non-negative integer, got %q", key, value)
		}
		*dst = n
		return nil
	}
	setBool := func(dst *bool) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s requires a boolean, got %q", key, value)
		}
		*dst = b
		return nil
	}

	switch key {
	case "format":
		cfg.Format = value
	case "color":
		switch value {
		case "auto", "always", "never":
			cfg.Color = value
		default:
			return fmt.Errorf("color must be auto, always, or never, got %q", value)
		}
	case "theme":
		cfg.Theme = value
	case "highlight":
		return setBool(&cfg.Highlight)
	case "width":
		return setInt(&cfg.Width)
	case "maxFileBytes":
		return setInt(&cfg.MaxFileBytes)
	case "budget.revealLines":
		return setInt(&cfg.Budget.RevealLines)
	case "budget.minimumLines":
		return setInt(&cfg.Budget.MinimumLines)
	case "budget.contextLines":
		return setInt(&cfg.Budget.ContextLines)
	case "sizing.lineHeight":
		return setInt(&cfg.Sizing.LineHeight)
	case "sizing.placeholderBase":
		return setInt(&cfg.Sizing.PlaceholderBase)
	case "sizing.hiddenLineHeight":
		return setInt(&cfg.Sizing.HiddenLineHeight)
	case "sizing.renderCap":
		return setInt(&cfg.Sizing.RenderCap)
	case "sizing.fallbackFloor":
		return setInt(&cfg.Sizing.FallbackFloor)
	case "cache.enabled":
		return setBool(&cfg.Cache.Enabled)
	case "cache.dir":
		cfg.Cache.Dir = value
	case "cache.ttlSeconds":
		return setInt(&cfg.Cache.TTLSeconds)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
