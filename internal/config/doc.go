// Package config loads, merges, and persists the foldiff configuration.
//
// Effective configuration is built by layering, lowest precedence first:
// compiled-in defaults, the JSON config file in the platform config
// directory, FOLDIFF_* environment variables, and CLI flag overrides.
//
// The layout budget and sizing constants live here rather than in the
// engine so the diff pipeline stays free of any one surface's tuning.
package config
