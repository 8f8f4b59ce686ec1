// Package cli wires together the Cobra command tree for the foldiff binary.
//
// It defines the root command and all subcommands (diff, stat, config,
// cache, version), binds flags, reads configuration, invokes the diff
// engine, and returns deterministic exit codes: 0 for identical inputs,
// 1 when differences were found, 2 for usage errors, 3 for runtime errors.
package cli
