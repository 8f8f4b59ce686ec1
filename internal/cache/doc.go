// Package cache provides a file-based cache for rendered diff output.
//
// Entries are keyed by a SHA-256 hash of the render mode, a settings
// fingerprint, and both file blobs. Each entry stores the rendered output
// together with a differences flag, a creation timestamp, and a TTL in
// seconds. Expired entries are skipped on read.
//
// The default cache directory is $XDG_CACHE_HOME/foldiff (or the
// OS-appropriate equivalent).
package cache
