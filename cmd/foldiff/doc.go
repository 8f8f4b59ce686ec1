// Foldiff compares two versions of a file and folds unchanged regions
// around the changes.
//
// It renders a side-by-side view with collapsed placeholders, or a summary
// report in text, JSON, or markdown, emitting deterministic exit codes
// suitable for scripting and CI gating.
//
// Usage:
//
//	foldiff diff old.go new.go            # side-by-side view of two files
//	foldiff diff --git HEAD~3 main.go     # revision vs working tree
//	foldiff diff --git v1.0..v1.1 main.go # between two revisions
//	foldiff stat old.go new.go            # summary without line output
//	foldiff config show                   # effective configuration
//
// See https://github.com/foldiff/foldiff for full documentation.
package main
