// Package output formats diff reports for display or machine consumption.
//
// Three formats are supported:
//   - text     — human-readable diffstat-style summary (default)
//   - json     — full structured JSON report
//   - markdown — PR-comment-friendly summary with a collapsible block table
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*engine.Report]. [WriteReport]
// is a convenience helper that handles destination selection.
package output
