package linediff

import "strings"

// Split normalizes text into an ordered line sequence. "\r\n" and "\n" are
// treated as equivalent separators. Line content is otherwise untouched:
// duplicates and empty lines are meaningful, and equality is exact string
// equality.
//
// An empty text yields a single empty line, never a zero-length sequence,
// which keeps before/after line counts consistent for empty-file diffs.
func Split(text string) []string {
	if strings.Contains(text, "\r\n") {
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	return strings.Split(text, "\n")
}
