package output

import (
	"fmt"
	"io"

	"github.com/foldiff/foldiff/internal/engine"
	"github.com/foldiff/foldiff/internal/linediff"
)

// MarkdownWriter outputs a PR-comment-friendly markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, report *engine.Report) error {
	fmt.Fprintf(w, "## Diff: `%s` → `%s`\n\n", report.Old.Path, report.New.Path)

	// Summary table
	fmt.Fprintf(w, "| Metric | Value |\n")
	fmt.Fprintf(w, "|--------|-------|\n")
	fmt.Fprintf(w, "| Lines added | %d |\n", report.Summary.LinesAdded)
	fmt.Fprintf(w, "| Lines deleted | %d |\n", report.Summary.LinesDeleted)
	fmt.Fprintf(w, "| Lines unchanged | %d |\n", report.Summary.LinesUnchanged)
	fmt.Fprintf(w, "| Changed blocks | %d |\n", report.Summary.ChangedBlocks)
	fmt.Fprintf(w, "| Collapsed regions | %d |\n", report.Estimate.CollapsedRegions)
	fmt.Fprintf(w, "| Hidden lines | %d |\n\n", report.Estimate.HiddenLines)

	if report.Summary.ChangedBlocks == 0 {
		fmt.Fprintln(w, "Files are identical. :white_check_mark:")
		return nil
	}

	// Block list in a collapsible section
	fmt.Fprintf(w, "<details>\n<summary>Blocks (%d)</summary>\n\n", len(report.Blocks))
	fmt.Fprintf(w, "| # | Kind | Old lines | New lines |\n")
	fmt.Fprintf(w, "|---|------|-----------|----------|\n")
	for i, b := range report.Blocks {
		icon := ""
		if b.Kind == linediff.BlockChanged {
			icon = " :pencil2:"
		}
		fmt.Fprintf(w, "| %d | %s%s | %d | %d |\n", i+1, b.Kind, icon, b.OldLines, b.NewLines)
	}
	fmt.Fprintf(w, "\n</details>\n")

	_, err := fmt.Fprintf(w, "\n_Completed in %dms._\n", report.Timing.TotalMs)
	return err
}
