package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/foldiff/foldiff/internal/engine"
	"github.com/foldiff/foldiff/internal/linediff"
)

// TextWriter outputs a human-readable stat report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, report *engine.Report) error {
	ew := &errWriter{w: w}

	ew.printf("%s -> %s\n", report.Old.Path, report.New.Path)
	ew.printf("%d -> %d lines\n", report.Old.Lines, report.New.Lines)
	ew.println(strings.Repeat("─", 60))

	if report.Summary.ChangedBlocks == 0 {
		ew.println("Files are identical.")
		return ew.err
	}

	ew.printf("%d changed block(s), %d unchanged block(s)\n",
		report.Summary.ChangedBlocks, report.Summary.UnchangedBlocks)
	ew.printf("+%d -%d lines, %d unchanged\n",
		report.Summary.LinesAdded, report.Summary.LinesDeleted, report.Summary.LinesUnchanged)
	ew.println("")

	// Per-block strip, one row per block in file order.
	oldLine, newLine := 1, 1
	for _, b := range report.Blocks {
		switch b.Kind {
		case linediff.BlockChanged:
			ew.printf("  @ old:%d new:%d  -%d +%d\n", oldLine, newLine, b.OldLines, b.NewLines)
		case linediff.BlockUnchanged:
			ew.printf("  = old:%d new:%d  %d unchanged\n", oldLine, newLine, b.OldLines)
		}
		oldLine += b.OldLines
		newLine += b.NewLines
	}

	ew.println("")
	ew.printf("Layout: %d visible, %d hidden in %d collapsed region(s)\n",
		report.Estimate.VisibleLines, report.Estimate.HiddenLines, report.Estimate.CollapsedRegions)
	ew.printf("Editor height: %dpx (%d limited visible lines)\n",
		report.Metrics.EditorMinHeight, report.Metrics.LimitedVisibleLines)
	ew.printf("Completed in %dms (load: %dms, diff: %dms)\n",
		report.Timing.TotalMs, report.Timing.LoadMs, report.Timing.DiffMs)

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
