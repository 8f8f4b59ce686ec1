package engine

import (
	"github.com/foldiff/foldiff/internal/layout"
	"github.com/foldiff/foldiff/internal/linediff"
)

// Result carries every intermediate and final product of one diff
// invocation. Slices index into OldLines/NewLines; nothing is shared with
// other invocations.
type Result struct {
	OldLines []string
	NewLines []string
	Segments []linediff.Segment
	Blocks   []linediff.Block
	Estimate layout.Estimate
	Metrics  layout.Metrics
}

// Diff runs the full pipeline on two raw text blobs.
func Diff(oldText, newText string, budget layout.Budget, sizing layout.Sizing) Result {
	oldLines := linediff.Split(oldText)
	newLines := linediff.Split(newText)
	segs := linediff.Compute(oldLines, newLines)
	blocks := linediff.Coalesce(segs)
	est := layout.EstimateLayout(blocks, budget, sizing.FallbackFloor)

	return Result{
		OldLines: oldLines,
		NewLines: newLines,
		Segments: segs,
		Blocks:   blocks,
		Estimate: est,
		Metrics:  layout.Project(est, sizing),
	}
}

// HasChanges reports whether the diff contains at least one changed block.
func (r Result) HasChanges() bool {
	for _, b := range r.Blocks {
		if b.Kind == linediff.BlockChanged {
			return true
		}
	}
	return false
}
