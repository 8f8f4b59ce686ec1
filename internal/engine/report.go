package engine

import (
	"github.com/foldiff/foldiff/internal/layout"
	"github.com/foldiff/foldiff/internal/linediff"
)

// FileInfo identifies one side of the diff.
type FileInfo struct {
	Path  string `json:"path"`
	Lines int    `json:"lines"`
}

// Summary aggregates line counts across the block list.
type Summary struct {
	ChangedBlocks   int `json:"changedBlocks"`
	UnchangedBlocks int `json:"unchangedBlocks"`
	LinesAdded      int `json:"linesAdded"`
	LinesDeleted    int `json:"linesDeleted"`
	LinesUnchanged  int `json:"linesUnchanged"`
}

// Timing records wall-clock milliseconds spent per phase.
type Timing struct {
	TotalMs int64 `json:"totalMs"`
	LoadMs  int64 `json:"loadMs"`
	DiffMs  int64 `json:"diffMs"`
}

// Report is the machine-consumable product of one diff invocation, written
// by the output package in text, json, or markdown form.
type Report struct {
	Old      FileInfo         `json:"old"`
	New      FileInfo         `json:"new"`
	Blocks   []linediff.Block `json:"blocks"`
	Summary  Summary          `json:"summary"`
	Estimate layout.Estimate  `json:"estimate"`
	Metrics  layout.Metrics   `json:"metrics"`
	Timing   Timing           `json:"timing"`
}

// BuildReport flattens a Result into a Report.
func BuildReport(oldPath, newPath string, res Result, timing Timing) *Report {
	var s Summary
	for _, b := range res.Blocks {
		switch b.Kind {
		case linediff.BlockChanged:
			s.ChangedBlocks++
			s.LinesDeleted += b.OldLines
			s.LinesAdded += b.NewLines
		case linediff.BlockUnchanged:
			s.UnchangedBlocks++
			s.LinesUnchanged += b.OldLines
		}
	}
	return &Report{
		Old:      FileInfo{Path: oldPath, Lines: len(res.OldLines)},
		New:      FileInfo{Path: newPath, Lines: len(res.NewLines)},
		Blocks:   res.Blocks,
		Summary:  s,
		Estimate: res.Estimate,
		Metrics:  res.Metrics,
		Timing:   timing,
	}
}
