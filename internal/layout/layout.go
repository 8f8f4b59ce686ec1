package layout

import "github.com/foldiff/foldiff/internal/linediff"

// Budget controls how many unchanged lines stay visible around changes. All
// fields are non-negative and supplied by the caller.
//
// RevealLines parameterizes how far a collapsed region expands per
// interaction in an interactive viewer; it never affects the estimate.
type Budget struct {
	RevealLines  int `json:"revealLines"`
	MinimumLines int `json:"minimumLines"`
	ContextLines int `json:"contextLines"`
}

// Estimate is the outcome of the collapse decision. For any budget,
// VisibleLines + HiddenLines equals the sum of Rows() over every block
// whenever at least one changed block is present.
type Estimate struct {
	VisibleLines     int `json:"visibleLines"`
	CollapsedRegions int `json:"collapsedRegions"`
	HiddenLines      int `json:"hiddenLines"`
}

// VisibleBudget returns how many lines of an unchanged block may stay
// visible, given whether the blocks immediately before and after it are
// changed. Each adjacent change contributes ContextLines; a block with no
// changed neighbor falls back to max(MinimumLines, floor). The result is
// always floor-clamped to MinimumLines.
//
// The renderer uses the same function so displayed output agrees with the
// estimate line for line.
func VisibleBudget(prevChanged, nextChanged bool, b Budget, floor int) int {
	allow := 0
	if prevChanged {
		allow += b.ContextLines
	}
	if nextChanged {
		allow += b.ContextLines
	}
	if !prevChanged && !nextChanged {
		allow = max(b.MinimumLines, floor)
	}
	return max(allow, b.MinimumLines)
}

// EstimateLayout walks the block list once and decides, per unchanged
// block, how many lines stay visible versus collapse. Changed blocks are
// never collapsed; every row of a changed block counts as visible. floor is
// the fallback floor that keeps pathological inputs from producing a
// zero-height layout.
func EstimateLayout(blocks []linediff.Block, budget Budget, floor int) Estimate {
	if len(blocks) == 0 {
		return Estimate{VisibleLines: max(budget.MinimumLines, floor)}
	}

	total := 0
	hasChanges := false
	for _, b := range blocks {
		total += b.Rows()
		if b.Kind == linediff.BlockChanged {
			hasChanges = true
		}
	}
	if !hasChanges {
		return Estimate{VisibleLines: min(total, max(budget.MinimumLines, floor))}
	}

	var est Estimate
	for i, b := range blocks {
		if b.Kind == linediff.BlockChanged {
			est.VisibleLines += b.Rows()
			continue
		}
		prevChanged := i > 0 && blocks[i-1].Kind == linediff.BlockChanged
		nextChanged := i+1 < len(blocks) && blocks[i+1].Kind == linediff.BlockChanged
		allow := VisibleBudget(prevChanged, nextChanged, budget, floor)

		shown := min(b.Rows(), allow)
		est.VisibleLines += shown
		if hidden := b.Rows() - shown; hidden > 0 {
			est.CollapsedRegions++
			est.HiddenLines += hidden
		}
	}
	return est
}
