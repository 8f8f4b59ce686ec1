package linediff

// Op identifies the operation a Segment performs.
type Op int

// Operations from old text to new text.
const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

// Span is a half-open [Start, End) range of line indices.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of lines the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Segment is one step of the edit script. Old and New locate the segment in
// the old and new line sequences respectively.
//
// Invariants:
//   - OpEqual consumes both sides and Old.Len() == New.Len().
//   - OpInsert consumes only the new side; Old is an empty anchor.
//   - OpDelete consumes only the old side; New is an empty anchor.
//   - Concatenating the consuming ranges of the segment list reconstructs
//     each side exactly once, in order.
//
// Inside a run of adjacent inserts and deletes, the empty anchor ranges all
// point at the position where the run began on that side.
type Segment struct {
	Op  Op   `json:"op"`
	Old Span `json:"old"`
	New Span `json:"new"`
}

// Compute returns the minimal edit script from oldLines to newLines.
//
// It fills a dense suffix-LCS table dp[i][j] = LCS(old[i:], new[j:]) as a
// flat int32 array, then walks forward from (0,0) emitting segments. On a
// score tie (dp[i+1][j] == dp[i][j+1]) the walk emits Delete. Runtime and
// memory are O(n*m); there is no failure path.
func Compute(oldLines, newLines []string) []Segment {
	n, m := len(oldLines), len(newLines)
	width := m + 1

	dp := make([]int32, (n+1)*(m+1))
	for i := n - 1; i >= 0; i-- {
		row := i * width
		below := row + width
		for j := m - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				dp[row+j] = dp[below+j+1] + 1
			} else if dp[below+j] >= dp[row+j+1] {
				dp[row+j] = dp[below+j]
			} else {
				dp[row+j] = dp[row+j+1]
			}
		}
	}

	var segs []Segment
	i, j := 0, 0
	runOld, runNew := 0, 0 // where the current changed run began on each side
	for i < n || j < m {
		switch {
		case i < n && j < m && oldLines[i] == newLines[j]:
			if k := len(segs) - 1; k >= 0 && segs[k].Op == OpEqual {
				segs[k].Old.End++
				segs[k].New.End++
			} else {
				segs = append(segs, Segment{Op: OpEqual, Old: Span{i, i + 1}, New: Span{j, j + 1}})
			}
			i++
			j++
			runOld, runNew = i, j
		case i < n && (j >= m || dp[(i+1)*width+j] >= dp[i*width+j+1]):
			if k := len(segs) - 1; k >= 0 && segs[k].Op == OpDelete {
				segs[k].Old.End++
			} else {
				segs = append(segs, Segment{Op: OpDelete, Old: Span{i, i + 1}, New: Span{runNew, runNew}})
			}
			i++
		default:
			if k := len(segs) - 1; k >= 0 && segs[k].Op == OpInsert {
				segs[k].New.End++
			} else {
				segs = append(segs, Segment{Op: OpInsert, Old: Span{runOld, runOld}, New: Span{j, j + 1}})
			}
			j++
		}
	}
	return segs
}
