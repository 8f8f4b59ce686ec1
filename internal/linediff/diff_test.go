package linediff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty text is one empty line", "", []string{""}},
		{"single line without newline", "a", []string{"a"}},
		{"trailing newline yields empty last line", "a\n", []string{"a", ""}},
		{"plain lines", "a\nb\nc", []string{"a", "b", "c"}},
		{"crlf normalized", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"mixed separators", "a\r\nb\nc\r\n", []string{"a", "b", "c", ""}},
		{"blank lines preserved", "a\n\n\nb", []string{"a", "", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Split(tt.text))
		})
	}
}

func TestCompute_Identity(t *testing.T) {
	lines := Split("a\nb\nc")
	segs := Compute(lines, lines)

	require.Len(t, segs, 1)
	require.Equal(t, Segment{Op: OpEqual, Old: Span{0, 3}, New: Span{0, 3}}, segs[0])

	blocks := Coalesce(segs)
	require.Len(t, blocks, 1)
	require.Equal(t, BlockUnchanged, blocks[0].Kind)
}

func TestCompute_Disjoint(t *testing.T) {
	oldLines := []string{"a", "b", "c"}
	newLines := []string{"x", "y"}
	segs := Compute(oldLines, newLines)

	require.NoError(t, validateSegments(segs, 3, 2))
	require.Equal(t, []Segment{
		{Op: OpDelete, Old: Span{0, 3}, New: Span{0, 0}},
		{Op: OpInsert, Old: Span{0, 0}, New: Span{0, 2}},
	}, segs)

	blocks := Coalesce(segs)
	require.Equal(t, []Block{{Kind: BlockChanged, OldLines: 3, NewLines: 2}}, blocks)
}

func TestCompute_SingleLineReplace(t *testing.T) {
	segs := Compute([]string{"a", "b", "c"}, []string{"a", "x", "c"})

	require.Equal(t, []Segment{
		{Op: OpEqual, Old: Span{0, 1}, New: Span{0, 1}},
		{Op: OpDelete, Old: Span{1, 2}, New: Span{1, 1}},
		{Op: OpInsert, Old: Span{1, 1}, New: Span{1, 2}},
		{Op: OpEqual, Old: Span{2, 3}, New: Span{2, 3}},
	}, segs)

	blocks := Coalesce(segs)
	require.Equal(t, []Block{
		{Kind: BlockUnchanged, OldLines: 1, NewLines: 1},
		{Kind: BlockChanged, OldLines: 1, NewLines: 1},
		{Kind: BlockUnchanged, OldLines: 1, NewLines: 1},
	}, blocks)
}

func TestCompute_EmptyFileToContent(t *testing.T) {
	oldLines := Split("")
	newLines := Split("a")
	require.Equal(t, []string{""}, oldLines)

	segs := Compute(oldLines, newLines)
	require.NoError(t, validateSegments(segs, 1, 1))

	blocks := Coalesce(segs)
	require.Equal(t, []Block{{Kind: BlockChanged, OldLines: 1, NewLines: 1}}, blocks)
}

// The walk must emit Delete on a score tie. For ["a","b"] vs ["b","a"] both
// keeping "a" and keeping "b" give an LCS of 1; the tie-break pins the
// delete-first shape.
func TestCompute_TieBreakFavorsDelete(t *testing.T) {
	segs := Compute([]string{"a", "b"}, []string{"b", "a"})

	require.Equal(t, []Segment{
		{Op: OpDelete, Old: Span{0, 1}, New: Span{0, 0}},
		{Op: OpEqual, Old: Span{1, 2}, New: Span{0, 1}},
		{Op: OpInsert, Old: Span{2, 2}, New: Span{1, 2}},
	}, segs)
}

func TestCompute_RepeatedLines(t *testing.T) {
	// Trailing duplicate is deleted, leading duplicate kept.
	segs := Compute([]string{"x", "x"}, []string{"x"})
	require.Equal(t, []Segment{
		{Op: OpEqual, Old: Span{0, 1}, New: Span{0, 1}},
		{Op: OpDelete, Old: Span{1, 2}, New: Span{1, 1}},
	}, segs)
}

func TestCompute_DegenerateEmptySides(t *testing.T) {
	segs := Compute(nil, []string{"a", "b"})
	require.Equal(t, []Segment{{Op: OpInsert, Old: Span{0, 0}, New: Span{0, 2}}}, segs)

	segs = Compute([]string{"a", "b"}, nil)
	require.Equal(t, []Segment{{Op: OpDelete, Old: Span{0, 2}, New: Span{0, 0}}}, segs)
}

func TestCompute_PartitionAndRoundTrip(t *testing.T) {
	cases := []struct {
		name     string
		old, new string
	}{
		{"identical", "a\nb\nc", "a\nb\nc"},
		{"replace middle", "a\nb\nc", "a\nx\nc"},
		{"insert block", "a\nd", "a\nb\nc\nd"},
		{"delete block", "a\nb\nc\nd", "a\nd"},
		{"disjoint", "a\nb", "x\ny\nz"},
		{"repeated lines", "x\nx\ny\nx", "x\ny\nx\nx"},
		{"empty old", "", "a\nb"},
		{"empty new", "a\nb", ""},
		{"both empty", "", ""},
		{"blank lines", "a\n\nb\n\n", "a\n\n\nb\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			oldLines := Split(tc.old)
			newLines := Split(tc.new)
			segs := Compute(oldLines, newLines)

			require.NoError(t, validateSegments(segs, len(oldLines), len(newLines)))

			// Replaying the segments reconstructs both inputs exactly.
			var oldOut, newOut []string
			for _, seg := range segs {
				oldOut = append(oldOut, oldLines[seg.Old.Start:seg.Old.End]...)
				newOut = append(newOut, newLines[seg.New.Start:seg.New.End]...)
			}
			require.Equal(t, oldLines, oldOut)
			require.Equal(t, newLines, newOut)

			// Equal segments carry identical content on both sides.
			for _, seg := range segs {
				if seg.Op != OpEqual {
					continue
				}
				require.Equal(t,
					oldLines[seg.Old.Start:seg.Old.End],
					newLines[seg.New.Start:seg.New.End])
			}
		})
	}
}

func TestCompute_Minimality(t *testing.T) {
	cases := []struct {
		old, new string
	}{
		{"a\nb\nc", "a\nx\nc"},
		{"a\nb\nc\nd\ne", "b\nd\nf"},
		{"x\nx\ny\nx", "x\ny\nx\nx"},
		{"a\nb", "x\ny\nz"},
		{"same\nsame", "same\nsame"},
	}
	for _, tc := range cases {
		oldLines := Split(tc.old)
		newLines := Split(tc.new)
		segs := Compute(oldLines, newLines)

		changed := 0
		for _, b := range Coalesce(segs) {
			if b.Kind == BlockChanged {
				changed += b.OldLines + b.NewLines
			}
		}
		want := len(oldLines) + len(newLines) - 2*lcsLength(oldLines, newLines)
		require.Equal(t, want, changed, "old=%q new=%q", tc.old, tc.new)
	}
}

func TestCoalesce_InterleavedRun(t *testing.T) {
	// A delete/insert/delete run with no intervening equal collapses into a
	// single changed block summing each side independently.
	segs := []Segment{
		{Op: OpDelete, Old: Span{0, 2}, New: Span{0, 0}},
		{Op: OpInsert, Old: Span{0, 0}, New: Span{0, 1}},
		{Op: OpDelete, Old: Span{2, 3}, New: Span{1, 1}},
		{Op: OpEqual, Old: Span{3, 5}, New: Span{1, 3}},
	}
	blocks := Coalesce(segs)
	require.Equal(t, []Block{
		{Kind: BlockChanged, OldLines: 3, NewLines: 1},
		{Kind: BlockUnchanged, OldLines: 2, NewLines: 2},
	}, blocks)
}

func TestCoalesce_Empty(t *testing.T) {
	require.Empty(t, Coalesce(nil))
}

func TestBlockRows(t *testing.T) {
	require.Equal(t, 5, Block{Kind: BlockChanged, OldLines: 5, NewLines: 2}.Rows())
	require.Equal(t, 4, Block{Kind: BlockChanged, OldLines: 1, NewLines: 4}.Rows())
	require.Equal(t, 3, Block{Kind: BlockUnchanged, OldLines: 3, NewLines: 3}.Rows())
}

func TestInlineSpans(t *testing.T) {
	spans := InlineSpans("the quick fox", "the slow fox")

	var oldOut, newOut strings.Builder
	for _, s := range spans {
		oldOut.WriteString(s.OldText)
		newOut.WriteString(s.NewText)
	}
	require.Equal(t, "the quick fox", oldOut.String())
	require.Equal(t, "the slow fox", newOut.String())

	// At least one non-equal span, and no span crosses a line boundary.
	sawChange := false
	for _, s := range spans {
		if s.Op != OpEqual {
			sawChange = true
		}
		require.NotContains(t, s.OldText, "\n")
		require.NotContains(t, s.NewText, "\n")
	}
	require.True(t, sawChange)
}

// lcsLength is an independent reference implementation used to check the
// minimality property.
func lcsLength(a, b []string) int {
	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] >= dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}
	return dp[len(a)][len(b)]
}
