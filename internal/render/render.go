package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/foldiff/foldiff/internal/engine"
	"github.com/foldiff/foldiff/internal/layout"
	"github.com/foldiff/foldiff/internal/linediff"
)

const defaultWidth = 120

// Options controls side-by-side rendering.
type Options struct {
	Width     int    // total terminal columns, 0 = default
	Color     bool   // emit ANSI styles
	Highlight bool   // syntax-highlight unchanged lines (needs Color)
	Theme     string // chroma style name
	Path      string // used for lexer detection
}

type rowKind int

const (
	rowEqual rowKind = iota
	rowDelete
	rowInsert
	rowReplace
	rowCollapse
)

// row is one side-by-side display line. Line numbers are 1-based; 0 marks a
// blank side.
type row struct {
	kind    rowKind
	oldNum  int
	newNum  int
	oldText string
	newText string
	spans   []linediff.InlineSpan // rowReplace only
	hidden  int                   // rowCollapse only
}

type palette struct {
	del     lipgloss.Style
	add     lipgloss.Style
	delEm   lipgloss.Style
	addEm   lipgloss.Style
	dim     lipgloss.Style
	lineNum lipgloss.Style
}

func newPalette(color bool) palette {
	if !color {
		plain := lipgloss.NewStyle()
		return palette{plain, plain, plain, plain, plain, plain}
	}
	return palette{
		del:     lipgloss.NewStyle().Background(lipgloss.Color("52")).Foreground(lipgloss.Color("15")),
		add:     lipgloss.NewStyle().Background(lipgloss.Color("22")).Foreground(lipgloss.Color("15")),
		delEm:   lipgloss.NewStyle().Background(lipgloss.Color("88")).Foreground(lipgloss.Color("15")).Bold(true),
		addEm:   lipgloss.NewStyle().Background(lipgloss.Color("28")).Foreground(lipgloss.Color("15")).Bold(true),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		lineNum: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// SideBySide writes the diff as two aligned columns with collapsed unchanged
// regions. The fold decisions come from [layout.VisibleBudget], so the rows
// printed here match the layout estimate line for line.
func SideBySide(w io.Writer, res engine.Result, budget layout.Budget, floor int, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	rows := buildRows(res, budget, floor)
	pal := newPalette(opts.Color)

	numW := digits(max(len(res.OldLines), len(res.NewLines)))
	// Two gutters of "numW + marker + space", a column divider, and the
	// surrounding spaces.
	cellW := (opts.Width - 2*(numW+2) - 3) / 2
	if cellW < 10 {
		cellW = 10
	}

	for _, r := range rows {
		var line string
		switch r.kind {
		case rowCollapse:
			label := fmt.Sprintf("⋯ %d unchanged lines ⋯", r.hidden)
			line = pal.dim.Render(center(label, opts.Width))
		default:
			left := fmt.Sprintf("%s %s %s", gutter(r.oldNum, numW, pal), marker(r.kind, true), renderCell(r, true, cellW, pal, opts))
			right := fmt.Sprintf("%s %s %s", gutter(r.newNum, numW, pal), marker(r.kind, false), renderCell(r, false, cellW, pal, opts))
			line = left + " │ " + right
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// buildRows flattens the segment list into display rows, collapsing
// unchanged spans that exceed their visible budget.
func buildRows(res engine.Result, budget layout.Budget, floor int) []row {
	var rows []row
	segs := res.Segments

	for k := 0; k < len(segs); k++ {
		seg := segs[k]
		if seg.Op == linediff.OpEqual {
			total := seg.Old.Len()
			prevChanged := k > 0
			nextChanged := k+1 < len(segs)
			allow := layout.VisibleBudget(prevChanged, nextChanged, budget, floor)
			shown := min(total, allow)
			hidden := total - shown

			tail := 0
			if hidden > 0 && nextChanged {
				tail = min(budget.ContextLines, shown)
			}
			head := shown - tail

			for i := 0; i < head; i++ {
				rows = append(rows, equalRow(res, seg, i))
			}
			if hidden > 0 {
				rows = append(rows, row{kind: rowCollapse, hidden: hidden})
			}
			for i := total - tail; i < total; i++ {
				rows = append(rows, equalRow(res, seg, i))
			}
			continue
		}

		// Collect the whole changed run and pair deletes with inserts
		// positionally.
		var dels, ins []int
		for ; k < len(segs) && segs[k].Op != linediff.OpEqual; k++ {
			s := segs[k]
			if s.Op == linediff.OpDelete {
				for i := s.Old.Start; i < s.Old.End; i++ {
					dels = append(dels, i)
				}
			} else {
				for j := s.New.Start; j < s.New.End; j++ {
					ins = append(ins, j)
				}
			}
		}
		k-- // the for loop advances past the run

		for r := 0; r < max(len(dels), len(ins)); r++ {
			switch {
			case r < len(dels) && r < len(ins):
				oldText := res.OldLines[dels[r]]
				newText := res.NewLines[ins[r]]
				rows = append(rows, row{
					kind:    rowReplace,
					oldNum:  dels[r] + 1,
					newNum:  ins[r] + 1,
					oldText: oldText,
					newText: newText,
					spans:   linediff.InlineSpans(oldText, newText),
				})
			case r < len(dels):
				rows = append(rows, row{kind: rowDelete, oldNum: dels[r] + 1, oldText: res.OldLines[dels[r]]})
			default:
				rows = append(rows, row{kind: rowInsert, newNum: ins[r] + 1, newText: res.NewLines[ins[r]]})
			}
		}
	}
	return rows
}

func equalRow(res engine.Result, seg linediff.Segment, i int) row {
	return row{
		kind:    rowEqual,
		oldNum:  seg.Old.Start + i + 1,
		newNum:  seg.New.Start + i + 1,
		oldText: res.OldLines[seg.Old.Start+i],
		newText: res.NewLines[seg.New.Start+i],
	}
}

func renderCell(r row, left bool, width int, pal palette, opts Options) string {
	text := r.newText
	num := r.newNum
	if left {
		text = r.oldText
		num = r.oldNum
	}
	if num == 0 {
		return strings.Repeat(" ", width)
	}
	text = clip(expandTabs(text), width)

	var styled string
	switch r.kind {
	case rowEqual:
		styled = text
		if opts.Highlight && opts.Color {
			styled = highlightLine(text, opts.Path, opts.Theme)
		}
	case rowDelete:
		styled = pal.del.Render(text)
	case rowInsert:
		styled = pal.add.Render(text)
	case rowReplace:
		styled = renderSpans(r.spans, left, width, pal)
	}
	return pad(styled, width)
}

// renderSpans styles a replace row from its intra-line spans, emphasizing
// the parts that actually changed.
func renderSpans(spans []linediff.InlineSpan, left bool, width int, pal palette) string {
	base, em := pal.add, pal.addEm
	if left {
		base, em = pal.del, pal.delEm
	}
	var b strings.Builder
	used := 0
	for _, sp := range spans {
		text := sp.NewText
		if left {
			text = sp.OldText
		}
		if text == "" {
			continue
		}
		text = expandTabs(text)
		if used+runeLen(text) > width {
			text = clip(text, width-used)
		}
		if sp.Op == linediff.OpEqual {
			b.WriteString(base.Render(text))
		} else {
			b.WriteString(em.Render(text))
		}
		used += runeLen(text)
		if used >= width {
			break
		}
	}
	return b.String()
}

func highlightLine(code, path, theme string) string {
	lexer := lexers.Match(path)
	if lexer == nil {
		return code
	}
	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return code
	}
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var b strings.Builder
	if err := formatter.Format(&b, style, iterator); err != nil {
		return code
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func gutter(num, width int, pal palette) string {
	if num == 0 {
		return strings.Repeat(" ", width)
	}
	return pal.lineNum.Render(fmt.Sprintf("%*d", width, num))
}

func marker(kind rowKind, left bool) string {
	switch kind {
	case rowDelete:
		if left {
			return "-"
		}
	case rowInsert:
		if !left {
			return "+"
		}
	case rowReplace:
		if left {
			return "-"
		}
		return "+"
	}
	return " "
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

// clip truncates to width display runes, marking the cut with an ellipsis.
func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}

// pad right-fills with spaces up to width, measuring ANSI-styled strings by
// their visible cells.
func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func center(s string, width int) string {
	gap := width - runeLen(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s
}

func runeLen(s string) int {
	return len([]rune(s))
}

func digits(n int) int {
	if n < 10 {
		return 1
	}
	d := 0
	for n > 0 {
		d++
		n /= 10
	}
	return d
}
