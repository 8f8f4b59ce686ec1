package linediff

import "github.com/sergi/go-diff/diffmatchpatch"

// InlineSpan is an intra-line diff span. Spans never contain newlines; they
// exist so a renderer can emphasize exactly what changed inside a line pair.
type InlineSpan struct {
	Op      Op
	OldText string
	NewText string
}

// InlineSpans computes character-level spans between a deleted line and the
// inserted line it was paired with. Adjacent equal runs are merged so the
// result stays coarse enough to read. Concatenating OldText across spans
// yields oldLine, and NewText yields newLine.
func InlineSpans(oldLine, newLine string) []InlineSpan {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldLine, newLine, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var spans []InlineSpan
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			if k := len(spans) - 1; k >= 0 && spans[k].Op == OpEqual {
				spans[k].OldText += d.Text
				spans[k].NewText += d.Text
				continue
			}
			spans = append(spans, InlineSpan{Op: OpEqual, OldText: d.Text, NewText: d.Text})
		case diffmatchpatch.DiffDelete:
			spans = append(spans, InlineSpan{Op: OpDelete, OldText: d.Text})
		case diffmatchpatch.DiffInsert:
			spans = append(spans, InlineSpan{Op: OpInsert, NewText: d.Text})
		}
	}
	return spans
}
