package linediff

import "fmt"

// validateSegments checks the Segment invariants against the input lengths
// and returns an error on the first violation. Exercised by tests; Compute
// is total and never returns malformed output in normal operation.
func validateSegments(segs []Segment, oldLen, newLen int) error {
	oldCur, newCur := 0, 0
	for k, seg := range segs {
		if seg.Old.Start < 0 || seg.Old.End < seg.Old.Start {
			return fmt.Errorf("segment[%d]: malformed old span %+v", k, seg.Old)
		}
		if seg.New.Start < 0 || seg.New.End < seg.New.Start {
			return fmt.Errorf("segment[%d]: malformed new span %+v", k, seg.New)
		}
		switch seg.Op {
		case OpEqual:
			if seg.Old.Len() == 0 || seg.Old.Len() != seg.New.Len() {
				return fmt.Errorf("segment[%d]: equal segment must consume both sides equally, got %+v", k, seg)
			}
			if seg.Old.Start != oldCur || seg.New.Start != newCur {
				return fmt.Errorf("segment[%d]: equal segment not contiguous at old=%d new=%d", k, oldCur, newCur)
			}
			oldCur = seg.Old.End
			newCur = seg.New.End
		case OpDelete:
			if seg.Old.Len() == 0 {
				return fmt.Errorf("segment[%d]: delete segment consumes no old lines", k)
			}
			if seg.New.Len() != 0 {
				return fmt.Errorf("segment[%d]: delete segment must not consume new lines", k)
			}
			if seg.Old.Start != oldCur {
				return fmt.Errorf("segment[%d]: delete segment not contiguous at old=%d", k, oldCur)
			}
			oldCur = seg.Old.End
		case OpInsert:
			if seg.New.Len() == 0 {
				return fmt.Errorf("segment[%d]: insert segment consumes no new lines", k)
			}
			if seg.Old.Len() != 0 {
				return fmt.Errorf("segment[%d]: insert segment must not consume old lines", k)
			}
			if seg.New.Start != newCur {
				return fmt.Errorf("segment[%d]: insert segment not contiguous at new=%d", k, newCur)
			}
			newCur = seg.New.End
		default:
			return fmt.Errorf("segment[%d]: unknown op %d", k, seg.Op)
		}
	}
	if oldCur != oldLen {
		return fmt.Errorf("segments cover %d of %d old lines", oldCur, oldLen)
	}
	if newCur != newLen {
		return fmt.Errorf("segments cover %d of %d new lines", newCur, newLen)
	}
	return nil
}
