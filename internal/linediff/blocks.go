package linediff

// BlockKind classifies a coalesced block.
type BlockKind string

const (
	BlockUnchanged BlockKind = "unchanged"
	BlockChanged   BlockKind = "changed"
)

// Block is a coalesced, order-preserving view of the edit script. An
// unchanged block originates from a single Equal segment, so OldLines and
// NewLines are always equal there. A changed block aggregates one or more
// consecutive Insert/Delete segments, summing the two sides independently.
// Blocks never have zero length on both sides.
type Block struct {
	Kind     BlockKind `json:"kind"`
	OldLines int       `json:"oldLines"`
	NewLines int       `json:"newLines"`
}

// Rows returns the number of side-by-side rows the block occupies, i.e. the
// larger of its two sides.
func (b Block) Rows() int {
	if b.OldLines > b.NewLines {
		return b.OldLines
	}
	return b.NewLines
}

// Coalesce merges an ordered segment list into an ordered block list. An
// Equal segment closes any open changed block; a run of adjacent
// Insert/Delete segments, in whatever interleaved order Compute produced,
// becomes a single changed block. Order is preserved throughout.
func Coalesce(segs []Segment) []Block {
	var blocks []Block
	oldRun, newRun := 0, 0

	flush := func() {
		if oldRun == 0 && newRun == 0 {
			return
		}
		blocks = append(blocks, Block{Kind: BlockChanged, OldLines: oldRun, NewLines: newRun})
		oldRun, newRun = 0, 0
	}

	for _, seg := range segs {
		switch seg.Op {
		case OpEqual:
			flush()
			if k := len(blocks) - 1; k >= 0 && blocks[k].Kind == BlockUnchanged {
				blocks[k].OldLines += seg.Old.Len()
				blocks[k].NewLines += seg.New.Len()
			} else {
				blocks = append(blocks, Block{Kind: BlockUnchanged, OldLines: seg.Old.Len(), NewLines: seg.New.Len()})
			}
		case OpDelete:
			oldRun += seg.Old.Len()
		case OpInsert:
			newRun += seg.New.Len()
		}
	}
	flush()
	return blocks
}
