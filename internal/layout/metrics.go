package layout

// Sizing holds the tuning constants for projecting an Estimate into
// container dimensions. The embedding application supplies these; nothing
// in the engine hard-codes a rendering surface's geometry.
type Sizing struct {
	LineHeight       int `json:"lineHeight"`       // height of one rendered line
	PlaceholderBase  int `json:"placeholderBase"`  // fixed height of a collapsed-region placeholder
	HiddenLineHeight int `json:"hiddenLineHeight"` // extra placeholder height per hidden line
	RenderCap        int `json:"renderCap"`        // upper bound on rows worth mounting; 0 disables
	FallbackFloor    int `json:"fallbackFloor"`    // lower bound on rows so layouts never collapse to zero
}

// Metrics is a purely numeric projection of an Estimate, used to pre-size a
// container before a full editor widget mounts and to decide whether a huge
// unchanged span deserves a live widget at all.
type Metrics struct {
	VisibleLines        int `json:"visibleLines"`
	LimitedVisibleLines int `json:"limitedVisibleLines"`
	CollapsedRegions    int `json:"collapsedRegions"`
	EditorMinHeight     int `json:"editorMinHeight"`
	HiddenLines         int `json:"hiddenLines"`
}

// Project converts an Estimate into Metrics. LimitedVisibleLines is
// VisibleLines clamped to [FallbackFloor, RenderCap]; the minimum height is
// the clamped rows at LineHeight plus placeholder contributions. Pure
// arithmetic, no failure path.
func Project(est Estimate, s Sizing) Metrics {
	limited := max(est.VisibleLines, s.FallbackFloor)
	if s.RenderCap > 0 {
		limited = min(limited, s.RenderCap)
	}
	return Metrics{
		VisibleLines:        est.VisibleLines,
		LimitedVisibleLines: limited,
		CollapsedRegions:    est.CollapsedRegions,
		HiddenLines:         est.HiddenLines,
		EditorMinHeight: limited*s.LineHeight +
			est.CollapsedRegions*s.PlaceholderBase +
			est.HiddenLines*s.HiddenLineHeight,
	}
}
