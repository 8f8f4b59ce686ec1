// Package render draws a diff result as a side-by-side terminal view.
//
// Unchanged regions that exceed their visible budget fold into a single
// placeholder row; the fold decisions reuse the layout package so the
// printed view and the layout estimate agree. Changed runs pair deleted and
// inserted lines positionally and emphasize intra-line differences.
// Unchanged lines get chroma syntax highlighting when color is on.
package render
