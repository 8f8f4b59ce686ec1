// Package linediff computes minimal line-level edit scripts between two
// texts under the longest-common-subsequence metric.
//
// [Split] normalizes raw text into lines, [Compute] produces an ordered
// [Segment] list that partitions both line sequences exactly once, and
// [Coalesce] merges segments into Changed/Unchanged [Block] runs consumed by
// the layout estimator and the renderer. [InlineSpans] adds word-level
// detail inside a changed line pair.
//
// Compute fills a dense dynamic-programming table and resolves score ties in
// favor of Delete during the forward walk. The tie-break is a compatibility
// contract, not an aesthetic preference: changing it reshapes diffs for
// files with repeated lines.
//
// Every function in this package is pure and allocation-scoped to the call;
// concurrent invocations need no coordination.
package linediff
