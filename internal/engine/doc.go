// Package engine wires the diff pipeline end to end: line splitting, LCS
// segment computation, block coalescing, layout estimation, and metrics
// projection.
//
// [Diff] is a pure, stateless function of two texts and a configuration; it
// allocates everything it needs per call and holds nothing across calls, so
// independent invocations may run concurrently with no coordination. It has
// no error path: any two finite texts produce a valid [Result].
//
// Callers are responsible for guarding inputs before invoking Diff: size
// limits and binary detection live at the boundary (see internal/source),
// not here. Memory use is O(n*m) in the two line counts.
//
// [BuildReport] flattens a Result plus file metadata into the [Report]
// consumed by the output writers.
package engine
