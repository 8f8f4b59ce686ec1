// Package layout decides how much of each unchanged region of a diff stays
// visible and projects that decision into container-sizing numbers.
//
// [EstimateLayout] takes the coalesced block list and a caller-supplied
// [Budget] and produces an [Estimate] in a single greedy forward pass. The
// pass is deliberately local rather than globally optimal: it is a fast,
// deterministic estimate used to pre-size a container, not a final
// rendering decision. [Project] then converts the estimate into [Metrics]
// using the [Sizing] tuning constants, which the embedding application
// supplies so the engine stays independent of any one rendering surface.
package layout
