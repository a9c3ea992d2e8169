// Package kernel defines the functor capabilities the scheduler
// dispatches to at a base-case zoid (spec.md §6): interior, boundary,
// conditional-interior, and conditional-boundary kernels, plus the
// homogeneity predicate the planner uses and the per-region kernel
// sets the plan executor dispatches through.
//
// Following the teacher's builder package (weight_fn.go, id_fn.go),
// capabilities are plain function-typed fields on a struct rather than
// an interface with four methods: callers configure only the
// capabilities their domain needs. Set.Invoke skips a capability that
// is left nil, so a base case routed to an unset field runs no kernel.
package kernel
