// Package plan implements the homogeneity planner and plan executor of
// spec.md §4.6-§4.7: building an immutable schedule tree ahead of time
// by querying a region predicate over the same recursive decomposition
// package scheduler walks on the fly, then replaying that tree against
// region-indexed kernel sets.
//
// Following the teacher's flow package (dinic.go/ford_fulkerson.go/
// edmonds_karp.go sharing types.go), Build and Execute are two
// algorithms over one shared Node/Registry vocabulary rather than
// separate packages: a plan only means something in the context of
// both the builder that produced it and the executor that replays it.
package plan
