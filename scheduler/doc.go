// Package scheduler implements the multi-axis driver and time-cut
// state machine of spec.md §4.4 (Driver.RunAdaptive), plus two supplemental
// top-level walks original_source/pochoir_walk_recursive.hpp carries
// that the distilled spec left implicit: RunBicut (walk_bicut, a
// queue-free fixed fan-out tiling) and WalkSerial (walk_serial, a
// single-threaded oracle useful for testing the concurrent drivers
// against).
//
// Following tsp.go's top-level TSPBranchAndBound, each entry point
// here validates nothing itself — Driver's fields are taken on faith,
// matching spec.md §7's "kernel invocation ... infallible" stance —
// and dispatches straight into the recursive engine.
package scheduler
