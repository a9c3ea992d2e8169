// Package spacecut implements the space-cut kernels from spec.md §4.3:
// the generation-queue drain loop shared by every cut regime, and the
// per-regime sub-zoid geometries (modified, shorter-bar, longer-bar
// duo, and the periodic initial cut).
//
// The drain loop is modeled on tsp/bb.go's bbEngine: a struct holding
// all search configuration plus a single entry point, rather than a
// bag of free functions threading the same parameters through every
// call. Cutter plays that role here; Run is its bbEngine.Solve.
package spacecut
