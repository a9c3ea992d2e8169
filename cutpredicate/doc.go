// Package cutpredicate implements the boolean guards from spec.md §4.2
// that decide whether a zoid may be cut along a given axis, under
// each of the scheduler's recursion regimes.
//
// Every predicate is a pure function of the zoid's bottom/top bar
// widths on one axis, the axis slope, the elapsed time, and (for the
// boundary-aware regimes) whether the zoid currently touches the
// physical boundary or crosses a planner region. None of them mutate
// their Zoid argument.
package cutpredicate
