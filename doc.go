// Package zoidwalk is a cache-oblivious stencil scheduler: given an
// N-dimensional iteration space and a time interval, it recursively
// partitions the space-time volume into trapezoidal "zoids" along
// spatial and temporal cuts until each piece is small enough to hand
// to a user-supplied kernel directly.
//
// Four entry points cover the operations spec.md §6 lists under "the
// original exposes ... but implementers may consolidate":
//
//   - RunBicut drives the queue-free fixed-bisection walk
//     (scheduler.RunBicut) — the simplest driver, with no predicate
//     table and no generation queue.
//   - RunAdaptive drives the full predicate-guided decide →
//     SPACE/TIME/LEAF state machine (scheduler.Driver.RunAdaptive).
//   - BuildPlan builds an immutable plan tree ahead of time by probing
//     a homogeneity predicate over the same recursive decomposition
//     (plan.Build).
//   - ExecutePlan replays a built plan tree, dispatching through
//     region-indexed kernel sets (plan.Execute).
//
// Everything under zoid/, cutpredicate/, queue/, kernel/, spacecut/,
// scheduler/, and plan/ is usable standalone; this package only
// aggregates the four entry points and the Config callers build once
// and reuse across calls, the way the teacher's graph package
// aggregates core/matrix/algorithms without adding algorithms of its
// own.
package zoidwalk
