package plan

import (
	"sync"

	"github.com/go-zoidwalk/zoidwalk/cutpredicate"
	"github.com/go-zoidwalk/zoidwalk/kernel"
	"github.com/go-zoidwalk/zoidwalk/scheduler"
	"github.com/go-zoidwalk/zoidwalk/spacecut"
)

// ExecuteConfig configures Execute. Geometry carries the slope,
// bounds, boundary mode, and thresholds Spawn leaves replay against
// (its RegimeOverride is set by Execute itself; callers should leave
// it nil). Regions is the opks array from spec.md §4.7: the kernel set
// a Spawn leaf's RegionIndex selects.
type ExecuteConfig struct {
	Geometry spacecut.Cutter
	Regions  kernel.RegionSet
}

// Execute traverses node (spec.md §4.7): at an Internal node it
// spawns every child up to the next Sync concurrently and joins
// before continuing; at a Spawn leaf it replays the region's
// space-time decomposition via a scheduler.Driver configured with the
// plan_space_can_cut regime (PlanInterior or PlanBoundary) and the
// region-indexed kernel set.
func Execute(node *Node, cfg ExecuteConfig) {
	switch node.Kind {
	case Spawn:
		executeSpawn(node, cfg)
	case Internal:
		executeInternal(node, cfg)
	case Sync:
		// A bare Sync reached outside executeInternal's batching is a
		// no-op; it only has meaning as a marker within Children.
	}
}

// executeInternal runs node.Children left to right, fork-joining every
// run of non-Sync children between two Sync markers (or the ends of
// the slice) before moving past the barrier.
func executeInternal(node *Node, cfg ExecuteConfig) {
	var wg sync.WaitGroup

	for _, child := range node.Children {
		if child.Kind == Sync {
			wg.Wait()

			continue
		}

		wg.Add(1)
		go func(c *Node) {
			defer wg.Done()
			Execute(c, cfg)
		}(child)
	}

	wg.Wait()
}

// executeSpawn replays a Spawn leaf's region: it builds a
// scheduler.Driver over cfg.Geometry with the regime swapped to
// PlanInterior/PlanBoundary (spec.md §4.7: "plan_space_can_cut
// predicates (no pad)" — already the shape CanCut's PlanInterior/
// PlanBoundary rows implement) and the kernel set cfg.Regions[region]
// supplies, then runs it over the leaf's own [T0, T1) and Zoid. The
// driver's own decide loop picks the aligned-vs-conditional variant at
// its own leaf exactly as spec.md §4.4 does, matching §4.7's "picks
// cond_* if either t0 or t1 is not aligned to opks[region_n].unroll".
func executeSpawn(node *Node, cfg ExecuteConfig) {
	regime := cutpredicate.PlanInterior
	if cfg.Geometry.Boundary {
		regime = cutpredicate.PlanBoundary
	}

	geo := cfg.Geometry
	geo.RegimeOverride = &regime

	var set kernel.Set
	if node.RegionIndex >= 0 && node.RegionIndex < len(cfg.Regions) {
		set = cfg.Regions[node.RegionIndex]
	}

	d := &scheduler.Driver{Cutter: geo, Kernels: set}
	d.RunAdaptive(node.T0, node.T1, node.Zoid)
}
