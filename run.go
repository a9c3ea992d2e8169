package zoidwalk

import (
	"github.com/go-zoidwalk/zoidwalk/kernel"
	"github.com/go-zoidwalk/zoidwalk/plan"
	"github.com/go-zoidwalk/zoidwalk/scheduler"
	"github.com/go-zoidwalk/zoidwalk/spacecut"
	"github.com/go-zoidwalk/zoidwalk/zoid"
)

// RunBicut drives the queue-free fixed-bisection walk (walk_bicut)
// over z across [t0, t1), dispatching k at every base case.
func RunBicut(t0, t1 int, z zoid.Zoid, cfg Config, k kernel.Func) {
	scheduler.RunBicut(t0, t1, z, scheduler.BicutConfig{
		Slope:       cfg.Slope,
		DxRecursive: cfg.Thresholds.DxRecursive,
		DtRecursive: cfg.Thresholds.DtRecursive,
		Kernel:      k,
	})
}

// RunAdaptive drives the predicate-guided decide state machine
// (walk_adaptive) over z across [t0, t1) using family's space-cut
// geometry, dispatching through kernels at every leaf.
//
// boundary opts the run into boundary-aware predicates and geometry;
// when set, RunAdaptive first checks whether z is already fully
// interior over [t0, t1) (zoid.WithinInterior) and, if so, runs the
// cheaper interior-only predicates for the whole call instead of
// paying the boundary bookkeeping's TouchBoundary canonicalization at
// every recursive step for a zoid that can never actually touch it.
func RunAdaptive(t0, t1 int, z zoid.Zoid, cfg Config, family spacecut.Family, boundary bool, kernels kernel.Set) {
	if boundary && zoid.WithinInterior(cfg.Bounds, t0, t1, &z) {
		boundary = false
	}

	d := &scheduler.Driver{
		Cutter:  spacecut.Cutter{Family: family, Boundary: boundary, Thresholds: cfg.Thresholds, Slope: cfg.Slope, Bounds: cfg.Bounds},
		Kernels: kernels,
	}
	d.RunAdaptive(t0, t1, z)
}

// BuildPlan builds an immutable plan tree over z across [t0, t1)
// (gen_plan) by probing colorRegion against family's space-cut
// geometry, recording every homogeneity vector it observes in
// registry.
func BuildPlan(t0, t1 int, z zoid.Zoid, cfg Config, family spacecut.Family, boundary bool, colorRegion kernel.ColorRegion, registry *plan.Registry, powerOfTwoUnroll bool) *plan.Node {
	return plan.Build(t0, t1, z, plan.BuildConfig{
		Geometry:         spacecut.Cutter{Family: family, Boundary: boundary, Thresholds: cfg.Thresholds, Slope: cfg.Slope, Bounds: cfg.Bounds},
		ColorRegion:      colorRegion,
		Registry:         registry,
		PowerOfTwoUnroll: powerOfTwoUnroll,
	})
}

// ExecutePlan replays a plan tree built by BuildPlan (plan_cut/
// plan_cut_p), dispatching each Spawn leaf through regions[leaf's
// region index].
func ExecutePlan(node *plan.Node, cfg Config, family spacecut.Family, boundary bool, regions kernel.RegionSet) {
	plan.Execute(node, plan.ExecuteConfig{
		Geometry: spacecut.Cutter{Family: family, Boundary: boundary, Thresholds: cfg.Thresholds, Slope: cfg.Slope, Bounds: cfg.Bounds},
		Regions:  regions,
	})
}
