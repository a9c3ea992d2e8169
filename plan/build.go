package plan

import (
	"github.com/go-zoidwalk/zoidwalk/cutpredicate"
	"github.com/go-zoidwalk/zoidwalk/kernel"
	"github.com/go-zoidwalk/zoidwalk/queue"
	"github.com/go-zoidwalk/zoidwalk/spacecut"
	"github.com/go-zoidwalk/zoidwalk/zoid"
)

// BuildConfig configures Build. Geometry carries the per-axis slope,
// physical bounds, boundary mode, and thresholds the homogeneity
// predicate and space-cut geometry evaluate against; its Family
// selects which sub-zoid shape a successful space cut produces, and
// its RegimeOverride is set by Build itself on every call (callers
// should leave it nil).
//
// PowerOfTwoUnroll selects which of the two time-halving formulas
// spec.md §4.6 step 4 names is used: false (default) halves lt
// exactly in two; true uses the largest lcm_unroll*2^k strictly below
// lt as the halving point, for callers whose regions
// require every replayed leaf to land on an unroll boundary.
type BuildConfig struct {
	Geometry         spacecut.Cutter
	ColorRegion      kernel.ColorRegion
	Registry         *Registry
	PowerOfTwoUnroll bool
	QueueCapacity    int
}

// Build implements gen_plan_cut_p (spec.md §4.6): it queries
// cfg.ColorRegion for the homogeneity vector governing [t0, t1) over
// z, and returns a Spawn leaf immediately if it names a single region.
// Otherwise it attempts a space cut using the PlannerHomogeneity
// predicate; failing that, a time halving above dt_homo/lcm_unroll;
// failing that, a Spawn leaf recording the mixed vector anyway, for
// the executor's slow path.
func Build(t0, t1 int, z zoid.Zoid, cfg BuildConfig) *Node {
	th := cfg.Geometry.Thresholds
	h := cfg.ColorRegion(t0-th.TimeShift, t1-th.TimeShift, z)
	if h.IsHomogeneous() {
		return spawnLeaf(t0, t1, z, h, cfg)
	}

	if node, ok := trySpaceCut(t0, t1, z, cfg); ok {
		return node
	}

	lt := t1 - t0
	if lt > th.DtHomo && lt > th.LcmUnroll {
		return timeHalve(t0, t1, z, cfg)
	}

	return spawnLeaf(t0, t1, z, h, cfg)
}

func spawnLeaf(t0, t1 int, z zoid.Zoid, h kernel.HomogeneityVector, cfg BuildConfig) *Node {
	return &Node{
		Kind:        Spawn,
		T0:          t0,
		T1:          t1,
		Zoid:        z,
		Region:      h,
		RegionIndex: cfg.Registry.Index(h),
		Homogeneous: h.IsHomogeneous(),
	}
}

func timeHalve(t0, t1 int, z zoid.Zoid, cfg BuildConfig) *Node {
	lt := t1 - t0
	halflt := lt / 2

	if cfg.PowerOfTwoUnroll && cfg.Geometry.Thresholds.LcmUnroll > 0 {
		u := cfg.Geometry.Thresholds.LcmUnroll
		p := 1
		for u*p*2 < lt {
			p *= 2
		}
		halflt = u * p
	}

	bottom := Build(t0, t0+halflt, z, cfg)
	top := Build(t0+halflt, t1, z.ShiftTop(halflt), cfg)

	return &Node{Kind: Internal, Children: []*Node{bottom, {Kind: Sync}, top}}
}

// trySpaceCut scans every axis high to low for a PlannerHomogeneity
// pass, exactly as scheduler.Driver.scanAxes does for its own regime;
// if none qualifies, it reports ok=false so Build falls through to
// time-halving instead of recursing on an unchanged zoid.
func trySpaceCut(t0, t1 int, z zoid.Zoid, cfg BuildConfig) (*Node, bool) {
	lt := t1 - t0
	anyCanCut := false

	for axis := z.Rank - 1; axis >= 0; axis-- {
		touchesBoundary := false
		if cfg.Geometry.Boundary {
			touchesBoundary = zoid.TouchBoundary(cfg.Geometry.Bounds, axis, lt, &z)
		}
		in := cutpredicate.Input{Axis: axis, Lt: lt, Slope: cfg.Geometry.Slope[axis], TouchesBoundary: touchesBoundary}
		if cutpredicate.CanCut(cutpredicate.PlannerHomogeneity, z, in, cfg.Geometry.Thresholds) {
			anyCanCut = true
		}
	}

	if !anyCanCut {
		return nil, false
	}

	return drainPlan(t0, t1, z, cfg), true
}

// drainPlan runs the same generation-queue skeleton spacecut.Cutter.Run
// does (spec.md §4.3), but single-threaded — recursing into Build at
// each fully axis-decomposed entry instead of fork-joining a kernel
// callback, since the homogeneity registry it feeds is built
// single-threaded (spec.md §5). Each color's drained batch becomes one
// fork-join group in the returned Internal node, closed by a Sync.
func drainPlan(t0, t1 int, root zoid.Zoid, cfg BuildConfig) *Node {
	capacity := cfg.QueueCapacity
	if capacity <= 0 {
		capacity = queue.MinCapacity(root.Rank)
	}

	gq := queue.New(capacity)
	gq.Push(0, queue.Entry{Level: root.Rank - 1, T0: t0, T1: t1, Zoid: root})

	node := &Node{Kind: Internal}
	for dep := 0; dep <= root.Rank; dep++ {
		color := dep & 1

		var batch []*Node
		for gq.Len(color) > 0 {
			e := *gq.Peek(color)
			gq.Pop(color)

			if e.Level < 0 {
				batch = append(batch, Build(e.T0, e.T1, e.Zoid, cfg))
				continue
			}

			advancePlan(gq, dep, color, e, cfg)
		}

		if len(batch) > 0 {
			node.Children = append(node.Children, batch...)
			node.Children = append(node.Children, &Node{Kind: Sync})
		}
	}

	return node
}

// advancePlan mirrors spacecut.Cutter.advance: it tests e's current
// axis against PlannerHomogeneity and either re-queues it unchanged
// one axis lower, or splits it via cfg.Geometry.Split and re-queues
// each child one axis lower in the color its ColorTag selects.
func advancePlan(gq *queue.Generation, dep, color int, e queue.Entry, cfg BuildConfig) {
	axis := e.Level
	lt := e.T1 - e.T0
	z := e.Zoid

	touchesBoundary := false
	if cfg.Geometry.Boundary {
		touchesBoundary = zoid.TouchBoundary(cfg.Geometry.Bounds, axis, lt, &z)
	}

	in := cutpredicate.Input{Axis: axis, Lt: lt, Slope: cfg.Geometry.Slope[axis], TouchesBoundary: touchesBoundary}
	if !cutpredicate.CanCut(cutpredicate.PlannerHomogeneity, z, in, cfg.Geometry.Thresholds) {
		gq.Push(color, queue.Entry{Level: axis - 1, T0: e.T0, T1: e.T1, Zoid: z})

		return
	}

	for _, ch := range cfg.Geometry.Split(z, axis, lt, in) {
		col := color
		if ch.Color == spacecut.NextColor {
			col = (dep + 1) & 1
		}
		gq.Push(col, queue.Entry{Level: axis - 1, T0: e.T0, T1: e.T1, Zoid: ch.Zoid})
	}
}
