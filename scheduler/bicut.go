package scheduler

import (
	"sync"

	"github.com/go-zoidwalk/zoidwalk/kernel"
	"github.com/go-zoidwalk/zoidwalk/zoid"
)

// BicutConfig configures RunBicut: a single axis slope vector, the
// per-axis width threshold dx_recursive, the scalar time threshold
// dt_recursive, and the one kernel RunBicut ever dispatches (the
// original only ever tiles interior regions this way — boundary
// zoids are handled by the adaptive Driver instead).
type BicutConfig struct {
	Slope       zoid.Slope
	DxRecursive [zoid.MaxRank]int
	DtRecursive int
	Kernel      kernel.Func
}

// RunBicut implements walk_bicut: a queue-free fixed bisection that,
// for the first axis wide enough to qualify, cuts its bar exactly in
// half and recurses on up to five children (the two main halves
// concurrently, then, after joining them, up to three triangles
// absorbing the slope mismatch concurrently), or else falls back to a
// time-cut / leaf dispatch exactly like Driver.decide's TIME/LEAF
// states.
//
// Unlike Driver.RunAdaptive, RunBicut never consults a predicate
// regime or a generation queue: the first qualifying axis is bisected
// immediately, with a fixed two-stage fan-out (halves, then triangles)
// in place of the adaptive driver's generation-queue colors, suited to
// tiling a plain interior domain across a fixed core count.
func RunBicut(t0, t1 int, z zoid.Zoid, cfg BicutConfig) {
	lt := t1 - t0

	for axis := z.Rank - 1; axis >= 0; axis-- {
		lb := z.BottomWidth(axis)
		thres := 4 * cfg.Slope[axis] * lt
		if lb < thres || lb <= cfg.DxRecursive[axis] {
			continue
		}

		bicutAxis(t0, t1, z, axis, lb, cfg)

		return
	}

	if lt > cfg.DtRecursive {
		halflt := lt / 2
		RunBicut(t0, t0+halflt, z, cfg)
		RunBicut(t0+halflt, t1, z.ShiftTop(halflt), cfg)

		return
	}

	cfg.Kernel(t0, t1, z)
}

// bicutAxis bisects z's bar on axis into its two main halves plus the
// (up to three) triangles needed to absorb any slope mismatch at the
// parent's own edges.
//
// The two main halves are spawned and joined first; only after that
// join do the center dependency-cone triangle and the (up to two) edge
// triangles spawn. The center triangle at time-offset tau reads cells
// the left half writes at tau-1, so running it concurrently with the
// halves would race — the original issues a sync after the two main
// halves and before these triangles for exactly this reason
// (pochoir_walk_recursive.hpp's walk_bicut).
func bicutAxis(t0, t1 int, z zoid.Zoid, axis, lb int, cfg BicutConfig) {
	slope := cfg.Slope[axis]
	lStart, lEnd := z.X0[axis], z.X1[axis]
	sep := lb / 2

	halves := []zoid.Zoid{
		z.WithAxis(axis, lStart, slope, lStart+sep, -slope),
		z.WithAxis(axis, lStart+sep, slope, lEnd, -slope),
	}
	runConcurrently(t0, t1, halves, cfg)

	triangles := []zoid.Zoid{
		z.WithAxis(axis, lStart+sep, -slope, lStart+sep, slope),
	}
	if z.DX0[axis] != slope {
		triangles = append(triangles, z.WithAxis(axis, lStart, z.DX0[axis], lStart, slope))
	}
	if z.DX1[axis] != -slope {
		triangles = append(triangles, z.WithAxis(axis, lEnd, -slope, lEnd, z.DX1[axis]))
	}
	runConcurrently(t0, t1, triangles, cfg)
}

// runConcurrently spawns RunBicut over every zoid in children and
// joins before returning.
func runConcurrently(t0, t1 int, children []zoid.Zoid, cfg BicutConfig) {
	var wg sync.WaitGroup
	for _, child := range children {
		wg.Add(1)
		go func(c zoid.Zoid) {
			defer wg.Done()
			RunBicut(t0, t1, c, cfg)
		}(child)
	}
	wg.Wait()
}
