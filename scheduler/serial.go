package scheduler

import "github.com/go-zoidwalk/zoidwalk/zoid"

// SerialConfig configures WalkSerial: same per-axis/scalar thresholds
// as BicutConfig, plus a single kernel (WalkSerial never distinguishes
// interior from boundary — it is a correctness oracle for exercising
// against Driver.RunAdaptive and RunBicut over small, fully interior
// test zoids, not a production code path).
type SerialConfig struct {
	Slope       zoid.Slope
	DxRecursive [zoid.MaxRank]int
	DtRecursive int
	Kernel      func(t0, t1 int, z zoid.Zoid)
}

// WalkSerial is a single-threaded, non-queued reference walk: for the
// first axis wide enough to qualify, it splits the bar at its
// geometric midpoint xm (weighted by the average of the two edges'
// slopes) into two children and recurses on each in turn; failing
// that, it time-cuts in half when still above dt_recursive; failing
// that, it dispatches the kernel once. Exactly one of those three
// outcomes happens per call — unlike the traced original, which falls
// through to an unconditional trailing kernel call even after a space
// or time cut already recursed (see DESIGN.md: treated as dead code
// and not carried over, since invoking the kernel again over the same
// region after already recursing into its pieces would double-count
// every cell).
func WalkSerial(t0, t1 int, z zoid.Zoid, cfg SerialConfig) {
	lt := t1 - t0

	for axis := z.Rank - 1; axis >= 0; axis-- {
		lb := z.BottomWidth(axis)
		dx0, dx1 := z.DX0[axis], z.DX1[axis]
		slope := cfg.Slope[axis]

		canCut := 2*lb+(dx1-dx0)*lt >= 4*slope*lt && lb > cfg.DxRecursive[axis]
		if !canCut {
			continue
		}

		x0, x1 := z.X0[axis], z.X1[axis]
		xm := (2*(x0+x1) + (2*slope+dx0+dx1)*lt) / 4

		WalkSerial(t0, t1, z.WithAxis(axis, x0, dx0, xm, -slope), cfg)
		WalkSerial(t0, t1, z.WithAxis(axis, xm, -slope, x1, dx1), cfg)

		return
	}

	if lt > cfg.DtRecursive {
		halflt := lt / 2
		WalkSerial(t0, t0+halflt, z, cfg)
		WalkSerial(t0+halflt, t1, z.ShiftTop(halflt), cfg)

		return
	}

	cfg.Kernel(t0, t1, z)
}
