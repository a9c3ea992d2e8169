package cutpredicate

import "github.com/go-zoidwalk/zoidwalk/zoid"

// Input bundles the per-call quantities every CanCut regime needs
// besides the zoid itself: the axis under test, the axis slope, the
// elapsed time, and the two context flags (touching the physical
// boundary, or — during planning — crossing a homogeneity region)
// that swap in the boundary-width thresholds.
type Input struct {
	Axis            int
	Lt              int
	Slope           int
	TouchesBoundary bool
	CrossesRegion   bool
}

// Dims derives lb, tb, thres, pad, cutLB from z and in — shared by
// every regime below, and exported so spacecut's geometry builders can
// re-derive the same quantities CanCut used to decide a cut, rather
// than threading them through as extra return values.
func Dims(z zoid.Zoid, in Input) (lb, tb, thres, pad int, cutLB bool) {
	lb = z.BottomWidth(in.Axis)
	tb = z.TopWidth(in.Axis, in.Lt)
	thres = in.Slope * in.Lt
	pad = 2 * in.Slope
	cutLB = lb < tb

	return
}

// CanCut evaluates the spec.md §4.2 predicate table for regime against
// zoid z, reporting whether axis in.Axis may be cut.
func CanCut(regime Regime, z zoid.Zoid, in Input, th Thresholds) bool {
	lb, tb, thres, pad, cutLB := Dims(z, in)

	switch regime {
	case ModifiedInterior:
		dx := th.DxRecursive[in.Axis]
		return modified(cutLB, lb, tb, thres, dx, dx, th.CoarsenBottom)

	case ModifiedBoundary:
		dxI, dxB := th.DxRecursive[in.Axis], th.DxRecursiveBoundary[in.Axis]
		dx := dxI
		if in.TouchesBoundary {
			dx = dxB
		}
		return modified(cutLB, lb, tb, thres, dx, dx, th.CoarsenBottom)

	case ShorterBarInterior:
		dx := th.DxRecursive[in.Axis]
		if cutLB {
			return lb >= 2*thres && tb+pad > dx
		}
		return tb >= 2*thres && lb+pad > dx

	case LongerBarDuo:
		dx := th.DxRecursive[in.Axis]
		if !cutLB {
			return lb >= 2*thres && lb+pad > dx
		}
		return tb >= 2*thres && tb+pad > dx

	case AdaptiveBoundary:
		dx := th.DxRecursive[in.Axis]
		if in.TouchesBoundary || in.CrossesRegion {
			dx = th.DxRecursiveBoundary[in.Axis]
		}
		if cutLB {
			return lb >= 2*thres && tb+pad > dx
		}
		return tb >= 2*thres && lb+pad > dx

	case PlannerHomogeneity:
		if in.TouchesBoundary {
			dx := th.DxRecursiveBoundary[in.Axis]
			if cutLB {
				return lb >= 2*thres && tb > dx
			}
			return tb >= 2*thres && lb > dx
		}
		dx := th.DxHomo[in.Axis]
		if cutLB {
			return lb >= 2*thres && tb > dx
		}
		return tb >= 2*thres && lb > dx

	case PlanInterior:
		dx := th.DxRecursive[in.Axis]
		if cutLB {
			return lb >= 2*thres && tb > dx
		}
		return tb >= 2*thres && lb > dx

	case PlanBoundary:
		dx := th.DxRecursive[in.Axis]
		if in.TouchesBoundary {
			dx = th.DxRecursiveBoundary[in.Axis]
		}
		if cutLB {
			return lb >= 2*thres && tb > dx
		}
		return tb >= 2*thres && lb > dx
	}

	return false
}

// modified implements the CAN_CUT_I / CAN_CUT_B shape: on the cut_lb
// branch it always tests lb against dx; on the !cut_lb branch it tests
// lb against dx when coarsenBottom is set (the original's default
// COARSEN_BASE_CASE_WRT_BOTTOM_SIDE), or tb against dx otherwise. dxLB
// and dxTB are passed separately even though the original always uses
// the same resolved threshold on both branches, so callers needing
// asymmetric thresholds (none currently do) retain the option.
func modified(cutLB bool, lb, tb, thres, dxLB, dxTB int, coarsenBottom bool) bool {
	if cutLB {
		return lb >= 2*thres && lb > dxLB
	}
	if coarsenBottom {
		return tb >= 2*thres && lb > dxLB
	}

	return tb >= 2*thres && tb > dxTB
}

// AnyAxisCanCut ORs CanCut over every axis of z (axes N-1 down to 0,
// as the driver in spec.md §4.4 tests them), returning the first axis
// — scanned high to low — for which cutting is legal, or -1 if none
// qualify.
func AnyAxisCanCut(regime Regime, z zoid.Zoid, lt int, slope zoid.Slope, th Thresholds, touchesBoundary, crossesRegion bool) int {
	for axis := z.Rank - 1; axis >= 0; axis-- {
		in := Input{Axis: axis, Lt: lt, Slope: slope[axis], TouchesBoundary: touchesBoundary, CrossesRegion: crossesRegion}
		if CanCut(regime, z, in, th) {
			return axis
		}
	}

	return -1
}
