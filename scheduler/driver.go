package scheduler

import (
	"github.com/go-zoidwalk/zoidwalk/cutpredicate"
	"github.com/go-zoidwalk/zoidwalk/kernel"
	"github.com/go-zoidwalk/zoidwalk/zoid"
)

// RunAdaptive drives zoid z over [t0, t1) through the decide →
// SPACE/TIME/LEAF state machine of spec.md §4.4, dispatching d.Kernels
// at every LEAF transition.
func (d *Driver) RunAdaptive(t0, t1 int, z zoid.Zoid) {
	d.decide(t0, t1, z)
}

// decide implements one state-machine step: test every axis predicate
// (scanning high to low, same order as AnyAxisCanCut), canonicalizing z
// against d.Cutter.Bounds along the way when boundary mode is active;
// transition to SPACE if any axis qualifies, else TIME if the elapsed
// time still exceeds the resolved dt_stop, else LEAF.
func (d *Driver) decide(t0, t1 int, z zoid.Zoid) {
	lt := t1 - t0
	z, anyCanCut, touchesBoundary := d.scanAxes(z, lt)

	if z.Rank == 1 && lt <= 1 {
		anyCanCut = false
	}

	if anyCanCut {
		d.Cutter.Run(t0, t1, z, d.decide)

		return
	}

	dtStop := d.Cutter.Thresholds.DtRecursive
	if touchesBoundary {
		dtStop = d.Cutter.Thresholds.DtRecursiveBoundary
	}

	if lt > dtStop {
		halflt := lt / 2
		d.decide(t0, t0+halflt, z)
		d.decide(t0+halflt, t1, z.ShiftTop(halflt))

		return
	}

	aligned := kernel.Aligned(t0, t1, d.Kernels.Unroll, d.Cutter.Thresholds.TimeShift)
	d.Kernels.Invoke(t0, t1, z, touchesBoundary, aligned)
}

// scanAxes tests the cut predicate on every axis of z (high to low),
// canonicalizing z in place per axis when boundary mode is active, and
// reports whether any axis qualifies for a cut and whether any axis
// touches the physical boundary.
func (d *Driver) scanAxes(z zoid.Zoid, lt int) (out zoid.Zoid, anyCanCut, touchesBoundary bool) {
	for axis := z.Rank - 1; axis >= 0; axis-- {
		axisTouches := false
		if d.Cutter.Boundary {
			axisTouches = zoid.TouchBoundary(d.Cutter.Bounds, axis, lt, &z)
		}
		touchesBoundary = touchesBoundary || axisTouches

		in := cutpredicate.Input{Axis: axis, Lt: lt, Slope: d.Cutter.Slope[axis], TouchesBoundary: axisTouches}
		if cutpredicate.CanCut(d.Cutter.Regime(), z, in, d.Cutter.Thresholds) {
			anyCanCut = true
		}
	}

	return z, anyCanCut, touchesBoundary
}
