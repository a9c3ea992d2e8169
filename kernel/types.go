package kernel

import "github.com/go-zoidwalk/zoidwalk/zoid"

// Func is the kernel functor signature from spec.md §6: invoked at a
// base-case zoid with its time range and its space-time region. It
// writes to user memory and returns nothing; the scheduler treats
// invocation as infallible (spec.md §5 "Cancellation: none").
type Func func(t0, t1 int, z zoid.Zoid)

// Set bundles the four kernel capabilities the core is polymorphic
// over, plus the per-region unroll factor the plan executor needs to
// choose between the aligned and conditional variants.
//
//   - Interior runs at an aligned interior base zoid.
//   - Boundary runs at an aligned base zoid that touches the domain
//     boundary.
//   - ConditionalInterior/ConditionalBoundary are the slow-path
//     variants invoked when t0 or t1 is not aligned to Unroll modulo
//     the scheduler's time_shift.
type Set struct {
	Interior            Func
	Boundary            Func
	ConditionalInterior Func
	ConditionalBoundary Func

	// Unroll is the kernel's time-dimension unrolling factor; the
	// plan executor selects the conditional variant whenever t0 or t1
	// is not aligned to it.
	Unroll int
}

// dispatch picks Interior/Boundary or their conditional counterparts,
// given whether the zoid touches the boundary and whether the time
// range is aligned.
func (s Set) dispatch(touchesBoundary, aligned bool) Func {
	switch {
	case touchesBoundary && aligned:
		return s.Boundary
	case touchesBoundary && !aligned:
		return s.ConditionalBoundary
	case !touchesBoundary && aligned:
		return s.Interior
	default:
		return s.ConditionalInterior
	}
}

// Invoke dispatches to the correct functor in s for a base-case zoid
// and calls it.
func (s Set) Invoke(t0, t1 int, z zoid.Zoid, touchesBoundary, aligned bool) {
	if f := s.dispatch(touchesBoundary, aligned); f != nil {
		f(t0, t1, z)
	}
}

// Aligned reports whether both t0 and t1 fall on an Unroll boundary
// after subtracting timeShift, matching spec.md §4.4's "aligned to the
// region's unroll factor modulo a fixed time_shift".
func Aligned(t0, t1, unroll, timeShift int) bool {
	if unroll <= 0 {
		return true
	}

	return mod(t0-timeShift, unroll) == 0 && mod(t1-timeShift, unroll) == 0
}

func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}

// HomogeneityVector names the combination of active kernels/regions
// over a zoid, as reported by a ColorRegion predicate. It is opaque to
// the scheduler beyond equality comparison and a single-bit
// homogeneity test (IsHomogeneous).
type HomogeneityVector uint64

// IsHomogeneous reports whether v names exactly one active region
// (spec.md §4.6 step 2: "a single region").
func (v HomogeneityVector) IsHomogeneous() bool {
	return v != 0 && v&(v-1) == 0
}

// ColorRegion is the user-supplied predicate from spec.md §6:
// color_region(t0, t1, zoid) -> homogeneity_vector.
type ColorRegion func(t0, t1 int, z zoid.Zoid) HomogeneityVector

// RegionSet is the per-region kernel array (opks[region_n] in the
// original) the plan executor dispatches through once a plan leaf has
// been assigned a region index.
type RegionSet []Set
