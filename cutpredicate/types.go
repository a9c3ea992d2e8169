package cutpredicate

import "github.com/go-zoidwalk/zoidwalk/zoid"

// Regime selects which row of the spec.md §4.2 predicate table governs
// a recursion. Package scheduler's Driver and package plan's builder
// pick a regime and evaluate it through the CanCut entry point here.
type Regime int

const (
	// ModifiedInterior is the interior row of the "modified" family:
	// CAN_CUT_I in the original.
	ModifiedInterior Regime = iota
	// ModifiedBoundary is the boundary row of the "modified" family:
	// CAN_CUT_B in the original.
	ModifiedBoundary
	// ShorterBarInterior always cuts the shorter bar, leaving a gray
	// minizoid dependency cone between two large trapezoids.
	ShorterBarInterior
	// LongerBarDuo ("duo") selects the wider bar for cutting. Package
	// spacecut's Duo family splits that bar with the same three-child
	// shorter-bar geometry; there is no separate two-child duo shape.
	LongerBarDuo
	// AdaptiveBoundary is the shorter-bar predicate with the boundary
	// threshold substituted whenever the zoid touches the boundary or
	// crosses a homogeneity region.
	AdaptiveBoundary
	// PlannerHomogeneity is used while building the plan tree
	// (package plan): it stops descent at dx_homo instead of
	// dx_recursive.
	PlannerHomogeneity
	// PlanInterior/PlanBoundary are the replay-time predicates used by
	// the plan executor: identical in shape to ShorterBarInterior but
	// without the `pad` term (spec.md §4.7); PlanBoundary swaps in
	// dx_recursive_boundary when the zoid touches the boundary.
	PlanInterior
	PlanBoundary
)

// Thresholds carries every per-axis and scalar stopping constant named
// in spec.md §3: dx_recursive, dx_recursive_boundary, dx_homo per
// axis, and the scalar dt_recursive / dt_recursive_boundary / dt_homo
// / lcm_unroll thresholds.
type Thresholds struct {
	DxRecursive         [zoid.MaxRank]int
	DxRecursiveBoundary [zoid.MaxRank]int
	DxHomo              [zoid.MaxRank]int

	DtRecursive         int
	DtRecursiveBoundary int
	DtHomo              int
	LcmUnroll           int

	// TimeShift is the fixed offset kernel.Aligned subtracts from t0/t1
	// before testing unroll alignment (spec.md §6's time_shift).
	TimeShift int

	// CoarsenBottom selects between the two modes described in
	// spec.md §9's Open Question #2. When true (the original's
	// default, COARSEN_BASE_CASE_WRT_BOTTOM_SIDE), CAN_CUT_I/B test
	// lb > dx_recursive on both branches of cut_lb. When false, the
	// cut_tb branch tests tb > dx_recursive instead. The difference
	// affects termination depth, never correctness.
	CoarsenBottom bool
}

// DefaultThresholds returns a Thresholds with CoarsenBottom enabled
// (the original's compiled-in default) and every numeric field zero;
// callers must set the per-axis/scalar fields for their domain.
func DefaultThresholds() Thresholds {
	return Thresholds{CoarsenBottom: true}
}
