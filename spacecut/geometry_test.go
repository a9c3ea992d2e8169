// Internal test package: exercises the per-regime sub-zoid geometries
// against the worked shapes spec.md §4.3 describes, via the
// unexported regime()/split() entry points the drain loop itself uses.
package spacecut

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-zoidwalk/zoidwalk/cutpredicate"
	"github.com/go-zoidwalk/zoidwalk/zoid"
)

func rank1(lo, hi int) zoid.Zoid {
	z, err := zoid.New(1, []int{lo}, []int{hi})
	if err != nil {
		panic(err)
	}

	return z
}

func splitVia(t *testing.T, c *Cutter, z zoid.Zoid, lt int) []Child {
	t.Helper()
	in := cutpredicate.Input{Axis: 0, Lt: lt, Slope: c.Slope[0]}
	require.True(t, cutpredicate.CanCut(c.regime(), z, in, c.Thresholds), "precondition: axis must be cuttable")

	return c.split(z, 0, lt, in)
}

func TestModifiedCutLB_FiveChildrenWhenLbAtLeast4Thres(t *testing.T) {
	// lt=1, slope=2 -> thres=2, 4*thres=8. dx0=-1,dx1=1 expands the top
	// past the bottom (cut_lb), and lb=20 clears the cut_more threshold.
	z := rank1(0, 20)
	z.DX0[0], z.DX1[0] = -1, 1

	c := &Cutter{Family: Modified, Slope: zoid.Slope{2}, Thresholds: cutpredicate.DefaultThresholds()}
	children := splitVia(t, c, z, 1)
	require.Len(t, children, 5)
}

func TestModifiedCutLB_ThreeChildrenWhenLbBelow4Thres(t *testing.T) {
	// lb=6 < 4*thres=8.
	z := rank1(0, 6)
	z.DX0[0], z.DX1[0] = -1, 1

	c := &Cutter{Family: Modified, Slope: zoid.Slope{2}, Thresholds: cutpredicate.DefaultThresholds()}
	children := splitVia(t, c, z, 1)
	require.Len(t, children, 3)
}

func TestModifiedCutTB_FiveChildrenWhenTbAtLeast4Thres(t *testing.T) {
	// dx0=1,dx1=-1 shrinks the top past the bottom (cut_tb); tb=18
	// clears the cut_more threshold (4*thres=8).
	z := rank1(0, 20)
	z.DX0[0], z.DX1[0] = 1, -1

	c := &Cutter{Family: Modified, Slope: zoid.Slope{2}, Thresholds: cutpredicate.DefaultThresholds()}
	children := splitVia(t, c, z, 1)
	require.Len(t, children, 5)
}

func TestBarCutLB_ThreeChildren(t *testing.T) {
	// Same cut_lb geometry trigger as the modified case above.
	z := rank1(0, 20)
	z.DX0[0], z.DX1[0] = -1, 1

	c := &Cutter{Family: ShorterBar, Slope: zoid.Slope{2}, Thresholds: cutpredicate.DefaultThresholds()}
	children := splitVia(t, c, z, 1)
	require.Len(t, children, 3)
}

// TestBarCutLB_UsesThresNotSlopeWhenLtExceedsOne pins the exact
// coordinates spec.md §4.3 gives for the "Shorter-bar cut, cut_lb"
// shape at lt=3, where thres (= slope*lt = 6) diverges from slope (2):
// the gray triangle is [l_start+mid-thres, l_start+mid+thres) and the
// flanking trapezoids split at the same two points. Using slope in
// place of thres here would invert the gray triangle's top edge
// (x0>x1) and make the trapezoid tops overlap it.
func TestBarCutLB_UsesThresNotSlopeWhenLtExceedsOne(t *testing.T) {
	const lt, slope = 3, 2
	z := rank1(0, 20)
	z.DX0[0], z.DX1[0] = -slope, slope // widens the top: tb=20+2*slope*lt=32, cutLB=true

	c := &Cutter{Family: ShorterBar, Slope: zoid.Slope{slope}, Thresholds: cutpredicate.DefaultThresholds()}
	children := splitVia(t, c, z, lt)
	require.Len(t, children, 3)

	const mid, thres = 10, slope * lt // lb=20, mid=lb/2=10, thres=6

	gray := children[0]
	require.Equal(t, SameColor, gray.Color)
	require.Equal(t, 0+mid-thres, gray.Zoid.X0[0])
	require.Equal(t, 0+mid+thres, gray.Zoid.X1[0])
	require.Equal(t, slope, gray.Zoid.DX0[0])
	require.Equal(t, -slope, gray.Zoid.DX1[0])
	// The gray triangle must close to a single point at its top, not invert.
	require.Equal(t, gray.Zoid.X0[0]+gray.Zoid.DX0[0]*lt, gray.Zoid.X1[0]+gray.Zoid.DX1[0]*lt)

	left, right := children[1], children[2]
	require.Equal(t, NextColor, left.Color)
	require.Equal(t, 0, left.Zoid.X0[0])
	require.Equal(t, 0+mid-thres, left.Zoid.X1[0])

	require.Equal(t, NextColor, right.Color)
	require.Equal(t, 0+mid+thres, right.Zoid.X0[0])
	require.Equal(t, 20, right.Zoid.X1[0])
}

func TestBarCutTB_NormalCaseThreeChildren(t *testing.T) {
	// dx0=1,dx1=-1 over lt=1 with slope=2 shrinks the top below the
	// bottom (cut_tb): lb=10, tb=8.
	z := rank1(0, 10)
	z.DX0[0], z.DX1[0] = 1, -1

	c := &Cutter{Family: ShorterBar, Slope: zoid.Slope{2}, Thresholds: cutpredicate.DefaultThresholds()}
	children := splitVia(t, c, z, 1)
	require.Len(t, children, 3)
}

func TestBarCutTB_InitialCutMergesToTwoChildren(t *testing.T) {
	bounds, err := zoid.NewBounds(1, []int{20}, zoid.WithPeriodicAxis(0, 2))
	require.NoError(t, err)

	// lb == L[0], both slopes still zero: the periodic initial-cut
	// condition from the "Initial boundary cut" paragraph.
	z := rank1(0, 20)

	c := &Cutter{
		Family:     ShorterBar,
		Boundary:   true,
		Bounds:     bounds,
		Slope:      zoid.Slope{2},
		Thresholds: cutpredicate.DefaultThresholds(),
	}
	children := splitVia(t, c, z, 1)
	require.Len(t, children, 2)
}

func TestDuo_CutsTheWiderBarExactlyWhenShorterBarWouldNot(t *testing.T) {
	// Same zoid/thresholds as TestBarCutTB_NormalCaseThreeChildren
	// (cut_lb is false there): Duo should take the cut_lb branch
	// instead of ShorterBar's cut_tb branch.
	z := rank1(0, 10)
	z.DX0[0], z.DX1[0] = 1, -1

	duo := &Cutter{Family: Duo, Slope: zoid.Slope{2}, Thresholds: cutpredicate.DefaultThresholds()}
	in := cutpredicate.Input{Axis: 0, Lt: 1, Slope: duo.Slope[0]}
	require.True(t, cutpredicate.CanCut(duo.regime(), z, in, duo.Thresholds))

	children := duo.split(z, 0, 1, in)
	require.Len(t, children, 3) // barCutLB shape, not barCutTB's
}
