package spacecut

import "github.com/go-zoidwalk/zoidwalk/zoid"

// modifiedCutLB implements spec.md §4.3's "Modified cut, cut_lb" shape:
// two next-color degenerate triangles at the bar's ends, plus either a
// single same-color inverted trapezoid (lb < 4*thres) or two same-color
// inverted triangles flanking a next-color middle trapezoid (lb >=
// 4*thres). Identical for the interior and boundary regimes.
func modifiedCutLB(z zoid.Zoid, axis, slope, lb, thres int) []Child {
	lStart, lEnd := z.X0[axis], z.X1[axis]
	dx0, dx1 := z.DX0[axis], z.DX1[axis]

	children := []Child{
		{NextColor, z.WithAxis(axis, lStart, dx0, lStart, slope)},
		{NextColor, z.WithAxis(axis, lEnd, -slope, lEnd, dx1)},
	}

	if lb-4*thres >= 0 {
		offset := 2 * thres
		children = append(children,
			Child{SameColor, z.WithAxis(axis, lStart, slope, lStart+offset, -slope)},
			Child{SameColor, z.WithAxis(axis, lEnd-offset, slope, lEnd, -slope)},
			Child{NextColor, z.WithAxis(axis, lStart+offset, -slope, lEnd-offset, slope)},
		)
	} else {
		children = append(children, Child{SameColor, z.WithAxis(axis, lStart, slope, lEnd, -slope)})
	}

	return children
}

// modifiedCutTB implements spec.md §4.3's "Modified cut, cut_tb" shape:
// two same-color outer trapezoids, plus either one next-color center
// (tb < 4*thres) or two next-color degenerate spikes flanking a
// same-color center (tb >= 4*thres).
func modifiedCutTB(z zoid.Zoid, axis, slope, tb, thres int) []Child {
	lStart, lEnd := z.X0[axis], z.X1[axis]
	dx0, dx1 := z.DX0[axis], z.DX1[axis]
	offset := 2 * thres

	children := []Child{
		{SameColor, z.WithAxis(axis, lStart, dx0, lStart+offset, -slope)},
		{SameColor, z.WithAxis(axis, lEnd-offset, slope, lEnd, dx1)},
	}

	if tb-4*thres >= 0 {
		children = append(children,
			Child{NextColor, z.WithAxis(axis, lStart+offset, -slope, lStart+offset, slope)},
			Child{NextColor, z.WithAxis(axis, lEnd-offset, -slope, lEnd-offset, slope)},
			Child{SameColor, z.WithAxis(axis, lStart+offset, slope, lEnd-offset, -slope)},
		)
	} else {
		children = append(children, Child{NextColor, z.WithAxis(axis, lStart+offset, -slope, lEnd-offset, slope)})
	}

	return children
}
