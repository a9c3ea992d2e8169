package spacecut

import "github.com/go-zoidwalk/zoidwalk/zoid"

// barCutLB implements spec.md §4.3's "Shorter-bar cut, cut_lb" shape
// (three children, mid = lb/2): a same-color gray triangle straddling
// the midpoint, flanked by two next-color trapezoids. ShorterBar and
// Duo share this geometry — see split() for which cut_lb value routes
// each family here.
//
// The gray triangle and the trapezoid split points are offset by
// thres (= slope*lt), not slope: with slopes (+slope,-slope) the gray
// triangle only closes to a point at the top when its half-width
// equals thres, and the flanking trapezoids must meet it there too,
// or their tops overlap the gray region.
func barCutLB(z zoid.Zoid, axis, slope, lb, thres int) []Child {
	lStart, lEnd := z.X0[axis], z.X1[axis]
	dx0, dx1 := z.DX0[axis], z.DX1[axis]
	mid := lb / 2

	return []Child{
		{SameColor, z.WithAxis(axis, lStart+mid-thres, slope, lStart+mid+thres, -slope)},
		{NextColor, z.WithAxis(axis, lStart, dx0, lStart+mid-thres, slope)},
		{NextColor, z.WithAxis(axis, lStart+mid+thres, -slope, lEnd, dx1)},
	}
}

// barCutTB implements spec.md §4.3's "Shorter-bar cut, cut_tb" shape
// (three children, mid = tb/2, ul_start = x0+dx0*lt): two same-color
// trapezoids meeting at the top midpoint, plus a next-color middle
// spike. When the axis is at its periodic initial cut (lb equals the
// physical axis length and both slopes are still zero), the two
// trapezoids are merged across the seam into one, per the "Initial
// boundary cut" paragraph.
func barCutTB(z zoid.Zoid, axis, lt, slope, tb, lb int, initialCut bool) []Child {
	lStart, lEnd := z.X0[axis], z.X1[axis]
	dx0, dx1 := z.DX0[axis], z.DX1[axis]
	ulStart := lStart + dx0*lt
	mid := tb / 2

	spike := Child{NextColor, z.WithAxis(axis, ulStart+mid, -slope, ulStart+mid, slope)}

	if initialCut {
		merged := z.WithAxis(axis, ulStart+mid, slope, lEnd+(ulStart-lStart)+mid, -slope)

		return []Child{{SameColor, merged}, spike}
	}

	left := z.WithAxis(axis, lStart, dx0, ulStart+mid, -slope)
	right := z.WithAxis(axis, ulStart+mid, slope, lEnd, dx1)

	return []Child{{SameColor, left}, {SameColor, right}, spike}
}
