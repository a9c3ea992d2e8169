package zoid

// TouchBoundary reports whether zoid z, over a time range of length
// lt, straddles the boundary region of axis i. It also canonicalizes
// z in place: when both the bottom and the top of z on axis i lie at
// or above the upper threshold b.Uub[i], z is translated back into
// canonical coordinates (shifted down by the physical axis length, or
// passed through b.KleinRemap when one is configured) and reported as
// interior. When both the bottom and the top lie fully inside the
// inner band [b.Lub[i], b.Ulb[i]), z is interior without any shift.
// Otherwise z touches the boundary and is left untouched.
//
// Invariant: after TouchBoundary returns true, no coordinate shift has
// been applied to *z; after it returns false, *z has been
// canonicalized. TouchBoundary is idempotent on interior zoids: a
// second call against an already-canonicalized interior zoid again
// reports false and performs no further shift.
func TouchBoundary(b Bounds, i, lt int, z *Zoid) bool {
	interior := false

	if z.X0[i] >= b.Uub[i] && z.X0[i]+z.DX0[i]*lt >= b.Uub[i] {
		interior = true
		if b.KleinRemap != nil {
			b.KleinRemap(z)
		} else {
			z.X0[i] -= b.L[i]
			z.X1[i] -= b.L[i]
		}
	} else if z.X1[i] <= b.Ulb[i] && z.X1[i]+z.DX1[i]*lt <= b.Ulb[i] &&
		z.X0[i] >= b.Lub[i] && z.X0[i]+z.DX0[i]*lt >= b.Lub[i] {
		interior = true
	}

	return !interior
}

// WithinInterior ORs TouchBoundary across every axis of z over
// [t0, t1): it reports true only when every axis is interior, exactly
// as the original's within_boundary helper does. Axes are tested in
// order 0..Rank-1 so that any periodic canonicalization on an earlier
// axis is visible to later axis tests operating on the same z.
func WithinInterior(b Bounds, t0, t1 int, z *Zoid) bool {
	lt := t1 - t0
	touchesAny := false
	for i := 0; i < z.Rank; i++ {
		if TouchBoundary(b, i, lt, z) {
			touchesAny = true
		}
	}

	return !touchesAny
}
