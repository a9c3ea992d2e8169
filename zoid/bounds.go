package zoid

// Bounds describes the physical containing N-rectangle [0, L[i]) per
// axis, plus the precomputed upper/lower threshold constants used by
// TouchBoundary: Uub (upper-upper bound — at/above this, a zoid that
// has migrated past the periodic seam gets shifted back), Ulb
// (upper-lower bound) and Lub (lower-upper bound) bracket the interior
// region [Lub[i], Ulb[i]) that TouchBoundary treats as boundary-free.
//
// Bounds is built with functional options, matching the teacher's
// GraphOption/GridOptions idiom: callers configure only the axes that
// deviate from the permissive interior-everywhere default.
type Bounds struct {
	Rank int
	L    [MaxRank]int

	Uub [MaxRank]int
	Ulb [MaxRank]int
	Lub [MaxRank]int

	// Periodic[i] marks axis i as wraparound (periodic) rather than
	// open/clamped. TouchBoundary does not read this flag: whether it
	// translates an axis is decided by Uub[i] alone.
	Periodic [MaxRank]bool

	// KleinRemap, when non-nil, replaces the plain "shift down by L[i]"
	// translation on axis i with the caller's Klein-bottle coordinate
	// remap (spec.md §1: out of scope, specified only at this call
	// site). Left nil for ordinary periodic/open domains.
	KleinRemap func(z *Zoid)
}

// BoundsOption configures a Bounds value before use.
type BoundsOption func(*Bounds)

// WithPeriodicAxis marks axis i as periodic and derives its Uub/Ulb/Lub
// thresholds from the physical length L[i] and the axis slope: the
// interior region is the middle [slope, L[i]-slope) band, matching the
// original's convention that a boundary region is exactly as wide as
// the dependency cone can reach in one step. Uub sits one such band
// past the seam (L[i]+slope), so a shifted zoid lands at or above Lub.
func WithPeriodicAxis(i int, slope int) BoundsOption {
	return func(b *Bounds) {
		b.Periodic[i] = true
		b.Uub[i] = b.L[i] + slope
		b.Ulb[i] = b.L[i] - slope
		b.Lub[i] = slope
	}
}

// WithKleinRemap installs a Klein-bottle coordinate remap, invoked by
// TouchBoundary in place of the default translate-by-L(i) shift.
func WithKleinRemap(fn func(z *Zoid)) BoundsOption {
	return func(b *Bounds) { b.KleinRemap = fn }
}

// NewBounds builds a Bounds for a rank-dimensional physical grid
// [0, L[i]) per axis. By default every axis is open (non-periodic) and
// interior everywhere; use WithPeriodicAxis to mark wraparound axes.
func NewBounds(rank int, l []int, opts ...BoundsOption) (Bounds, error) {
	var b Bounds
	if rank < 1 || rank > MaxRank {
		return b, ErrBadRank
	}
	if len(l) != rank {
		return b, ErrAxisOutOfRange
	}
	b.Rank = rank
	for i := 0; i < rank; i++ {
		b.L[i] = l[i]
		b.Ulb[i] = l[i]
		b.Lub[i] = 0
		b.Uub[i] = l[i]
	}
	for _, opt := range opts {
		opt(&b)
	}

	return b, nil
}
