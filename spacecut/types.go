package spacecut

import (
	"errors"

	"github.com/go-zoidwalk/zoidwalk/cutpredicate"
	"github.com/go-zoidwalk/zoidwalk/queue"
	"github.com/go-zoidwalk/zoidwalk/zoid"
)

// ErrUnknownFamily is the value Cutter.Run panics with when the Cutter
// carries a Family value outside the three this package implements.
var ErrUnknownFamily = errors.New("spacecut: unknown family")

// Family selects which sub-zoid geometry a Cutter applies once an axis
// predicate passes (spec.md §4.3).
type Family int

const (
	// Modified is the five/three-child (cut_lb) or five/three-child
	// (cut_tb) geometry paired with the ModifiedInterior/ModifiedBoundary
	// predicates.
	Modified Family = iota

	// ShorterBar always cuts whichever bar (lb or tb) is the narrower
	// one, paired with ShorterBarInterior/AdaptiveBoundary.
	ShorterBar

	// Duo always cuts whichever bar is the wider one, paired with
	// LongerBarDuo/AdaptiveBoundary. It reuses ShorterBar's geometry
	// functions under the complementary cut_lb selection — see
	// split() and DESIGN.md for why the two families share geometry.
	Duo
)

// ColorTag names which generation-queue color a Child belongs to,
// relative to the color of the parent entry being split.
type ColorTag int

const (
	// SameColor means the child may run in the same fork-join batch as
	// its siblings still being decomposed.
	SameColor ColorTag = iota

	// NextColor means the child must wait for the current color's
	// barrier before it is eligible to run.
	NextColor
)

// Child is one sub-zoid produced by a space cut, tagged with the color
// it belongs to relative to its parent.
type Child struct {
	Color ColorTag
	Zoid  zoid.Zoid
}

// Cutter drives the generation-queue drain loop of spec.md §4.3 for
// one cut family over one axis ordering. Boundary selects between the
// interior and boundary-aware predicate/geometry pair; Bounds is only
// consulted when Boundary is set.
type Cutter struct {
	Family     Family
	Boundary   bool
	Thresholds cutpredicate.Thresholds
	Slope      zoid.Slope
	Bounds     zoid.Bounds

	// QueueCapacity sizes both color rings; zero selects
	// queue.MinCapacity for the zoid's rank.
	QueueCapacity int

	// RegimeOverride, when set, replaces the Family/Boundary-derived
	// regime CanCut is evaluated against, while Family still selects
	// which geometry Split applies. package plan uses this to drive
	// the same Cutter machinery against PlannerHomogeneity at build
	// time and PlanInterior/PlanBoundary at replay time, reusing one
	// geometry implementation across every predicate family it pairs
	// with.
	RegimeOverride *cutpredicate.Regime
}

// Regime resolves the CanCut regime this Cutter evaluates against:
// RegimeOverride if set, else the Family/Boundary-derived regime per
// spec.md §4.2's predicate table — exported so scheduler's driver and
// package plan can test axis predicates themselves before handing a
// zoid off to Run or Split.
func (c *Cutter) Regime() cutpredicate.Regime {
	return c.regime()
}

// Split is the exported form of split, used by package plan to reuse
// this Cutter's geometry while driving its own single-threaded
// generation-queue drain during planning (spec.md §4.6 step 3 reuses
// "the queue as in §4.3" without reusing Run's fork-join dispatch,
// since the homogeneity registry is built single-threaded).
func (c *Cutter) Split(z zoid.Zoid, axis, lt int, in cutpredicate.Input) []Child {
	return c.split(z, axis, lt, in)
}

// regime is the unexported implementation Run and tests call directly.
func (c *Cutter) regime() cutpredicate.Regime {
	if c.RegimeOverride != nil {
		return *c.RegimeOverride
	}

	switch c.Family {
	case Modified:
		if c.Boundary {
			return cutpredicate.ModifiedBoundary
		}

		return cutpredicate.ModifiedInterior

	case ShorterBar:
		if c.Boundary {
			return cutpredicate.AdaptiveBoundary
		}

		return cutpredicate.ShorterBarInterior

	default: // Duo
		if c.Boundary {
			return cutpredicate.AdaptiveBoundary
		}

		return cutpredicate.LongerBarDuo
	}
}

func (c *Cutter) capacity(rank int) int {
	if c.QueueCapacity > 0 {
		return c.QueueCapacity
	}

	return queue.MinCapacity(rank)
}
