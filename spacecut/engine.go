package spacecut

import (
	"sync"

	"github.com/go-zoidwalk/zoidwalk/cutpredicate"
	"github.com/go-zoidwalk/zoidwalk/queue"
	"github.com/go-zoidwalk/zoidwalk/zoid"
)

// Run drives the generation-queue drain loop of spec.md §4.3 over
// root: while an axis predicate keeps failing, the zoid is re-queued
// at a lower axis level; once every axis has been tested (level < 0
// for every entry in the current color), every such entry is
// dispatched concurrently through recurse and the loop waits for all
// of them before advancing to the next color. recurse is the caller's
// recursive top-level (spec.md's space_time_cut_interior/_boundary) —
// Cutter only decomposes space, it never calls a leaf kernel directly.
func (c *Cutter) Run(t0, t1 int, root zoid.Zoid, recurse func(t0, t1 int, z zoid.Zoid)) {
	if c.Family < Modified || c.Family > Duo {
		panic(ErrUnknownFamily)
	}

	gq := queue.New(c.capacity(root.Rank))
	gq.Push(0, queue.Entry{Level: root.Rank - 1, T0: t0, T1: t1, Zoid: root})

	for dep := 0; dep <= root.Rank; dep++ {
		color := dep & 1
		for gq.Len(color) > 0 {
			if gq.Peek(color).Level < 0 {
				c.dispatch(gq, color, recurse)
				continue
			}

			e := *gq.Peek(color)
			gq.Pop(color)
			c.advance(gq, dep, color, e)
		}
	}
}

// dispatch drains every remaining (fully axis-decomposed) entry of
// color, running recurse for each concurrently and joining before
// returning — the fork-join barrier spec.md §4.3 step 2 calls for.
func (c *Cutter) dispatch(gq *queue.Generation, color int, recurse func(t0, t1 int, z zoid.Zoid)) {
	var wg sync.WaitGroup
	for gq.Len(color) > 0 {
		e := *gq.Peek(color)
		gq.Pop(color)
		wg.Add(1)
		go func(e queue.Entry) {
			defer wg.Done()
			recurse(e.T0, e.T1, e.Zoid)
		}(e)
	}
	wg.Wait()
}

// advance tests e's current axis (e.Level) and either re-queues it one
// axis lower unchanged, or splits it into children and re-queues each
// one axis lower in the color its ColorTag selects.
func (c *Cutter) advance(gq *queue.Generation, dep, color int, e queue.Entry) {
	axis := e.Level
	lt := e.T1 - e.T0
	z := e.Zoid

	touchesBoundary := false
	if c.Boundary {
		touchesBoundary = zoid.TouchBoundary(c.Bounds, axis, lt, &z)
	}

	in := cutpredicate.Input{Axis: axis, Lt: lt, Slope: c.Slope[axis], TouchesBoundary: touchesBoundary}
	if !cutpredicate.CanCut(c.regime(), z, in, c.Thresholds) {
		gq.Push(color, queue.Entry{Level: axis - 1, T0: e.T0, T1: e.T1, Zoid: z})

		return
	}

	for _, ch := range c.split(z, axis, lt, in) {
		col := color
		if ch.Color == NextColor {
			col = (dep + 1) & 1
		}
		gq.Push(col, queue.Entry{Level: axis - 1, T0: e.T0, T1: e.T1, Zoid: ch.Zoid})
	}
}

// split picks the sub-zoid geometry for c.Family and the predicate's
// cut_lb decision. ShorterBar and Duo share geometry: Duo cuts lb
// exactly when ShorterBar would not (it always targets the wider bar,
// ShorterBar always the narrower one — see DESIGN.md), so cutOnLB is
// cutLB XNOR'd against the family.
func (c *Cutter) split(z zoid.Zoid, axis, lt int, in cutpredicate.Input) []Child {
	lb, tb, thres, _, cutLB := cutpredicate.Dims(z, in)
	slope := c.Slope[axis]

	if c.Family == Modified {
		if cutLB {
			return modifiedCutLB(z, axis, slope, lb, thres)
		}

		return modifiedCutTB(z, axis, slope, tb, thres)
	}

	cutOnLB := cutLB == (c.Family == ShorterBar)
	if cutOnLB {
		return barCutLB(z, axis, slope, lb, thres)
	}

	initialCut := c.Boundary && lb == c.Bounds.L[axis] && z.DX0[axis] == 0 && z.DX1[axis] == 0

	return barCutTB(z, axis, lt, slope, tb, lb, initialCut)
}
