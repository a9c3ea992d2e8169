package plan

import "github.com/go-zoidwalk/zoidwalk/kernel"
import "github.com/go-zoidwalk/zoidwalk/zoid"

// Kind names the role of a Node in the plan tree (spec.md §4.6).
type Kind int

const (
	// Spawn is a leaf: a recursive plan_cut(_p) call over a single
	// region, either because color_region reported a homogeneous
	// vector or because the builder gave up subdividing further.
	Spawn Kind = iota

	// Internal holds an ordered sequence of children produced by a
	// single space cut or time halving; Sync markers in Children
	// partition that sequence into fork-join batches.
	Internal

	// Sync is a barrier marker: the executor joins every child spawned
	// since the previous Sync (or the start of Children) before
	// continuing past it.
	Sync
)

// Node is one element of the plan tree. Spawn nodes carry the
// space-time region and the homogeneity vector/region index
// color_region reported for it; Internal nodes carry Children; Sync
// nodes carry nothing.
type Node struct {
	Kind Kind

	T0, T1      int
	Zoid        zoid.Zoid
	Region      kernel.HomogeneityVector
	RegionIndex int
	Homogeneous bool

	Children []*Node
}
