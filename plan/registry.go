package plan

import "github.com/go-zoidwalk/zoidwalk/kernel"

// Registry assigns each newly observed homogeneity vector a
// monotonically increasing region index, deduplicating repeats
// (spec.md §4.6: "the planner maintains a homogeneity_vector registry
// that assigns each newly seen vector a monotonically increasing
// region index"). Registry is built single-threaded during planning
// (spec.md §5: "the homogeneity vector registry is built
// single-threaded during planning"), so no lock guards Index.
type Registry struct {
	indices map[kernel.HomogeneityVector]int
	next    int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{indices: make(map[kernel.HomogeneityVector]int)}
}

// Index returns v's region index, assigning the next available index
// the first time v is seen.
func (r *Registry) Index(v kernel.HomogeneityVector) int {
	if idx, ok := r.indices[v]; ok {
		return idx
	}

	idx := r.next
	r.indices[v] = idx
	r.next++

	return idx
}

// Len reports how many distinct homogeneity vectors have been
// registered so far.
func (r *Registry) Len() int {
	return r.next
}
