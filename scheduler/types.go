package scheduler

import (
	"github.com/go-zoidwalk/zoidwalk/kernel"
	"github.com/go-zoidwalk/zoidwalk/spacecut"
)

// Driver is the spec.md §4.4 multi-axis driver + time-cut state
// machine for one cut family. Cutter supplies the predicate regime,
// per-axis slopes, and (when Cutter.Boundary is set) the physical
// bounds used to test and canonicalize zoids against the domain edge.
// Kernels is invoked at every LEAF transition.
type Driver struct {
	Cutter  spacecut.Cutter
	Kernels kernel.Set
}
