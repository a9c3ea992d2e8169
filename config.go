package zoidwalk

import (
	"github.com/go-zoidwalk/zoidwalk/cutpredicate"
	"github.com/go-zoidwalk/zoidwalk/zoid"
)

// Config bundles the per-axis slope, physical bounds, and threshold
// constants spec.md §6 lists as inputs shared by every entry point:
// callers build one Config for a domain and pass it to RunBicut,
// RunAdaptive, BuildPlan, and ExecutePlan alike.
type Config struct {
	Bounds     zoid.Bounds
	Slope      zoid.Slope
	Thresholds cutpredicate.Thresholds
}
