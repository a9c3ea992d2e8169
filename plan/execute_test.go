package plan_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-zoidwalk/zoidwalk/cutpredicate"
	"github.com/go-zoidwalk/zoidwalk/kernel"
	"github.com/go-zoidwalk/zoidwalk/plan"
	"github.com/go-zoidwalk/zoidwalk/spacecut"
	"github.com/go-zoidwalk/zoidwalk/zoid"
)

func recorder() (func(t0, t1 int, z zoid.Zoid), func() []int) {
	var mu sync.Mutex
	var regions []int

	return func(int, int, zoid.Zoid) {
			mu.Lock()
			defer mu.Unlock()
			regions = append(regions, 0)
		}, func() []int {
			mu.Lock()
			defer mu.Unlock()

			return append([]int(nil), regions...)
		}
}

func TestExecute_SpawnLeafDispatchesThroughRegionIndexedKernel(t *testing.T) {
	z, err := zoid.New(1, []int{0}, []int{4})
	require.NoError(t, err)

	th := cutpredicate.DefaultThresholds()
	th.DxRecursive[0] = 1000 // never cut; dispatch falls straight to the leaf
	th.DtRecursive = 100

	record, calls := recorder()
	cfg := plan.ExecuteConfig{
		Geometry: spacecut.Cutter{Family: spacecut.Modified, Slope: zoid.Slope{1}, Thresholds: th},
		Regions:  kernel.RegionSet{{Interior: record}},
	}

	node := &plan.Node{Kind: plan.Spawn, T0: 0, T1: 1, Zoid: z, RegionIndex: 0}
	plan.Execute(node, cfg)

	require.Equal(t, []int{0}, calls())
}

func TestExecute_InternalJoinsAtSyncBeforeReturning(t *testing.T) {
	z, err := zoid.New(1, []int{0}, []int{4})
	require.NoError(t, err)

	th := cutpredicate.DefaultThresholds()
	th.DxRecursive[0] = 1000
	th.DtRecursive = 100

	record, calls := recorder()
	cfg := plan.ExecuteConfig{
		Geometry: spacecut.Cutter{Family: spacecut.Modified, Slope: zoid.Slope{1}, Thresholds: th},
		Regions:  kernel.RegionSet{{Interior: record}},
	}

	leaf := func() *plan.Node { return &plan.Node{Kind: plan.Spawn, T0: 0, T1: 1, Zoid: z, RegionIndex: 0} }
	root := &plan.Node{Kind: plan.Internal, Children: []*plan.Node{leaf(), leaf(), {Kind: plan.Sync}, leaf()}}

	plan.Execute(root, cfg)

	require.Len(t, calls(), 3)
}
