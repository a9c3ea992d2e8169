package plan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-zoidwalk/zoidwalk/kernel"
	"github.com/go-zoidwalk/zoidwalk/plan"
)

func TestRegistry_DedupesAndAssignsMonotonicIndices(t *testing.T) {
	r := plan.NewRegistry()

	require.Equal(t, 0, r.Index(kernel.HomogeneityVector(1)))
	require.Equal(t, 1, r.Index(kernel.HomogeneityVector(2)))
	require.Equal(t, 0, r.Index(kernel.HomogeneityVector(1)), "a repeated vector must reuse its index")
	require.Equal(t, 2, r.Index(kernel.HomogeneityVector(3)), "a new (even non-homogeneous) vector gets the next index")
	require.Equal(t, 3, r.Len())
}
