// Package zoid_test validates Zoid construction, invariants, and the
// time-bisection transform.
package zoid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-zoidwalk/zoidwalk/zoid"
)

func TestNew_ValidatesRankAndShape(t *testing.T) {
	_, err := zoid.New(0, nil, nil)
	require.ErrorIs(t, err, zoid.ErrBadRank)

	_, err = zoid.New(zoid.MaxRank+1, nil, nil)
	require.ErrorIs(t, err, zoid.ErrBadRank)

	_, err = zoid.New(2, []int{0, 0}, []int{4})
	require.ErrorIs(t, err, zoid.ErrAxisOutOfRange)

	_, err = zoid.New(1, []int{4}, []int{0})
	require.ErrorIs(t, err, zoid.ErrEmptyAxis)

	z, err := zoid.New(2, []int{0, 0}, []int{16, 8})
	require.NoError(t, err)
	require.Equal(t, 2, z.Rank)
	require.Equal(t, 16, z.BottomWidth(0))
	require.Equal(t, 8, z.BottomWidth(1))
}

func TestZoid_Validate(t *testing.T) {
	z, err := zoid.New(1, []int{0}, []int{16})
	require.NoError(t, err)

	slope := zoid.Slope{1}
	require.NoError(t, z.Validate(slope, 4))

	bad := z
	bad.DX0[0] = 2
	require.ErrorIs(t, bad.Validate(slope, 4), zoid.ErrBadSlope)

	inverted := z
	inverted.DX1[0] = -1
	inverted.DX0[0] = 1
	// top0 = 0+1*20=20, top1=16-20=-4 -> top0 > top1
	require.ErrorIs(t, inverted.Validate(slope, 20), zoid.ErrEmptyAxis)
}

func TestZoid_TopWidth(t *testing.T) {
	z, err := zoid.New(1, []int{0}, []int{8})
	require.NoError(t, err)
	z.DX0[0], z.DX1[0] = 1, -1

	// over lt=3: top0=3, top1=8-3=5, width=2
	require.Equal(t, 2, z.TopWidth(0, 3))
}

func TestZoid_ShiftTop(t *testing.T) {
	z, err := zoid.New(1, []int{0}, []int{8})
	require.NoError(t, err)
	z.DX0[0], z.DX1[0] = 1, -1

	shifted := z.ShiftTop(2)
	require.Equal(t, 2, shifted.X0[0])
	require.Equal(t, 6, shifted.X1[0])
	// slopes are preserved, only the bottom edges move
	require.Equal(t, z.DX0[0], shifted.DX0[0])
	require.Equal(t, z.DX1[0], shifted.DX1[0])
}

func TestZoid_WithAxis_DoesNotMutateParent(t *testing.T) {
	z, err := zoid.New(1, []int{0}, []int{8})
	require.NoError(t, err)

	child := z.WithAxis(0, 0, 1, 4, -1)
	require.Equal(t, 8, z.X1[0], "parent must be unchanged")
	require.Equal(t, 4, child.X1[0])
	require.Equal(t, 1, child.DX0[0])
}
