// Package queue_test validates the generation queue's ring semantics,
// including the overflow/underflow assertion failures spec.md §7 calls
// for.
package queue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-zoidwalk/zoidwalk/queue"
	"github.com/go-zoidwalk/zoidwalk/zoid"
)

func TestGeneration_PushPopOrder(t *testing.T) {
	g := queue.New(4)
	z, err := zoid.New(1, []int{0}, []int{1})
	require.NoError(t, err)

	g.Push(0, queue.Entry{Level: 2, T0: 0, T1: 1, Zoid: z})
	g.Push(0, queue.Entry{Level: 1, T0: 0, T1: 1, Zoid: z})
	require.Equal(t, 2, g.Len(0))

	require.Equal(t, 2, g.Peek(0).Level)
	g.Pop(0)
	require.Equal(t, 1, g.Peek(0).Level)
	g.Pop(0)
	require.Equal(t, 0, g.Len(0))
}

func TestGeneration_ColorsAreIndependent(t *testing.T) {
	g := queue.New(4)
	z, _ := zoid.New(1, []int{0}, []int{1})

	g.Push(0, queue.Entry{Level: 0, Zoid: z})
	g.Push(1, queue.Entry{Level: 9, Zoid: z})

	require.Equal(t, 1, g.Len(0))
	require.Equal(t, 1, g.Len(1))
	require.Equal(t, 9, g.Peek(1).Level)
}

func TestGeneration_ColorTakenModulo2(t *testing.T) {
	g := queue.New(4)
	z, _ := zoid.New(1, []int{0}, []int{1})
	g.Push(2, queue.Entry{Level: 7, Zoid: z}) // color 2 == color 0
	require.Equal(t, 1, g.Len(0))
}

func TestGeneration_OverflowPanics(t *testing.T) {
	g := queue.New(1)
	z, _ := zoid.New(1, []int{0}, []int{1})
	g.Push(0, queue.Entry{Zoid: z})

	require.PanicsWithValue(t, queue.ErrOverflow, func() {
		g.Push(0, queue.Entry{Zoid: z})
	})
}

func TestGeneration_UnderflowPanics(t *testing.T) {
	g := queue.New(1)
	require.PanicsWithValue(t, queue.ErrUnderflow, func() {
		g.Pop(0)
	})
	require.PanicsWithValue(t, queue.ErrUnderflow, func() {
		g.Peek(0)
	})
}

func TestMinCapacity(t *testing.T) {
	require.Equal(t, 6, queue.MinCapacity(1))
	require.Equal(t, 9, queue.MinCapacity(2))
}
