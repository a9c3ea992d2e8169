package queue

import "github.com/go-zoidwalk/zoidwalk/zoid"

// DefaultCapacity is the ring size the original uses: "a generous
// constant such as 128" (spec.md §5). Callers with many axes should
// size explicitly via New instead of relying on this default — the
// minimum safe capacity is 3*N+3 for N spatial axes.
const DefaultCapacity = 128

// MinCapacity returns the smallest ring capacity spec.md §5 guarantees
// is sufficient for an N-axis domain: the worst case of five children
// per cut over N+1 colors.
func MinCapacity(rank int) int {
	return 3*rank + 3
}

// Entry is one queued zoid: level records how many axes have been
// processed (level == -1 means "ready to dispatch as a whole"), t0/t1
// is its time range, and Zoid is the region itself.
type Entry struct {
	Level  int
	T0, T1 int
	Zoid   zoid.Zoid
}
