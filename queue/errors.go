package queue

import "errors"

// Sentinel errors describing the two assertion failures a generation
// queue can hit; both are programming errors per spec.md §7 and are
// reported by panicking with these values rather than returned, since
// a correctly sized queue must never trigger either one.
var (
	// ErrOverflow indicates Push was called on a full ring.
	ErrOverflow = errors.New("queue: push on full ring (ALGOR_QUEUE_SIZE too small)")

	// ErrUnderflow indicates Pop or Peek was called on an empty ring.
	ErrUnderflow = errors.New("queue: pop/peek on empty ring")
)
