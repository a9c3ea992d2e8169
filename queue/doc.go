// Package queue implements the generation queue from spec.md §4.5: a
// pair of fixed-capacity ring buffers, one per dependency color, that
// a space-cut invocation uses to batch zoids of the current color
// until every axis has been tested.
//
// The queue is stack-local to each space-cut frame (never shared
// across goroutines) and is sized once at construction via
// ALGOR_QUEUE_SIZE-style capacity; Push on a full ring and Pop/Peek on
// an empty one panic, matching spec.md §7's "a programming error;
// signaled by assertion failure" — sizing the capacity correctly is
// the caller's responsibility, not a runtime-recoverable condition.
package queue
