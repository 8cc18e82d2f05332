package cas

import "sync"

// placementLock guards the filesystem-layout mutations that move an
// object in or out of the store: the writer's "does the target already
// exist? if not, create the subdirectory and rename into place"
// sequence, and the deleter's clear-readonly-then-unlink sequence.
// [Store.Contains], [Store.TryOpen], [Store.TryLength], and [Store.List]
// take no lock at all, relying on the atomicity of the underlying
// filesystem calls.
//
// An upgradeable reader/writer lock would allow many concurrent readers
// of "does it exist?" alongside a single writer doing the rename+chmod,
// but Go's standard library has no such primitive, so placementLock
// falls back to a plain mutex around the whole check-then-rename
// section, accepting reduced read parallelism during writes. Recursive
// acquisition from the same goroutine is forbidden and will deadlock.
type placementLock struct {
	mu sync.Mutex
}

func (l *placementLock) lock()   { l.mu.Lock() }
func (l *placementLock) unlock() { l.mu.Unlock() }
