package cas

import (
	"os"

	"github.com/blobstore/cas/internal/layout"
)

// ReadOptions are access-pattern hints for [Store.TryOpen]. They may be
// combined by bitwise OR. Sequential and RandomAccess are mutually
// exclusive; if both are set, Sequential takes precedence.
type ReadOptions uint8

const (
	// ReadNone requests no particular access pattern.
	ReadNone ReadOptions = 0

	// ReadSequential hints that the returned stream will be read
	// front-to-back.
	ReadSequential ReadOptions = 1 << 0

	// ReadRandomAccess hints that the returned stream will be read with
	// scattered seeks rather than sequentially.
	ReadRandomAccess ReadOptions = 1 << 1

	// ReadAsynchronous hints that the caller intends to drive the
	// returned stream's reads from a non-blocking or pooled context.
	// The store does not itself offer an async read API, and this flag
	// changes neither how the file is opened nor any platform read hint.
	ReadAsynchronous ReadOptions = 1 << 2
)

// resolvedPath returns the canonical path for addr, optionally suffixed
// by an encoding name. An empty encoding selects the base object.
func resolvedPath(root string, addr Address, encoding string) string {
	hexAddr := addr.String()
	if encoding == "" {
		return layout.BasePath(root, hexAddr)
	}
	return layout.SiblingPath(root, hexAddr, encoding)
}

// Contains reports whether an object (or, if encoding is non-empty, one
// of its encoded siblings) exists under addr. Contains never errors: any
// filesystem failure other than "not found" is treated as absence,
// since a negative existence check has no other useful signal to give a
// caller.
func (s *Store) Contains(addr Address, encoding string) bool {
	_, err := os.Stat(resolvedPath(s.root, addr, encoding))
	return err == nil
}

// TryOpen opens the object (or encoded sibling, if encoding is
// non-empty) addressed by addr for reading. It returns (nil, false) if
// no matching file exists. The returned [*os.File] permits shared reads
// by multiple goroutines and processes, and — once opened — its view of
// the bytes is unaffected by a later [Store.Delete] of the same address:
// the open file descriptor keeps the unlinked inode alive on POSIX
// filesystems.
func (s *Store) TryOpen(addr Address, opts ReadOptions, encoding string) (*os.File, bool) {
	f, err := os.Open(resolvedPath(s.root, addr, encoding))
	if err != nil {
		return nil, false
	}
	applyReadHints(f, opts)
	return f, true
}

// TryLength returns the size in bytes of the object (or encoded sibling)
// addressed by addr, or (0, false) if it does not exist. Querying the
// length of an encoding that was never written for addr — even if the
// base object exists — returns (0, false).
func (s *Store) TryLength(addr Address, encoding string) (int64, bool) {
	info, err := os.Stat(resolvedPath(s.root, addr, encoding))
	if err != nil {
		return 0, false
	}
	return info.Size(), true
}
