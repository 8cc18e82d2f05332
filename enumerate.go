package cas

import (
	"iter"
	"os"

	"github.com/blobstore/cas/internal/layout"
)

// readDirBatch bounds how many entries List reads from a directory
// handle at a time, keeping the walk genuinely lazy instead of
// materializing an entire directory's contents before yielding anything.
const readDirBatch = 256

// List lazily walks the store's root and yields the Address of every
// stored object. Ordering is unspecified. Encoded siblings are never
// yielded. The walk is computed as iteration proceeds: concurrent writes
// and deletes may or may not be observed, and callers must tolerate both
// missing and extra entries relative to any instant-in-time snapshot —
// this is a contractual property of List, not a race to be fixed.
//
// Range over the returned sequence with a for/range loop; stopping
// iteration early (via break, or yield returning false) closes the
// directory handles List still had open.
func (s *Store) List() iter.Seq[Address] {
	return func(yield func(Address) bool) {
		root, err := os.Open(s.root)
		if err != nil {
			return
		}
		defer root.Close()

		for {
			names, err := root.Readdirnames(readDirBatch)
			for _, name := range names {
				if len(name) != layout.PrefixLen || !isHex(name) {
					continue
				}
				if !yieldSubdir(s.root, name, yield) {
					return
				}
			}
			if err != nil {
				return
			}
		}
	}
}

// yieldSubdir lazily walks one hex-prefix subdirectory, yielding the
// Address for every base-object file it contains. It reports whether the
// caller should keep iterating.
func yieldSubdir(root, prefix string, yield func(Address) bool) bool {
	dir, err := os.Open(layout.Subdir(root, prefix))
	if err != nil {
		return true
	}
	defer dir.Close()

	for {
		entries, err := dir.ReadDir(readDirBatch)
		for _, entry := range entries {
			name := entry.Name()
			if len(name) != layout.NameLen || !isHex(name) {
				continue // encoded siblings and foreign files are skipped
			}
			if !entry.Type().IsRegular() {
				continue
			}
			addr, perr := ParseAddress(prefix + name)
			if perr != nil {
				continue
			}
			if !yield(addr) {
				return false
			}
		}
		if err != nil {
			return true
		}
	}
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
