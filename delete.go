package cas

import (
	"os"
	"path/filepath"

	"github.com/blobstore/cas/internal/layout"
)

// Delete removes the object addressed by addr and every encoded sibling
// matching its canonical prefix. It returns false if no matching file
// exists. Delete takes the store's placement lock for the duration of
// the clear-readonly-then-unlink sequence, guarded the same way Write's
// placement step is guarded, so a Delete can never interleave with a
// concurrent Write's create-subdir/rename sequence for the same
// address.
//
// Empty subdirectories are left in place after their last file is
// removed: cheap, and it avoids racing with a concurrent writer about to
// place a new sibling there.
//
// A failure partway through (some siblings removed, one fails) surfaces
// the underlying error; the store is left in the partially-deleted
// state, and callers may retry.
func (s *Store) Delete(addr Address) (bool, error) {
	hexAddr := addr.String()
	subdir := layout.Subdir(s.root, hexAddr)
	name := hexAddr[layout.PrefixLen:]

	s.placement.lock()
	defer s.placement.unlock()

	entries, err := os.ReadDir(subdir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	found := false
	for _, entry := range entries {
		if !matchesAddress(entry.Name(), name) {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(subdir, entry.Name())
		if err := os.Chmod(path, 0o644); err != nil && !os.IsNotExist(err) {
			return found, err
		}
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return found, err
		}
		found = true
	}
	return found, nil
}

// matchesAddress reports whether fileName is the base object named
// exactly name, or an encoded sibling named name + "." + <suffix>.
func matchesAddress(fileName, name string) bool {
	if fileName == name {
		return true
	}
	return len(fileName) > len(name) &&
		fileName[:len(name)] == name &&
		fileName[len(name)] == '.'
}
