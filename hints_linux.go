//go:build linux

package cas

import (
	"os"

	"golang.org/x/sys/unix"
)

// applyReadHints maps ReadOptions to posix_fadvise calls. posix_fadvise
// is a Linux-specific syscall (notably absent on Darwin/BSD, which the
// generic "unix" build tag would otherwise include), so this file is
// built only on linux; every other platform uses the no-op in
// hints_other.go. Sequential wins over RandomAccess if both are set.
// Any fadvise failure is ignored: it is an optional performance hint,
// never a correctness requirement.
func applyReadHints(f *os.File, opts ReadOptions) {
	switch {
	case opts&ReadSequential != 0:
		_ = unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
	case opts&ReadRandomAccess != 0:
		_ = unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_RANDOM)
	}
}
