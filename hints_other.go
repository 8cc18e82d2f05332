//go:build !linux

package cas

import "os"

// applyReadHints is a no-op on platforms with no posix_fadvise
// equivalent wired up.
func applyReadHints(f *os.File, opts ReadOptions) {}
