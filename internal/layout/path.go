// Package layout computes the deterministic on-disk paths a content
// address maps to. It knows nothing about Address, hashing, or I/O — it
// is pure path arithmetic over a 40-character hex string, kept separate
// from the root package so it has no dependency on the public API it
// serves.
package layout

import (
	"path/filepath"
	"strings"
)

// PrefixLen is the number of leading hex characters used to fan the
// store's root directory out into subdirectories, bounding the root to
// at most 16^PrefixLen prefix subdirectories.
const PrefixLen = 4

// NameLen is the length of the base object's filename: the hex text of
// an address minus its directory prefix.
const NameLen = 40 - PrefixLen

// Subdir returns the subdirectory under root that holds the object
// addressed by the 40-character upper-case hex string hexAddr.
func Subdir(root, hexAddr string) string {
	return filepath.Join(root, hexAddr[:PrefixLen])
}

// BasePath returns the canonical path of the base object for hexAddr.
func BasePath(root, hexAddr string) string {
	return filepath.Join(Subdir(root, hexAddr), hexAddr[PrefixLen:])
}

// SiblingPath returns the canonical path of the encoded sibling named
// encoding for hexAddr. encoding must already be validated by
// [ValidEncodingName].
func SiblingPath(root, hexAddr, encoding string) string {
	return BasePath(root, hexAddr) + "." + encoding
}

// ValidEncodingName reports whether name is usable as an encoding
// filename suffix: non-empty, and free of path separators and dots.
func ValidEncodingName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, "./\\")
}
