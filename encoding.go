package cas

import "io"

// Encoding is a named, pluggable stream transform. The store persists an
// encoded sibling for an object by running its bytes through
// [Encoding.NewEncoder]; readers run the sibling's bytes back through
// [Encoding.NewDecoder] to recover the original content.
//
// Implementations must satisfy decode(encode(x)) == x for every byte
// sequence x. Name must be stable and safe to use as a filename suffix:
// non-empty, and containing no path separator or dot.
type Encoding interface {
	// Name is the filename suffix (after the dot) used for this
	// encoding's sibling files, e.g. "gzip".
	Name() string

	// NewEncoder wraps w so that bytes written to the result are stored
	// in encoded form in w.
	NewEncoder(w io.Writer) (io.WriteCloser, error)

	// NewDecoder wraps r so that bytes read from the result are the
	// decoded form of r's encoded bytes.
	NewDecoder(r io.Reader) (io.ReadCloser, error)
}
