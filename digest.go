package cas

import (
	"crypto/sha1" //nolint:gosec // SHA-1 is the store's addressing function, not a security boundary
	"io"
)

// digestBufferSize is the buffer size used by [ComputeAddress], matching
// the streaming chunk size used throughout the write path.
const digestBufferSize = 4096

// Digest is a streaming SHA-1 accumulator. It satisfies [io.Writer] so it
// can be used as the destination of an [io.TeeReader] or [io.MultiWriter].
// A Digest is not safe for concurrent use by multiple goroutines.
type Digest struct {
	h interface {
		io.Writer
		Sum(b []byte) []byte
	}
}

// NewDigest returns a fresh streaming SHA-1 accumulator.
func NewDigest() *Digest {
	return &Digest{h: sha1.New()} //nolint:gosec // see import comment
}

// Write feeds bytes into the accumulator. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	return d.h.Write(p)
}

// Sum finalizes the accumulator and returns the resulting Address. Sum
// may be called more than once; each call returns the digest of all
// bytes written so far.
func (d *Digest) Sum() Address {
	var a Address
	d.h.Sum(a[:0])
	return a
}

// ComputeAddress reads r to EOF through a fresh accumulator and returns
// its Address. It is safe to call ComputeAddress concurrently from
// multiple goroutines on distinct readers: each call creates its own
// accumulator and never shares hash state across goroutines.
func ComputeAddress(r io.Reader) (Address, error) {
	d := NewDigest()
	buf := make([]byte, digestBufferSize)
	if _, err := io.CopyBuffer(d, r, buf); err != nil {
		return Address{}, err
	}
	return d.Sum(), nil
}
