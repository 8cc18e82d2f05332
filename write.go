package cas

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/blobstore/cas/internal/layout"
)

// writeBufferSize is the chunk size used by the double-buffered
// hash-and-write loop.
const writeBufferSize = 4096

// Write streams src to the store, computing its Address as it writes.
// Identical content written any number of times — concurrently or
// sequentially — always yields the same Address and leaves the store in
// the same on-disk state a single write would have produced.
//
// If encodings are given, Write additionally materializes one encoded
// sibling per [Encoding] after the base object is placed; a failure
// creating a sibling does not invalidate the base object or the returned
// Address: Write then returns the Address together with that error.
//
// ctx is observed only while the streaming loop is reading from src and
// writing to the temp file; once the loop completes, the final rename
// and any sibling encoding are not cancellable. If ctx is cancelled
// during the loop, Write abandons its temp file and returns an error
// wrapping [ErrCancelled]; no state visible through the Store's public
// operations changes.
func (s *Store) Write(ctx context.Context, src io.Reader, encodings ...Encoding) (Address, error) {
	if src == nil {
		return Address{}, fmt.Errorf("%w: nil source reader", ErrInvalidArgument)
	}
	for _, enc := range encodings {
		if enc == nil || !layout.ValidEncodingName(enc.Name()) {
			return Address{}, fmt.Errorf("%w: invalid encoding", ErrInvalidArgument)
		}
	}

	tmp, err := os.CreateTemp(s.tmpDir, "write-*")
	if err != nil {
		return Address{}, err
	}
	tmpPath := tmp.Name()
	addr, err := streamToTemp(ctx, src, tmp)
	closeErr := tmp.Close()
	if err != nil {
		_ = os.Remove(tmpPath)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Address{}, fmt.Errorf("%w: %v", ErrCancelled, err)
		}
		return Address{}, err
	}
	if closeErr != nil {
		_ = os.Remove(tmpPath)
		return Address{}, closeErr
	}

	contentPath, err := s.place(tmpPath, addr)
	if err != nil {
		return Address{}, err
	}

	for _, enc := range encodings {
		if err := s.materializeSibling(contentPath, addr, enc); err != nil {
			return addr, err
		}
	}

	return addr, nil
}

// streamToTemp runs a one-slot producer/consumer pipeline between "read
// from src" and "write to temp + feed digest", overlapping the read of
// chunk i+1 with the write of chunk i. The digest observes bytes in
// source order exactly once.
//
// Ownership of each of the two buffers is handed between the goroutines
// through the free channel: the producer must acquire a buffer from
// free before reading into it, and the consumer only returns a buffer
// to free once it has finished writing and hashing its contents. This
// is what makes the scheme safe — a buffered data channel alone is not
// enough, since a channel send only needs the receiver to have dequeued
// the value, not to have finished using it, which would let the
// producer start overwriting a buffer the consumer is still reading.
func streamToTemp(ctx context.Context, src io.Reader, tmp *os.File) (Address, error) {
	type chunk struct {
		buf []byte
		n   int
	}
	bufA := make([]byte, writeBufferSize)
	bufB := make([]byte, writeBufferSize)
	free := make(chan []byte, 2)
	free <- bufA
	free <- bufB
	data := make(chan chunk)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(data)
		for {
			var buf []byte
			select {
			case buf = <-free:
			case <-gctx.Done():
				return gctx.Err()
			}
			n, err := src.Read(buf)
			if n > 0 {
				select {
				case data <- chunk{buf, n}:
				case <-gctx.Done():
					return gctx.Err()
				}
			} else {
				free <- buf
			}
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}
	})

	d := NewDigest()
	g.Go(func() error {
		for c := range data {
			if _, err := tmp.Write(c.buf[:c.n]); err != nil {
				return err
			}
			_, _ = d.Write(c.buf[:c.n]) // Digest.Write never fails
			free <- c.buf
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Address{}, err
	}
	return d.Sum(), nil
}

// place performs the atomic placement step under the store's placement
// lock: if the content already exists, the temp file is discarded
// (idempotent write); otherwise the subdirectory is created if absent,
// the temp file is renamed into place, and the result is marked
// read-only.
func (s *Store) place(tmpPath string, addr Address) (string, error) {
	hexAddr := addr.String()
	contentPath := layout.BasePath(s.root, hexAddr)

	s.placement.lock()
	defer s.placement.unlock()

	if _, err := os.Stat(contentPath); err == nil {
		_ = os.Remove(tmpPath)
		return contentPath, nil
	} else if !os.IsNotExist(err) {
		_ = os.Remove(tmpPath)
		return "", err
	}

	if err := os.MkdirAll(layout.Subdir(s.root, hexAddr), s.dirPerm); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}

	if err := os.Rename(tmpPath, contentPath); err != nil {
		// Another writer may have won the race between our Stat and
		// our Rename; treat "target already exists" as success rather
		// than surfacing a spurious error.
		if _, statErr := os.Stat(contentPath); statErr == nil {
			_ = os.Remove(tmpPath)
			return contentPath, nil
		}
		_ = os.Remove(tmpPath)
		return "", err
	}

	// Set read-only immediately after rename, and tolerate it already
	// being set: a crash between rename and chmod in a prior writer
	// leaves the object present but writable, and the next successful
	// write of the same content must not treat that as an error.
	if err := os.Chmod(contentPath, defaultFilePerm); err != nil && !os.IsNotExist(err) {
		return "", err
	}

	return contentPath, nil
}

// materializeSibling produces a single encoded sibling of contentPath:
// skip if the sibling already exists, otherwise stream the base object
// through the encoding's encoder into a fresh temp file and rename it
// into place read-only.
func (s *Store) materializeSibling(contentPath string, addr Address, enc Encoding) error {
	siblingPath := layout.SiblingPath(s.root, addr.String(), enc.Name())
	if _, err := os.Stat(siblingPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	src, err := os.Open(contentPath)
	if err != nil {
		return err
	}
	defer src.Close()

	tmp, err := os.CreateTemp(s.tmpDir, "sibling-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	encoder, err := enc.NewEncoder(tmp)
	if err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}

	_, copyErr := io.Copy(encoder, src)
	closeEncErr := encoder.Close()
	closeTmpErr := tmp.Close()
	if copyErr != nil {
		_ = os.Remove(tmpPath)
		return copyErr
	}
	if closeEncErr != nil {
		_ = os.Remove(tmpPath)
		return closeEncErr
	}
	if closeTmpErr != nil {
		_ = os.Remove(tmpPath)
		return closeTmpErr
	}

	if err := os.Rename(tmpPath, siblingPath); err != nil {
		if _, statErr := os.Stat(siblingPath); statErr == nil {
			_ = os.Remove(tmpPath)
			return nil
		}
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(siblingPath, defaultFilePerm); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
