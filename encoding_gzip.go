package cas

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// gzipEncoding implements Encoding using klauspost/compress's drop-in
// gzip codec, one of the two reference encodings this store ships.
type gzipEncoding struct{}

// GzipEncoding returns the reference "gzip" [Encoding].
func GzipEncoding() Encoding { return gzipEncoding{} }

func (gzipEncoding) Name() string { return "gzip" }

func (gzipEncoding) NewEncoder(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}

func (gzipEncoding) NewDecoder(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}
