package cas

import (
	"io"

	"github.com/klauspost/compress/flate"
)

// deflateEncoding implements Encoding using klauspost/compress's flate
// codec, the second reference encoding this store ships.
type deflateEncoding struct{}

// DeflateEncoding returns the reference "deflate" [Encoding].
func DeflateEncoding() Encoding { return deflateEncoding{} }

func (deflateEncoding) Name() string { return "deflate" }

func (deflateEncoding) NewEncoder(w io.Writer) (io.WriteCloser, error) {
	return flate.NewWriter(w, flate.DefaultCompression)
}

func (deflateEncoding) NewDecoder(r io.Reader) (io.ReadCloser, error) {
	return flate.NewReader(r), nil
}
