package compressors

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCompressor implements the Compressor interface using gzip. It is the
// most portable of the supported encodings: the output opens anywhere.
type GzipCompressor struct{}

var _ Compressor = (*GzipCompressor)(nil)

func NewGzipCompressor() *GzipCompressor {
	return &GzipCompressor{}
}

func (c *GzipCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}

func (c *GzipCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func (c *GzipCompressor) Ext() string {
	return ".gz"
}
