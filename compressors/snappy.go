package compressors

import (
	"io"

	"github.com/golang/snappy"
)

// SnappyCompressor implements the Compressor interface using the snappy
// framing format.
type SnappyCompressor struct{}

// snappyReadCloser is a simple wrapper around snappy.Reader that implements
// io.ReadCloser. The reader holds no resources of its own, so Close is a
// no-op.
type snappyReadCloser struct {
	*snappy.Reader
}

func (src *snappyReadCloser) Close() error {
	return nil
}

var _ Compressor = (*SnappyCompressor)(nil)
var _ io.ReadCloser = (*snappyReadCloser)(nil)

func NewSnappyCompressor() *SnappyCompressor {
	return &SnappyCompressor{}
}

func (c *SnappyCompressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return snappy.NewBufferedWriter(w), nil
}

func (c *SnappyCompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return &snappyReadCloser{Reader: snappy.NewReader(r)}, nil
}

func (c *SnappyCompressor) Ext() string {
	return ".sz"
}
