package compressors

import (
	"io"

	lz4 "github.com/pierrec/lz4/v4"
)

// LZ4Compressor implements the Compressor interface using the LZ4 frame
// format.
type LZ4Compressor struct{}

// lz4ReadCloser is a simple wrapper around lz4.Reader that implements
// io.ReadCloser.
type lz4ReadCloser struct {
	*lz4.Reader
}

func (lrc *lz4ReadCloser) Close() error {
	return nil
}

var _ Compressor = (*LZ4Compressor)(nil)
var _ io.ReadCloser = (*lz4ReadCloser)(nil)

func NewLz4Compressor() *LZ4Compressor {
	return &LZ4Compressor{}
}

func (c *LZ4Compressor) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}

func (c *LZ4Compressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return &lz4ReadCloser{Reader: lz4.NewReader(r)}, nil
}

func (c *LZ4Compressor) Ext() string {
	return ".lz4"
}
