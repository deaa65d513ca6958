package compressors

import (
	"io"
	"strings"
)

// Compressor wraps an output stream with a compression encoding and can
// reopen such a stream for reading.
type Compressor interface {
	NewWriter(w io.Writer) (io.WriteCloser, error)
	NewReader(r io.Reader) (io.ReadCloser, error)
	// Ext is the file extension that selects this encoding, including the dot.
	Ext() string
}

var registry = []Compressor{
	NewGzipCompressor(),
	NewSnappyCompressor(),
	NewLz4Compressor(),
	NewZstdCompressor(),
}

// ForPath returns the compressor selected by the path's file extension, or
// false when the path names an uncompressed file.
func ForPath(path string) (Compressor, bool) {
	for _, c := range registry {
		if strings.HasSuffix(path, c.Ext()) {
			return c, true
		}
	}
	return nil, false
}
