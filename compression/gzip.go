package compression

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

type GzipCodec struct{}

// NewGzipCodec creates a new gzip codec
func NewGzipCodec() Codec {
	return &GzipCodec{}
}

func (c *GzipCodec) NewWriter(w io.Writer, level Level) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(w, level.clamp(gzip.DefaultCompression))
}

func (c *GzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

func (c *GzipCodec) Type() CompressionType {
	return TypeGzip
}

func (c *GzipCodec) Implementation() string {
	return "Pure Go (klauspost/compress/gzip)"
}
