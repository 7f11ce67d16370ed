package compression

import (
	"io"

	"github.com/andybalholm/brotli"
)

type BrotliCodec struct{}

// NewBrotliCodec creates a new Brotli codec using pure Go implementation
func NewBrotliCodec() Codec {
	return &BrotliCodec{}
}

// NewWriter maps the 1..9 scale onto Brotli qualities 1..11.
func (c *BrotliCodec) NewWriter(w io.Writer, level Level) (io.WriteCloser, error) {
	quality := brotli.DefaultCompression
	if level != LevelDefault {
		quality = level.clamp(0)
		if quality == int(LevelBest) {
			quality = brotli.BestCompression
		}
	}
	return brotli.NewWriterLevel(w, quality), nil
}

func (c *BrotliCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(r)), nil
}

func (c *BrotliCodec) Type() CompressionType {
	return TypeBrotli
}

func (c *BrotliCodec) Implementation() string {
	return "Pure Go (andybalholm/brotli)"
}
