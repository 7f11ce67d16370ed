package compression

import (
	"io"

	"github.com/dsnet/compress/bzip2"
)

type Bzip2Codec struct{}

// NewBzip2Codec creates a new bzip2 codec
func NewBzip2Codec() Codec {
	return &Bzip2Codec{}
}

func (c *Bzip2Codec) NewWriter(w io.Writer, level Level) (io.WriteCloser, error) {
	return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: level.clamp(bzip2.DefaultCompression)})
}

func (c *Bzip2Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return bzip2.NewReader(r, nil)
}

func (c *Bzip2Codec) Type() CompressionType {
	return TypeBzip2
}

func (c *Bzip2Codec) Implementation() string {
	return "Pure Go (dsnet/compress/bzip2)"
}
