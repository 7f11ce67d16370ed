//go:build !cgo || !cgo_compression

package compression

import (
	"io"

	"github.com/ulikunitz/xz"
)

type XZCodec struct{}

// NewXZCodec creates a new XZ codec using pure Go implementation
func NewXZCodec() Codec {
	return &XZCodec{}
}

func (c *XZCodec) NewWriter(w io.Writer, level Level) (io.WriteCloser, error) {
	return newXZWriter(w, level)
}

func (c *XZCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	reader, err := xz.NewReader(r)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(reader), nil
}

func (c *XZCodec) Type() CompressionType {
	return TypeXZ
}

func (c *XZCodec) Implementation() string {
	return "Pure Go (ulikunitz/xz)"
}
