//go:build cgo && cgo_compression

package compression

import (
	"io"

	goxz "github.com/spencercw/go-xz"
)

type XZCodec struct{}

// NewXZCodec creates a new XZ codec that decodes through liblzma
func NewXZCodec() Codec {
	return &XZCodec{}
}

func (c *XZCodec) NewWriter(w io.Writer, level Level) (io.WriteCloser, error) {
	return newXZWriter(w, level)
}

func (c *XZCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	reader := goxz.NewDecompressionReader(r)
	rd := &reader
	return readCloser{
		Reader: rd,
		close: func() error {
			rd.Close()
			return nil
		},
	}, nil
}

func (c *XZCodec) Type() CompressionType {
	return TypeXZ
}

func (c *XZCodec) Implementation() string {
	return "CGO (spencercw/go-xz) decode, Pure Go (ulikunitz/xz) encode"
}
