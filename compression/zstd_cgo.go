//go:build cgo && cgo_compression

package compression

import (
	"io"

	"github.com/valyala/gozstd"
)

type ZSTDCodec struct{}

// NewZSTDCodec creates a new ZSTD codec using CGO implementation
func NewZSTDCodec() Codec {
	return &ZSTDCodec{}
}

// NewWriter maps the 1..9 scale onto zstd levels 1..19.
func (c *ZSTDCodec) NewWriter(w io.Writer, level Level) (io.WriteCloser, error) {
	zl := gozstd.DefaultCompressionLevel
	if level != LevelDefault {
		zl = level.clamp(0)*2 + 1
	}
	zw := gozstd.NewWriterLevel(w, zl)
	return releasingWriter{zw}, nil
}

type releasingWriter struct {
	*gozstd.Writer
}

func (w releasingWriter) Close() error {
	defer w.Writer.Release()
	return w.Writer.Close()
}

func (c *ZSTDCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr := gozstd.NewReader(r)
	return readCloser{
		Reader: zr,
		close: func() error {
			zr.Release()
			return nil
		},
	}, nil
}

func (c *ZSTDCodec) Type() CompressionType {
	return TypeZSTD
}

func (c *ZSTDCodec) Implementation() string {
	return "CGO (valyala/gozstd)"
}
