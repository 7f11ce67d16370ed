//go:build !cgo || !cgo_compression

package compression

import (
	"io"
	"runtime"

	"github.com/klauspost/compress/zstd"
)

type ZSTDCodec struct{}

// NewZSTDCodec creates a new ZSTD codec using pure Go implementation
func NewZSTDCodec() Codec {
	return &ZSTDCodec{}
}

// NewWriter maps the 1..9 scale onto zstd levels 1..19.
func (c *ZSTDCodec) NewWriter(w io.Writer, level Level) (io.WriteCloser, error) {
	opts := []zstd.EOption{zstd.WithEncoderConcurrency(runtime.GOMAXPROCS(0))}
	if level != LevelDefault {
		opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level.clamp(0)*2+1)))
	}
	enc, err := zstd.NewWriter(w, opts...)
	if err != nil {
		return nil, err
	}
	return enc, nil
}

func (c *ZSTDCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(0))
	if err != nil {
		decoder, err = zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
	}
	return decoder.IOReadCloser(), nil
}

func (c *ZSTDCodec) Type() CompressionType {
	return TypeZSTD
}

func (c *ZSTDCodec) Implementation() string {
	return "Pure Go (klauspost/compress/zstd)"
}
