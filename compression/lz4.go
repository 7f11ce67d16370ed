package compression

import (
	"io"
	"runtime"

	"github.com/pierrec/lz4/v4"
)

var lz4Levels = [...]lz4.CompressionLevel{
	lz4.Fast, lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4,
	lz4.Level5, lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
}

type LZ4Codec struct{}

// NewLZ4Codec creates a new LZ4 frame codec
func NewLZ4Codec() Codec {
	return &LZ4Codec{}
}

func (c *LZ4Codec) NewWriter(w io.Writer, level Level) (io.WriteCloser, error) {
	zw := lz4.NewWriter(w)
	options := []lz4.Option{
		lz4.CompressionLevelOption(lz4Levels[level.clamp(0)]),
		lz4.ConcurrencyOption(runtime.NumCPU()),
	}
	if err := zw.Apply(options...); err != nil {
		return nil, err
	}
	return zw, nil
}

func (c *LZ4Codec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

func (c *LZ4Codec) Type() CompressionType {
	return TypeLZ4
}

func (c *LZ4Codec) Implementation() string {
	return "Pure Go (pierrec/lz4/v4)"
}
