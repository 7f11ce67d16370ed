package compression

import (
	"io"

	"github.com/ulikunitz/xz"
)

// newXZWriter scales the LZMA2 dictionary with the requested level.
func newXZWriter(w io.Writer, level Level) (io.WriteCloser, error) {
	cfg := xz.WriterConfig{}
	switch l := level.clamp(0); {
	case l == 0:
		// library default
	case l <= 3:
		cfg.DictCap = 1 << 20
	case l <= 6:
		cfg.DictCap = 8 << 20
	default:
		cfg.DictCap = 64 << 20
	}
	xw, err := cfg.NewWriter(w)
	if err != nil {
		return nil, err
	}
	return xw, nil
}
