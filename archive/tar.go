package archive

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mholt/archives"

	"github.com/codealchemist/codealchemist/compression"
)

// writeTar tars src under its base name, through codec when one is given.
func writeTar(ctx context.Context, src, dst string, codec compression.Codec, level compression.Level, p *progress) error {
	files, err := diskFiles(ctx, src, p)
	if err != nil {
		return fmt.Errorf("failed to map input files: %w", err)
	}

	return createOutput(dst, func(out *os.File) error {
		var w io.Writer = out
		var cw io.WriteCloser
		if codec != nil {
			if cw, err = codec.NewWriter(out, level); err != nil {
				return fmt.Errorf("failed to init %s writer: %w", codec.Type(), err)
			}
			w = cw
		}

		if err := (archives.Tar{}).Archive(ctx, w, files); err != nil {
			if cw != nil {
				cw.Close()
			}
			return fmt.Errorf("failed to write tar: %w", err)
		}
		if cw != nil {
			if err := cw.Close(); err != nil {
				return fmt.Errorf("failed to finish %s stream: %w", codec.Type(), err)
			}
		}
		return nil
	})
}

// writeStream compresses the single file src straight through codec.
func writeStream(ctx context.Context, src, dst string, codec compression.Codec, level compression.Level, p *progress) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	return createOutput(dst, func(out *os.File) error {
		cw, err := codec.NewWriter(out, level)
		if err != nil {
			return fmt.Errorf("failed to init %s writer: %w", codec.Type(), err)
		}
		if _, err := compression.Copy(cw, p.reader(ctxReader{ctx, in}), p.total); err != nil {
			cw.Close()
			return fmt.Errorf("failed to compress: %w", err)
		}
		if err := cw.Close(); err != nil {
			return fmt.Errorf("failed to finish %s stream: %w", codec.Type(), err)
		}
		return nil
	})
}

// ctxReader stops reading once ctx is cancelled.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(b []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(b)
}
