package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"

	"github.com/codealchemist/codealchemist/common/file"
	"github.com/codealchemist/codealchemist/common/ziputil"
	"github.com/codealchemist/codealchemist/compression"
)

// VerifyResult summarises a successful Verify.
type VerifyResult struct {
	Path      string `json:"path"`
	Format    string `json:"format"`
	Entries   int    `json:"entries"`
	Bytes     int64  `json:"bytes"`
	Encrypted bool   `json:"encrypted"`
}

// DetectFormat infers the archive format and whether it wraps a tar from the
// file name.
func DetectFormat(path string) (f Format, tarred bool, ok bool) {
	name := strings.ToLower(filepath.Base(path))
	for _, candidate := range formats {
		if candidate.Compression() == compression.TypeNone {
			if strings.HasSuffix(name, candidate.Extension(false)) {
				return candidate, false, true
			}
			continue
		}
		if strings.HasSuffix(name, candidate.Extension(true)) {
			return candidate, true, true
		}
		if strings.HasSuffix(name, candidate.Extension(false)) {
			return candidate, false, true
		}
	}
	return 0, false, false
}

// Verify reads every entry of the archive at path to the end, which checks
// its structure and checksums. password is only consulted for encrypted zips.
func Verify(ctx context.Context, path, password string) (*VerifyResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}
	defer f.Close()

	res := &VerifyResult{Path: path}
	if err := verifyFile(ctx, f, path, password, res); err != nil {
		return nil, err
	}
	return res, nil
}

func verifyFile(ctx context.Context, f *os.File, path, password string, res *VerifyResult) error {
	format, tarred, known := DetectFormat(path)
	if !known {
		return verifyIdentified(ctx, f, res)
	}
	res.Format = format.String()

	switch {
	case format == FormatZIP:
		encrypted, err := zipEncrypted(path)
		if err != nil {
			return err
		}
		if encrypted {
			res.Encrypted = true
			return verifyEncryptedZip(ctx, path, password, res)
		}
		return extractAll(ctx, archives.Zip{}, f, res)
	case format == Format7Z:
		return extractAll(ctx, archives.SevenZip{}, f, res)
	case format == FormatRAR:
		return extractAll(ctx, archives.Rar{}, f, res)
	case format == FormatTAR:
		return extractAll(ctx, archives.Tar{}, f, res)
	}

	codec, err := codecFor(format)
	if err != nil {
		return err
	}
	r, err := codec.NewReader(f)
	if err != nil {
		return fmt.Errorf("failed to open %s stream: %w", codec.Type(), err)
	}
	defer r.Close()

	if tarred {
		return extractAll(ctx, archives.Tar{}, r, res)
	}
	n, err := io.Copy(io.Discard, ctxReader{ctx, r})
	if err != nil {
		return fmt.Errorf("failed to decompress: %w", err)
	}
	res.Entries = 1
	res.Bytes = n
	return nil
}

func zipEncrypted(path string) (bool, error) {
	lf, err := file.NewLocalFile(path)
	if err != nil {
		return false, err
	}
	defer lf.Close()

	encrypted, err := ziputil.IsEncrypted(lf)
	if err != nil {
		return false, fmt.Errorf("failed to read zip directory: %w", err)
	}
	return encrypted, nil
}

// verifyIdentified handles files whose name gives no hint by sniffing them.
func verifyIdentified(ctx context.Context, f *os.File, res *VerifyResult) error {
	format, _, err := archives.Identify(ctx, filepath.Base(f.Name()), f)
	if err != nil {
		if errors.Is(err, archives.NoMatch) {
			return fmt.Errorf("%w: %s", ErrUnrecognizedArchive, f.Name())
		}
		return err
	}
	res.Format = strings.ToUpper(strings.TrimPrefix(format.Extension(), "."))

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}

	switch fm := format.(type) {
	case archives.Extractor:
		return extractAll(ctx, fm, f, res)
	case archives.Decompressor:
		r, err := fm.OpenReader(f)
		if err != nil {
			return err
		}
		defer r.Close()
		n, err := io.Copy(io.Discard, ctxReader{ctx, r})
		if err != nil {
			return fmt.Errorf("failed to decompress: %w", err)
		}
		res.Entries = 1
		res.Bytes = n
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnrecognizedArchive, f.Name())
}

func extractAll(ctx context.Context, ex archives.Extractor, r io.Reader, res *VerifyResult) error {
	err := ex.Extract(ctx, r, func(ctx context.Context, fi archives.FileInfo) error {
		if fi.IsDir() || !fi.Mode().IsRegular() {
			return nil
		}
		rc, err := fi.Open()
		if err != nil {
			return err
		}
		defer rc.Close()

		n, err := io.Copy(io.Discard, rc)
		if err != nil {
			return fmt.Errorf("%s: %w", fi.NameInArchive, err)
		}
		res.Entries++
		res.Bytes += n
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to read archive: %w", err)
	}
	return nil
}
