package archive

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mholt/archives"
	yekazip "github.com/yeka/zip"

	"github.com/codealchemist/codealchemist/compression"
)

// writeZip stores src deflated, with a CREDITS.txt entry first.
func writeZip(ctx context.Context, src, dst string, p *progress) error {
	files, err := diskFiles(ctx, src, p)
	if err != nil {
		return fmt.Errorf("failed to map input files: %w", err)
	}
	files = append([]archives.FileInfo{creditsFile()}, files...)

	format := archives.Zip{Compression: zip.Deflate}
	return createOutput(dst, func(out *os.File) error {
		if err := format.Archive(ctx, out, files); err != nil {
			return fmt.Errorf("failed to write zip: %w", err)
		}
		return nil
	})
}

// writeEncryptedZip stores every regular file as a WinZip AES-256 entry.
// Directories are implied by entry names.
func writeEncryptedZip(ctx context.Context, src, dst, password string, p *progress) error {
	files, err := diskFiles(ctx, src, p)
	if err != nil {
		return fmt.Errorf("failed to map input files: %w", err)
	}
	files = append([]archives.FileInfo{creditsFile()}, files...)

	return createOutput(dst, func(out *os.File) error {
		zw := yekazip.NewWriter(out)
		for _, fi := range files {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !fi.Mode().IsRegular() {
				continue
			}
			if err := addEncrypted(zw, fi, password); err != nil {
				return fmt.Errorf("failed to add %s: %w", fi.NameInArchive, err)
			}
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("failed to finish zip: %w", err)
		}
		return nil
	})
}

func addEncrypted(zw *yekazip.Writer, fi archives.FileInfo, password string) error {
	w, err := zw.Encrypt(entryName(fi.NameInArchive), password, yekazip.AES256Encryption)
	if err != nil {
		return err
	}
	f, err := fi.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = compression.Copy(w, f, fi.Size())
	return err
}

// verifyEncryptedZip reads every entry of an AES zip with password.
func verifyEncryptedZip(ctx context.Context, path, password string, res *VerifyResult) error {
	if password == "" {
		return ErrPasswordRequired
	}

	r, err := yekazip.OpenReader(path)
	if err != nil {
		return fmt.Errorf("failed to open zip: %w", err)
	}
	defer r.Close()

	for _, f := range r.File {
		if err := ctx.Err(); err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			continue
		}
		if f.IsEncrypted() {
			f.SetPassword(password)
		}
		n, err := readEntry(f.Open)
		if err != nil {
			if f.IsEncrypted() {
				return fmt.Errorf("%w: %s: %v", ErrPassword, f.Name, err)
			}
			return fmt.Errorf("failed to read %s: %w", f.Name, err)
		}
		res.Entries++
		res.Bytes += n
	}
	return nil
}

func readEntry(open func() (io.ReadCloser, error)) (int64, error) {
	rc, err := open()
	if err != nil {
		return 0, err
	}
	defer rc.Close()
	return io.Copy(io.Discard, rc)
}
