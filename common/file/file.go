// Package file provides random-access readers and input discovery for local paths.
package file

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Reader interface for reading archives and inputs at arbitrary offsets
type Reader interface {
	io.ReaderAt
	io.Closer
	Size() int64
	Read(offset int64, size int) ([]byte, error)
}

// LocalFile implements Reader interface for local files
type LocalFile struct {
	file *os.File
	size int64
}

// NewLocalFile opens a local file for reading.
// The file must exist and be readable.
// Returns a LocalFile that implements the Reader interface.
func NewLocalFile(path string) (*LocalFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if stat.IsDir() {
		file.Close()
		return nil, fmt.Errorf("%s is a directory", path)
	}

	return &LocalFile{
		file: file,
		size: stat.Size(),
	}, nil
}

func (f *LocalFile) ReadAt(p []byte, off int64) (n int, err error) {
	return f.file.ReadAt(p, off)
}

func (f *LocalFile) Close() error {
	return f.file.Close()
}

func (f *LocalFile) Size() int64 {
	return f.size
}

func (f *LocalFile) Read(offset int64, size int) ([]byte, error) {
	if offset >= f.size || size <= 0 {
		return []byte{}, nil
	}
	if rem := f.size - offset; int64(size) > rem {
		size = int(rem)
	}
	data := make([]byte, size)
	n, err := f.file.ReadAt(data, offset)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return data[:n], nil
}

// Collect returns every regular file below root (or root itself when it is a
// file) in lexical order, together with their combined size.
func Collect(root string) ([]string, int64, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, 0, err
	}
	if !info.IsDir() {
		return []string{root}, info.Size(), nil
	}

	var (
		files []string
		total int64
	)
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		files = append(files, p)
		total += fi.Size()
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	sort.Strings(files)
	return files, total, nil
}

// OutputDir returns the directory archives for path are written to: the
// parent of path, or the working directory when path has no usable parent.
func OutputDir(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", err
	}
	parent := filepath.Dir(abs)
	if parent == "" || parent == abs {
		return os.Getwd()
	}
	return parent, nil
}

// Sample reads up to n bytes from the start of path. For directories the
// first collected file is sampled.
func Sample(path string, n int) ([]byte, error) {
	files, _, err := Collect(path)
	if err != nil {
		return nil, err
	}
	for _, p := range files {
		f, err := NewLocalFile(p)
		if err != nil {
			return nil, err
		}
		data, err := f.Read(0, n)
		f.Close()
		if err != nil {
			return nil, err
		}
		if len(data) > 0 {
			return data, nil
		}
	}
	return []byte{}, nil
}

// IsDir reports whether path names an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
