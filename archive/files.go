package archive

import (
	"bytes"
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/mholt/archives"

	"github.com/codealchemist/codealchemist/common/credits"
)

// diskFiles maps src into archive entries rooted at its base name. Opening an
// entry reports its name and read volume to p.
func diskFiles(ctx context.Context, src string, p *progress) ([]archives.FileInfo, error) {
	files, err := archives.FilesFromDisk(ctx, nil, map[string]string{
		src: filepath.Base(src),
	})
	if err != nil {
		return nil, err
	}

	for i := range files {
		open := files[i].Open
		name := files[i].NameInArchive
		files[i].Open = func() (fs.File, error) {
			f, err := open()
			if err != nil {
				return nil, err
			}
			p.report(name)
			return &countingFile{File: f, p: p}, nil
		}
	}
	return files, nil
}

// creditsFile returns the CREDITS.txt entry added to ZIP, 7Z and RAR archives.
func creditsFile() archives.FileInfo {
	data := []byte(credits.Readme())
	info := memInfo{name: credits.ReadmeName, size: int64(len(data)), modTime: time.Now()}
	return archives.FileInfo{
		FileInfo:      info,
		NameInArchive: credits.ReadmeName,
		Open: func() (fs.File, error) {
			return &memFile{Reader: bytes.NewReader(data), info: info}, nil
		},
	}
}

type memInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (m memInfo) Name() string       { return m.name }
func (m memInfo) Size() int64        { return m.size }
func (m memInfo) Mode() fs.FileMode  { return 0644 }
func (m memInfo) ModTime() time.Time { return m.modTime }
func (m memInfo) IsDir() bool        { return false }
func (m memInfo) Sys() any           { return nil }

type memFile struct {
	*bytes.Reader
	info memInfo
}

func (m *memFile) Stat() (fs.FileInfo, error) { return m.info, nil }
func (m *memFile) Close() error               { return nil }

// entryName normalises an archive entry name to forward slashes.
func entryName(name string) string {
	return strings.TrimPrefix(filepath.ToSlash(name), "/")
}
