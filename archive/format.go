package archive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/codealchemist/codealchemist/compression"
)

// Format is an archive format as numbered in the compression menu.
type Format int

const (
	FormatZIP Format = iota + 1
	FormatRAR
	Format7Z
	FormatGZIP
	FormatBZIP2
	FormatXZ
	FormatTAR
	FormatLZ4
	FormatZSTD
	FormatBrotli
)

var formats = []Format{
	FormatZIP, FormatRAR, Format7Z, FormatGZIP, FormatBZIP2,
	FormatXZ, FormatTAR, FormatLZ4, FormatZSTD, FormatBrotli,
}

// Formats returns every supported format in menu order.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

func (f Format) String() string {
	switch f {
	case FormatZIP:
		return "ZIP"
	case FormatRAR:
		return "RAR"
	case Format7Z:
		return "7Z"
	case FormatGZIP:
		return "GZIP"
	case FormatBZIP2:
		return "BZIP2"
	case FormatXZ:
		return "XZ"
	case FormatTAR:
		return "TAR"
	case FormatLZ4:
		return "LZ4"
	case FormatZSTD:
		return "ZSTD"
	case FormatBrotli:
		return "BROTLI"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	return f >= FormatZIP && f <= FormatBrotli
}

// Compression returns the stream codec used by single-stream formats, or
// compression.TypeNone for container formats.
func (f Format) Compression() compression.CompressionType {
	switch f {
	case FormatGZIP:
		return compression.TypeGzip
	case FormatBZIP2:
		return compression.TypeBzip2
	case FormatXZ:
		return compression.TypeXZ
	case FormatLZ4:
		return compression.TypeLZ4
	case FormatZSTD:
		return compression.TypeZSTD
	case FormatBrotli:
		return compression.TypeBrotli
	default:
		return compression.TypeNone
	}
}

// Extension returns the output suffix. Stream formats wrap folders in a tar
// first, so their suffix depends on whether the input is a directory.
func (f Format) Extension(isDir bool) string {
	switch f {
	case FormatZIP:
		return ".zip"
	case FormatRAR:
		return ".rar"
	case Format7Z:
		return ".7z"
	case FormatTAR:
		return ".tar"
	}
	ext := f.Compression().Extension()
	if isDir {
		return ".tar" + ext
	}
	return ext
}

// SupportsPassword reports whether the format can be encrypted.
func (f Format) SupportsPassword() bool {
	return f == FormatZIP
}

// External reports whether the format is produced by an external program.
func (f Format) External() bool {
	return f == FormatRAR || f == Format7Z
}

// ParseFormat accepts a menu number, a format name or a file suffix.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		f := Format(n)
		if f.Valid() {
			return f, nil
		}
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, s)
	}

	key := strings.TrimPrefix(strings.ToLower(s), ".")
	switch key {
	case "zip":
		return FormatZIP, nil
	case "rar":
		return FormatRAR, nil
	case "7z", "7zip", "sevenzip":
		return Format7Z, nil
	case "gzip", "gz":
		return FormatGZIP, nil
	case "bzip2", "bz2":
		return FormatBZIP2, nil
	case "xz":
		return FormatXZ, nil
	case "tar":
		return FormatTAR, nil
	case "lz4":
		return FormatLZ4, nil
	case "zstd", "zst":
		return FormatZSTD, nil
	case "brotli", "br":
		return FormatBrotli, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, s)
}
