// Package compression provides unified stream codecs for single-stream formats.
package compression

import (
	"fmt"
	"io"
	"runtime"
	"sort"
)

type CompressionType int

const (
	TypeNone CompressionType = iota
	TypeGzip
	TypeBzip2
	TypeXZ
	TypeLZ4
	TypeZSTD
	TypeBrotli
)

// String returns the string representation of compression type
func (t CompressionType) String() string {
	switch t {
	case TypeGzip:
		return "GZIP"
	case TypeBzip2:
		return "BZIP2"
	case TypeXZ:
		return "XZ"
	case TypeLZ4:
		return "LZ4"
	case TypeZSTD:
		return "ZSTD"
	case TypeBrotli:
		return "Brotli"
	default:
		return "None"
	}
}

// Extension returns the file suffix, including the dot, used for the type.
func (t CompressionType) Extension() string {
	switch t {
	case TypeGzip:
		return ".gz"
	case TypeBzip2:
		return ".bz2"
	case TypeXZ:
		return ".xz"
	case TypeLZ4:
		return ".lz4"
	case TypeZSTD:
		return ".zst"
	case TypeBrotli:
		return ".br"
	default:
		return ""
	}
}

// Level selects a compression effort on a 1 (fastest) to 9 (best) scale.
// LevelDefault lets each codec pick its own default.
type Level int

const (
	LevelDefault Level = 0
	LevelFast    Level = 1
	LevelBest    Level = 9
)

// clamp returns l bounded to the 1..9 scale, or def when l is LevelDefault.
func (l Level) clamp(def int) int {
	switch {
	case l == LevelDefault:
		return def
	case l < LevelFast:
		return int(LevelFast)
	case l > LevelBest:
		return int(LevelBest)
	}
	return int(l)
}

// Codec is the interface for streaming compression and decompression
type Codec interface {
	NewWriter(w io.Writer, level Level) (io.WriteCloser, error)
	NewReader(r io.Reader) (io.ReadCloser, error)
	Type() CompressionType
	Implementation() string
}

type CodecManager struct {
	codecs map[CompressionType]Codec
}

// NewCodecManager creates a new codec manager with all available codecs
func NewCodecManager() *CodecManager {
	manager := &CodecManager{
		codecs: make(map[CompressionType]Codec),
	}

	manager.codecs[TypeGzip] = NewGzipCodec()
	manager.codecs[TypeBzip2] = NewBzip2Codec()
	manager.codecs[TypeXZ] = NewXZCodec()
	manager.codecs[TypeLZ4] = NewLZ4Codec()
	manager.codecs[TypeZSTD] = NewZSTDCodec()
	manager.codecs[TypeBrotli] = NewBrotliCodec()

	return manager
}

// GetCodec returns the codec for the specified type
func (m *CodecManager) GetCodec(compType CompressionType) (Codec, error) {
	codec, exists := m.codecs[compType]
	if !exists {
		return nil, fmt.Errorf("unsupported compression type: %s", compType.String())
	}
	return codec, nil
}

// GetSupportedTypes returns all supported compression types in ascending order
func (m *CodecManager) GetSupportedTypes() []CompressionType {
	types := make([]CompressionType, 0, len(m.codecs))
	for t := range m.codecs {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// GetImplementationInfo returns information about the implementation of each codec
func (m *CodecManager) GetImplementationInfo() map[CompressionType]string {
	info := make(map[CompressionType]string)
	for t, c := range m.codecs {
		info[t] = c.Implementation()
	}
	return info
}

// GetBuildInfo returns build information about compression support
func GetBuildInfo() map[string]interface{} {
	info := map[string]interface{}{
		"go_version": runtime.Version(),
		"goos":       runtime.GOOS,
		"goarch":     runtime.GOARCH,
	}

	info["cgo_enabled"] = cgoCodecs

	return info
}

// readCloser pairs a reader with a custom close function.
type readCloser struct {
	io.Reader
	close func() error
}

func (rc readCloser) Close() error {
	if rc.close == nil {
		return nil
	}
	return rc.close()
}
