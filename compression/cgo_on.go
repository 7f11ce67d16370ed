//go:build cgo && cgo_compression

package compression

const cgoCodecs = true
