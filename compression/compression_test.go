package compression

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"
)

func TestCodecRoundTrip(t *testing.T) {
	manager := NewCodecManager()
	payload := []byte(strings.Repeat("CodeAlchemist compresses folders. ", 512))

	for _, typ := range manager.GetSupportedTypes() {
		codec, err := manager.GetCodec(typ)
		if err != nil {
			t.Fatalf("GetCodec(%s): %v", typ, err)
		}

		for _, level := range []Level{LevelDefault, LevelFast, LevelBest} {
			var buf bytes.Buffer
			w, err := codec.NewWriter(&buf, level)
			if err != nil {
				t.Fatalf("%s level %d: NewWriter: %v", typ, level, err)
			}
			if _, err := w.Write(payload); err != nil {
				t.Fatalf("%s level %d: Write: %v", typ, level, err)
			}
			if err := w.Close(); err != nil {
				t.Fatalf("%s level %d: Close: %v", typ, level, err)
			}
			if buf.Len() >= len(payload) {
				t.Errorf("%s level %d: output %d bytes is not smaller than input %d", typ, level, buf.Len(), len(payload))
			}

			r, err := codec.NewReader(&buf)
			if err != nil {
				t.Fatalf("%s level %d: NewReader: %v", typ, level, err)
			}
			got, err := io.ReadAll(r)
			r.Close()
			if err != nil {
				t.Fatalf("%s level %d: ReadAll: %v", typ, level, err)
			}
			if !bytes.Equal(got, payload) {
				t.Errorf("%s level %d: decoded payload differs", typ, level)
			}
		}
	}
}

func TestGetCodecUnsupported(t *testing.T) {
	if _, err := NewCodecManager().GetCodec(TypeNone); err == nil {
		t.Error("Expected error for TypeNone, got nil")
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		typ      CompressionType
		expected string
	}{
		{TypeGzip, ".gz"},
		{TypeBzip2, ".bz2"},
		{TypeXZ, ".xz"},
		{TypeLZ4, ".lz4"},
		{TypeZSTD, ".zst"},
		{TypeBrotli, ".br"},
		{TypeNone, ""},
	}

	for _, test := range tests {
		if got := test.typ.Extension(); got != test.expected {
			t.Errorf("%s.Extension() = %q, expected %q", test.typ, got, test.expected)
		}
	}
}

func TestEntropy(t *testing.T) {
	if got := Entropy(nil); got != 0 {
		t.Errorf("Entropy(nil) = %f, expected 0", got)
	}
	if got := Entropy(bytes.Repeat([]byte{'a'}, 100)); got != 0 {
		t.Errorf("Entropy(constant) = %f, expected 0", got)
	}
	if got := Entropy([]byte("abab")); math.Abs(got-1) > 1e-9 {
		t.Errorf("Entropy(abab) = %f, expected 1", got)
	}

	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	if got := Entropy(all); math.Abs(got-8) > 1e-9 {
		t.Errorf("Entropy(all bytes) = %f, expected 8", got)
	}
}

func TestBlockSize(t *testing.T) {
	tests := []struct {
		size     int64
		expected int
	}{
		{0, 8192},
		{1<<20 - 1, 8192},
		{1 << 20, 65536},
		{10<<20 - 1, 65536},
		{10 << 20, 131072},
	}

	for _, test := range tests {
		if got := BlockSize(test.size); got != test.expected {
			t.Errorf("BlockSize(%d) = %d, expected %d", test.size, got, test.expected)
		}
	}
}

func TestCopy(t *testing.T) {
	src := strings.NewReader(strings.Repeat("x", 100000))
	var dst bytes.Buffer
	n, err := Copy(&dst, struct{ io.Reader }{src}, 100000)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if n != 100000 || dst.Len() != 100000 {
		t.Errorf("Copy copied %d bytes (buffer %d), expected 100000", n, dst.Len())
	}
}

func TestMemoryPoolBuckets(t *testing.T) {
	pool := newPool()
	buf := pool.Get(5000)
	if len(buf) != 5000 || cap(buf) != 8192 {
		t.Errorf("Get(5000) returned len %d cap %d, expected 5000/8192", len(buf), cap(buf))
	}
	pool.Put(buf)

	big := pool.Get(3 << 20)
	if cap(big) != 3<<20 {
		t.Errorf("Get(3MiB) cap = %d, expected %d", cap(big), 3<<20)
	}
}
