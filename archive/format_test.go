package archive

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"1", FormatZIP},
		{"2", FormatRAR},
		{"3", Format7Z},
		{"9", FormatZSTD},
		{"10", FormatBrotli},
		{"zip", FormatZIP},
		{"ZIP", FormatZIP},
		{".7z", Format7Z},
		{"gz", FormatGZIP},
		{"bzip2", FormatBZIP2},
		{" xz ", FormatXZ},
		{"zst", FormatZSTD},
		{"br", FormatBrotli},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"0", "11", "arj", ""} {
		if _, err := ParseFormat(bad); !errors.Is(err, ErrUnknownFormat) {
			t.Errorf("ParseFormat(%q) error = %v, want ErrUnknownFormat", bad, err)
		}
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		format Format
		file   string
		folder string
	}{
		{FormatZIP, ".zip", ".zip"},
		{FormatRAR, ".rar", ".rar"},
		{Format7Z, ".7z", ".7z"},
		{FormatGZIP, ".gz", ".tar.gz"},
		{FormatBZIP2, ".bz2", ".tar.bz2"},
		{FormatXZ, ".xz", ".tar.xz"},
		{FormatTAR, ".tar", ".tar"},
		{FormatLZ4, ".lz4", ".tar.lz4"},
		{FormatZSTD, ".zst", ".tar.zst"},
		{FormatBrotli, ".br", ".tar.br"},
	}
	for _, tt := range tests {
		if got := tt.format.Extension(false); got != tt.file {
			t.Errorf("%s.Extension(false) = %s, want %s", tt.format, got, tt.file)
		}
		if got := tt.format.Extension(true); got != tt.folder {
			t.Errorf("%s.Extension(true) = %s, want %s", tt.format, got, tt.folder)
		}
	}
	if got := OutputName(FormatZIP, false); got != "CodeAlchemist.zip" {
		t.Errorf("OutputName = %s", got)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name   string
		want   Format
		tarred bool
	}{
		{"CodeAlchemist.zip", FormatZIP, false},
		{"CodeAlchemist.tar", FormatTAR, false},
		{"CodeAlchemist.tar.gz", FormatGZIP, true},
		{"CodeAlchemist.gz", FormatGZIP, false},
		{"x/CodeAlchemist.TAR.ZST", FormatZSTD, true},
		{"CodeAlchemist.br", FormatBrotli, false},
		{"CodeAlchemist.7z", Format7Z, false},
	}
	for _, tt := range tests {
		got, tarred, ok := DetectFormat(tt.name)
		if !ok || got != tt.want || tarred != tt.tarred {
			t.Errorf("DetectFormat(%q) = %s, %v, %v", tt.name, got, tarred, ok)
		}
	}
	if _, _, ok := DetectFormat("notes.txt"); ok {
		t.Error("DetectFormat(notes.txt) matched")
	}
}

func TestFormatFlags(t *testing.T) {
	for _, f := range Formats() {
		if f.SupportsPassword() != (f == FormatZIP) {
			t.Errorf("%s.SupportsPassword() = %v", f, f.SupportsPassword())
		}
		if f.External() != (f == FormatRAR || f == Format7Z) {
			t.Errorf("%s.External() = %v", f, f.External())
		}
	}
}
