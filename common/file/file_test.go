package file

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLocalFileRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	write(t, path, "0123456789")

	f, err := NewLocalFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if f.Size() != 10 {
		t.Fatalf("Size() = %d", f.Size())
	}
	tests := []struct {
		offset int64
		size   int
		want   string
	}{
		{0, 4, "0123"},
		{6, 4, "6789"},
		{8, 10, "89"},
		{10, 1, ""},
		{3, 0, ""},
	}
	for _, tt := range tests {
		got, err := f.Read(tt.offset, tt.size)
		if err != nil {
			t.Errorf("Read(%d, %d) error = %v", tt.offset, tt.size, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("Read(%d, %d) = %q, want %q", tt.offset, tt.size, got, tt.want)
		}
	}
}

func TestNewLocalFileRejectsDirectory(t *testing.T) {
	if _, err := NewLocalFile(t.TempDir()); err == nil {
		t.Error("expected an error for a directory")
	}
	if _, err := NewLocalFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "b.go"), "package b\n")
	write(t, filepath.Join(dir, "a", "x.py"), "x = 1\n")
	write(t, filepath.Join(dir, "a", "deep", "y.rs"), "fn main() {}\n")

	files, total, err := Collect(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a", "deep", "y.rs"),
		filepath.Join(dir, "a", "x.py"),
		filepath.Join(dir, "b.go"),
	}
	if len(files) != len(want) {
		t.Fatalf("Collect() = %v", files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %s, want %s", i, files[i], want[i])
		}
	}
	if total != int64(len("package b\n")+len("x = 1\n")+len("fn main() {}\n")) {
		t.Errorf("total = %d", total)
	}

	single, size, err := Collect(want[2])
	if err != nil || len(single) != 1 || size != 10 {
		t.Errorf("Collect(file) = %v, %d, %v", single, size, err)
	}
	if _, _, err := Collect(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected an error for a missing path")
	}
}

func TestOutputDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "project")
	got, err := OutputDir(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != dir {
		t.Errorf("OutputDir() = %s, want %s", got, dir)
	}
	got, err = OutputDir(path + string(filepath.Separator))
	if err != nil || got != dir {
		t.Errorf("OutputDir(trailing slash) = %s, %v", got, err)
	}
}

func TestSample(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "a.txt"), "")
	write(t, filepath.Join(dir, "b.txt"), "hello world")

	got, err := Sample(dir, 5)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("Sample() = %q", got)
	}
	if !IsDir(dir) || IsDir(filepath.Join(dir, "b.txt")) {
		t.Error("IsDir() mismatch")
	}
}
