package ziputil

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	yekazip "github.com/yeka/zip"

	"github.com/codealchemist/codealchemist/common/file"
)

func open(t *testing.T, path string) *file.LocalFile {
	t.Helper()
	f, err := file.NewLocalFile(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func writePlain(t *testing.T, path, comment string, names ...string) {
	t.Helper()
	out, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()
	zw := zip.NewWriter(out)
	for _, n := range names {
		w, err := zw.Create(n)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte("content of " + n)); err != nil {
			t.Fatal(err)
		}
	}
	if comment != "" {
		if err := zw.SetComment(comment); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestListEntries(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		comment string
		entries []string
	}{
		{"plain", "", []string{"a.py", "dir/b.go"}},
		{"with comment", "made by CodeAlchemist", []string{"CREDITS.txt", "x.rs", "y.rs"}},
		{"empty", "", nil},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, string(rune('a'+i))+".zip")
			writePlain(t, path, tt.comment, tt.entries...)

			entries, err := ListEntries(open(t, path))
			if err != nil {
				t.Fatalf("ListEntries() error = %v", err)
			}
			if len(entries) != len(tt.entries) {
				t.Fatalf("got %d entries, want %d", len(entries), len(tt.entries))
			}
			for j, e := range entries {
				if e.Name != tt.entries[j] {
					t.Errorf("entry %d = %s, want %s", j, e.Name, tt.entries[j])
				}
				if e.Encrypted() {
					t.Errorf("entry %s reported encrypted", e.Name)
				}
				if want := uint64(len("content of " + e.Name)); e.UncompressedSize != want {
					t.Errorf("entry %s size = %d, want %d", e.Name, e.UncompressedSize, want)
				}
			}
			enc, err := IsEncrypted(open(t, path))
			if err != nil || enc {
				t.Errorf("IsEncrypted() = %v, %v", enc, err)
			}
		})
	}
}

func TestIsEncrypted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.zip")
	out, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := yekazip.NewWriter(out)
	w, err := zw.Encrypt("main.py", "hunter2", yekazip.AES256Encryption)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("print(1)\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	out.Close()

	enc, err := IsEncrypted(open(t, path))
	if err != nil {
		t.Fatalf("IsEncrypted() error = %v", err)
	}
	if !enc {
		t.Error("AES archive not reported as encrypted")
	}
}

func TestNotZip(t *testing.T) {
	dir := t.TempDir()
	tests := map[string][]byte{
		"tiny.bin":  []byte("PK"),
		"plain.txt": []byte("this is certainly not a zip archive, just some text\n"),
	}
	for name, data := range tests {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := ListEntries(open(t, path)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}

	path := filepath.Join(dir, "plain.txt")
	if _, err := ListEntries(open(t, path)); !errors.Is(err, ErrNotZip) {
		t.Errorf("plain.txt error = %v, want ErrNotZip", err)
	}
}
