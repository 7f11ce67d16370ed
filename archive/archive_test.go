package archive

import (
	stdzip "archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codealchemist/codealchemist/common/credits"
	"github.com/codealchemist/codealchemist/compression"
)

func writeTree(t *testing.T) (root, single string) {
	t.Helper()
	base := t.TempDir()

	single = filepath.Join(base, "main.py")
	if err := os.WriteFile(single, []byte(strings.Repeat("print('hello')\n", 200)), 0644); err != nil {
		t.Fatal(err)
	}

	root = filepath.Join(base, "project")
	files := map[string]string{
		"a.go":         "package main\n",
		"lib/b.js":     strings.Repeat("console.log(1);\n", 50),
		"lib/deep/c.c": "int main(void) { return 0; }\n",
	}
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root, single
}

func TestCompressAndVerifyPureFormats(t *testing.T) {
	pure := []Format{FormatZIP, FormatGZIP, FormatBZIP2, FormatXZ, FormatTAR, FormatLZ4, FormatZSTD, FormatBrotli}

	for _, f := range pure {
		for _, dir := range []bool{false, true} {
			name := f.String() + "/file"
			if dir {
				name = f.String() + "/folder"
			}
			t.Run(name, func(t *testing.T) {
				root, single := writeTree(t)
				src := single
				if dir {
					src = root
				}

				var updates int
				res, err := Compress(context.Background(), src, Options{
					Format:   f,
					Progress: func(ProgressInfo) { updates++ },
				})
				if err != nil {
					t.Fatalf("Compress() error = %v", err)
				}

				wantName := "CodeAlchemist" + f.Extension(dir)
				if filepath.Base(res.OutputPath) != wantName {
					t.Errorf("output name = %s, want %s", filepath.Base(res.OutputPath), wantName)
				}
				if filepath.Dir(res.OutputPath) != filepath.Dir(src) {
					t.Errorf("output dir = %s, want %s", filepath.Dir(res.OutputPath), filepath.Dir(src))
				}
				if res.OutputBytes == 0 {
					t.Error("empty archive")
				}
				if updates == 0 {
					t.Error("no progress reported")
				}

				v, err := Verify(context.Background(), res.OutputPath, "")
				if err != nil {
					t.Fatalf("Verify() error = %v", err)
				}
				if v.Format != f.String() {
					t.Errorf("Verify format = %s, want %s", v.Format, f)
				}
				if v.Entries == 0 {
					t.Error("Verify found no entries")
				}
			})
		}
	}
}

func TestCompressFileCounts(t *testing.T) {
	root, _ := writeTree(t)
	res, err := Compress(context.Background(), root, Options{Format: FormatTAR})
	if err != nil {
		t.Fatal(err)
	}
	if res.Files != 3 {
		t.Errorf("Files = %d, want 3", res.Files)
	}

	v, err := Verify(context.Background(), res.OutputPath, "")
	if err != nil {
		t.Fatal(err)
	}
	if v.Entries != 3 {
		t.Errorf("Entries = %d, want 3", v.Entries)
	}
	if v.Bytes != res.InputBytes {
		t.Errorf("Bytes = %d, want %d", v.Bytes, res.InputBytes)
	}
}

func TestZipCarriesCredits(t *testing.T) {
	_, single := writeTree(t)
	res, err := Compress(context.Background(), single, Options{Format: FormatZIP})
	if err != nil {
		t.Fatal(err)
	}

	r, err := stdzip.OpenReader(res.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	if len(names) != 2 || names[0] != credits.ReadmeName || names[1] != "main.py" {
		t.Errorf("entries = %v", names)
	}
}

func TestPasswordZip(t *testing.T) {
	root, _ := writeTree(t)
	res, err := Compress(context.Background(), root, Options{Format: FormatZIP, Password: "s3cret"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Encrypted {
		t.Error("result not marked encrypted")
	}

	// plain readers list the entries but cannot open them
	r, err := stdzip.OpenReader(res.OutputPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range r.File {
		if _, err := f.Open(); !errors.Is(err, stdzip.ErrAlgorithm) {
			t.Errorf("%s: Open() error = %v, want ErrAlgorithm", f.Name, err)
		}
	}
	r.Close()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"no password", "", ErrPasswordRequired},
		{"wrong password", "nope", ErrPassword},
		{"right password", "s3cret", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Verify(context.Background(), res.OutputPath, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Verify() error = %v, want %v", err, tt.wantErr)
				}
				if v != nil {
					t.Errorf("Verify() result = %+v, want nil on error", v)
				}
				return
			}
			if err != nil {
				t.Fatalf("Verify() error = %v", err)
			}
			if !v.Encrypted {
				t.Error("Encrypted = false")
			}
			// three sources plus CREDITS.txt
			if v.Entries != 4 {
				t.Errorf("Entries = %d, want 4", v.Entries)
			}
		})
	}
}

func TestPasswordUnsupported(t *testing.T) {
	_, single := writeTree(t)
	for _, f := range Formats() {
		if f.SupportsPassword() {
			continue
		}
		_, err := Compress(context.Background(), single, Options{Format: f, Password: "x"})
		if !errors.Is(err, ErrPasswordUnsupported) {
			t.Errorf("%s: error = %v, want ErrPasswordUnsupported", f, err)
		}
	}
}

func TestCompressRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	if _, err := Compress(context.Background(), filepath.Join(dir, "missing"), Options{Format: FormatZIP}); err == nil {
		t.Error("expected error for missing input")
	}
	if _, err := Compress(context.Background(), dir, Options{Format: Format(42)}); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("error = %v, want ErrUnknownFormat", err)
	}
}

func TestCompressCancelled(t *testing.T) {
	_, single := writeTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Compress(ctx, single, Options{Format: FormatGZIP})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(single), "CodeAlchemist.gz")); !os.IsNotExist(err) {
		t.Error("partial output left behind")
	}
}

func TestCompressKeepsInputThatMatchesOutputName(t *testing.T) {
	dir := t.TempDir()
	precious := []byte("precious data")

	tests := []struct {
		name   string
		format Format
	}{
		{"CodeAlchemist.gz", FormatGZIP},
		{"CodeAlchemist.zip", FormatZIP},
		{"CodeAlchemist.tar", FormatTAR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := filepath.Join(dir, tt.name)
			if err := os.WriteFile(in, precious, 0644); err != nil {
				t.Fatal(err)
			}
			res, err := Compress(context.Background(), in, Options{Format: tt.format})
			if !errors.Is(err, ErrOutputOverlapsInput) {
				t.Fatalf("error = %v, want ErrOutputOverlapsInput", err)
			}
			if res != nil {
				t.Errorf("result = %+v, want nil", res)
			}
			got, err := os.ReadFile(in)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, precious) {
				t.Errorf("input changed to %q", got)
			}
		})
	}
}

func TestCompressRejectsOutputInsideFolder(t *testing.T) {
	root, _ := writeTree(t)
	for _, out := range []string{root, filepath.Join(root, "lib", "out")} {
		_, err := Compress(context.Background(), root, Options{Format: FormatTAR, OutputDir: out})
		if !errors.Is(err, ErrOutputOverlapsInput) {
			t.Errorf("OutputDir %s: error = %v, want ErrOutputOverlapsInput", out, err)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "lib", "out")); !os.IsNotExist(err) {
		t.Error("output directory created inside the input")
	}

	// a sibling whose name merely starts with the folder name is fine
	sibling := root + "-archives"
	res, err := Compress(context.Background(), root, Options{Format: FormatTAR, OutputDir: sibling})
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(res.OutputPath) != sibling {
		t.Errorf("OutputPath = %s", res.OutputPath)
	}
}

func TestOutputDirOverride(t *testing.T) {
	_, single := writeTree(t)
	out := filepath.Join(t.TempDir(), "nested", "out")
	res, err := Compress(context.Background(), single, Options{Format: FormatLZ4, OutputDir: out})
	if err != nil {
		t.Fatal(err)
	}
	if res.OutputPath != filepath.Join(out, "CodeAlchemist.lz4") {
		t.Errorf("OutputPath = %s", res.OutputPath)
	}
}

func TestExternalFormats(t *testing.T) {
	for _, f := range []Format{Format7Z, FormatRAR} {
		t.Run(f.String(), func(t *testing.T) {
			if _, err := LookupTool(ToolsFor(f)); err != nil {
				t.Skip(err)
			}
			root, _ := writeTree(t)
			res, err := Compress(context.Background(), root, Options{Format: f})
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasSuffix(res.OutputPath, f.Extension(true)) {
				t.Errorf("OutputPath = %s", res.OutputPath)
			}
		})
	}
}

func TestLookupToolMissing(t *testing.T) {
	_, err := LookupTool([]string{"codealchemist-no-such-archiver"})
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("error = %v, want ErrToolNotFound", err)
	}
}

func TestExternalArgs(t *testing.T) {
	tests := []struct {
		format Format
		level  compression.Level
		want   string
	}{
		{Format7Z, compression.LevelDefault, "a -t7z -y -bd out.7z in"},
		{Format7Z, compression.LevelBest, "a -t7z -y -bd -mx=9 out.7z in"},
		{FormatRAR, compression.LevelFast, "a -ep1 -y -idq -m1 out.7z in"},
		{FormatRAR, compression.LevelBest, "a -ep1 -y -idq -m5 out.7z in"},
	}
	for _, tt := range tests {
		got := strings.Join(externalArgs(tt.format, tt.level, "out.7z", "in"), " ")
		if got != tt.want {
			t.Errorf("externalArgs(%s, %d) = %q, want %q", tt.format, tt.level, got, tt.want)
		}
	}
}

func TestVerifyUnrecognized(t *testing.T) {
	p := filepath.Join(t.TempDir(), "notes.dat")
	if err := os.WriteFile(p, bytes.Repeat([]byte("plain text "), 10), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Verify(context.Background(), p, ""); !errors.Is(err, ErrUnrecognizedArchive) {
		t.Errorf("error = %v, want ErrUnrecognizedArchive", err)
	}
}

func TestVerifyCorrupt(t *testing.T) {
	p := filepath.Join(t.TempDir(), "broken.gz")
	if err := os.WriteFile(p, []byte("definitely not gzip"), 0644); err != nil {
		t.Fatal(err)
	}
	v, err := Verify(context.Background(), p, "")
	if err == nil {
		t.Error("expected error for corrupt stream")
	}
	if v != nil {
		t.Errorf("Verify() result = %+v, want nil on error", v)
	}
}
