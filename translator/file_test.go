package translator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTranslateFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "hello.py")
	if err := os.WriteFile(src, []byte("def greet():\n    print(\"hi\")\n\ngreet()\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		target  string
		output  string
		header  string
		content string
	}{
		{"JavaScript", "hello_translated.js", "// ====", "console.log(\"hi\");"},
		{"Java", "hello_translated.java", "// ====", "public class hello_translated {"},
		{"Ruby", "hello_translated.rb", "# ====", "puts(\"hi\")"},
		{"Haskell", "hello_translated.hs", "-- ====", "def greet():"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			to := lang(t, tt.target)
			res, err := TranslateFile(src, to.ID)
			if err != nil {
				t.Fatalf("TranslateFile() error = %v", err)
			}
			if res.Output != filepath.Join(dir, tt.output) {
				t.Errorf("Output = %s, want %s", res.Output, tt.output)
			}
			if res.From.Name != "Python" || res.To != to {
				t.Errorf("languages = %s -> %s", res.From, res.To)
			}
			data, err := os.ReadFile(res.Output)
			if err != nil {
				t.Fatal(err)
			}
			got := string(data)
			if got != res.Code {
				t.Error("written file differs from Result.Code")
			}
			if !strings.HasPrefix(got, tt.header) {
				t.Errorf("missing credit header:\n%s", got)
			}
			if !strings.Contains(got, "Tool: CodeAlchemist") {
				t.Errorf("header lacks tool name:\n%s", got)
			}
			if !strings.Contains(got, tt.content) {
				t.Errorf("output missing %q:\n%s", tt.content, got)
			}
			if res.Lines != strings.Count(got, "\n") {
				t.Errorf("Lines = %d", res.Lines)
			}
		})
	}
}

func TestTranslateFileErrors(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "data.qqq")
	known := filepath.Join(dir, "main.go")
	for _, p := range []string{unknown, known} {
		if err := os.WriteFile(p, []byte("x\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := TranslateFile(filepath.Join(dir, "missing.py"), 2); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
	if _, err := TranslateFile(unknown, 2); !errors.Is(err, ErrUnknownExtension) {
		t.Errorf("unknown extension error = %v", err)
	}
	if _, err := TranslateFile(known, 0); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("unknown target error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "main_translated.go")); err == nil {
		t.Error("output written for a failed translation")
	}
}

func TestCreditHeader(t *testing.T) {
	tests := []struct {
		lang   string
		prefix string
	}{
		{"Python", "# ===="},
		{"C", "// ===="},
		{"SQL", "-- ===="},
		{"HTML", "<!--\n"},
		{"CSS", "/*\n"},
	}
	for _, tt := range tests {
		h := CreditHeader(lang(t, tt.lang))
		if !strings.HasPrefix(h, tt.prefix) {
			t.Errorf("%s header = %q, want prefix %q", tt.lang, h, tt.prefix)
		}
		if !strings.HasSuffix(h, "\n\n") {
			t.Errorf("%s header not followed by a blank line", tt.lang)
		}
	}
}

func TestClassName(t *testing.T) {
	tests := map[string]string{
		"hello_translated": "hello_translated",
		"my-app":           "my_app",
		"2fast":            "_2fast",
		"":                 "_",
	}
	for in, want := range tests {
		if got := className(in); got != want {
			t.Errorf("className(%q) = %q, want %q", in, got, want)
		}
	}
}
