package translator

import (
	"errors"
	"testing"
)

func TestRegistry(t *testing.T) {
	langs := Languages()
	if len(langs) < 96 {
		t.Fatalf("registry has %d languages, want at least 96", len(langs))
	}
	for i, l := range langs {
		if l.ID != i+1 {
			t.Errorf("language %d (%s) has id %d", i, l.Name, l.ID)
		}
		if len(l.Extensions) == 0 {
			t.Errorf("%s has no extensions", l.Name)
		}
		if l.Comment == "" {
			t.Errorf("%s has no comment style", l.Name)
		}
		if l.Comment == CommentBlock && l.BlockComment[0] == "" {
			t.Errorf("%s uses block comments without delimiters", l.Name)
		}
	}
}

func TestByExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want string
	}{
		{".py", "Python"},
		{"py", "Python"},
		{".PY", "Python"},
		{".go", "Go"},
		{".rs", "Rust"},
		{".hpp", "C++"},
		{".m", "Objective-C"},
		{".tsx", "TypeScript"},
	}
	for _, tt := range tests {
		l, ok := ByExtension(tt.ext)
		if !ok || l.Name != tt.want {
			t.Errorf("ByExtension(%q) = %v, %v, want %s", tt.ext, l, ok, tt.want)
		}
	}
	for _, ext := range []string{"", ".nope", "exe"} {
		if _, ok := ByExtension(ext); ok {
			t.Errorf("ByExtension(%q) matched", ext)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"1", "Python"},
		{"8", "Go"},
		{"python", "Python"},
		{"C#", "C#"},
		{".rs", "Rust"},
		{"kt", "Kotlin"},
		{"javascrpt", "JavaScript"},
	}
	for _, tt := range tests {
		l, err := Lookup(tt.query)
		if err != nil {
			t.Errorf("Lookup(%q) error = %v", tt.query, err)
			continue
		}
		if l.Name != tt.want {
			t.Errorf("Lookup(%q) = %s, want %s", tt.query, l.Name, tt.want)
		}
	}

	for _, q := range []string{"", "0", "9999", "qqqqqq"} {
		if _, err := Lookup(q); !errors.Is(err, ErrUnknownLanguage) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnknownLanguage", q, err)
		}
	}
}

func TestSpelling(t *testing.T) {
	py, _ := ByID(1)
	js, _ := ByID(2)

	if s, ok := js.Spelling(ConceptNull); !ok || s != "null" {
		t.Errorf("JavaScript null = %q, %v", s, ok)
	}
	if s, ok := py.Spelling(ConceptVar); !ok || s != "" {
		t.Errorf("Python var = %q, %v", s, ok)
	}
	if _, ok := js.Spelling(ConceptPass); ok {
		t.Error("JavaScript should not know pass")
	}
	if !py.HasKeywords() {
		t.Error("Python has no keyword table")
	}
	if l, _ := ByExtension(".hs"); l.HasKeywords() {
		t.Error("Haskell unexpectedly has a keyword table")
	}
}
