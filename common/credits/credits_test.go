package credits

import (
	"strings"
	"testing"
)

func TestHeader(t *testing.T) {
	tests := []struct {
		style  string
		prefix string
		suffix string
	}{
		{"#", "# ====", "# ========================================\n\n"},
		{"//", "// ====", "// ========================================\n\n"},
		{"REM", "REM ====", "REM ========================================\n\n"},
		{"/*", "/*\n * ====", " */\n\n"},
		{"", "/*\n", " */\n\n"},
	}

	for _, test := range tests {
		h := Header(test.style)
		if !strings.HasPrefix(h, test.prefix) {
			t.Errorf("Header(%q) = %q, expected prefix %q", test.style, h, test.prefix)
		}
		if !strings.HasSuffix(h, test.suffix) {
			t.Errorf("Header(%q) = %q, expected suffix %q", test.style, h, test.suffix)
		}
		if !strings.Contains(h, "Tool: CodeAlchemist") {
			t.Errorf("Header(%q) is missing the tool name", test.style)
		}
	}
}

func TestReadme(t *testing.T) {
	r := Readme()
	for _, want := range []string{"CodeAlchemist", "Developer: mero", "Telegram: @qp4rm"} {
		if !strings.Contains(r, want) {
			t.Errorf("Readme() missing %q", want)
		}
	}
}

func TestBlock(t *testing.T) {
	b := Block("<!--", "-->")
	if !strings.HasPrefix(b, "<!--\n * ====") || !strings.HasSuffix(b, " -->\n\n") {
		t.Errorf("Block() = %q", b)
	}
}
