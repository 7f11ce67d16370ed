package translator

import (
	"strings"
	"testing"
)

func lang(t *testing.T, name string) *Language {
	t.Helper()
	l, err := Lookup(name)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		src      string
		want     string
	}{
		{
			name: "python to javascript",
			from: "Python", to: "JavaScript",
			src: `def greet(name):
    if name == "":
        return "nobody"
    print("hi", name)

for i in range(3):
    greet("x")
`,
			want: `function greet(name) {
    if (name == "") {
        return "nobody";
    }
    console.log("hi", name);
}

for (let i = 0; i < 3; i++) {
    greet("x");
}
`,
		},
		{
			name: "javascript to python",
			from: "JavaScript", to: "Python",
			src: `function add(a, b) {
  // sum
  return a + b;
}
if (x > 1 && !done) {
  console.log("big");
} else {
  let y = null;
}
`,
			want: `def add(a, b):
    # sum
    return a + b
if x > 1 and not done:
    print("big")
else:
    y = None
`,
		},
		{
			name: "python to go",
			from: "Python", to: "Go",
			src: `x = 5
if x > 3:
    print("yes")
`,
			want: "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tvar x = 5\n\tif x > 3 {\n\t\tfmt.Println(\"yes\")\n\t}\n}\n",
		},
		{
			name: "python to ruby",
			from: "Python", to: "Ruby",
			src: `while busy:
    if ready:
        break
    else:
        wait()
`,
			want: `while busy
  if ready
    break
  else
    wait()
  end
end
`,
		},
		{
			name: "python to lua",
			from: "Python", to: "Lua",
			src: `for i in range(1, 4):
    print(i)
`,
			want: `for i = 1, 4 - 1 do
    print(i)
end
`,
		},
		{
			name: "c loop to python",
			from: "C", to: "Python",
			src: `for (int i = 0; i <= 9; i++) {
    printf("%d", i);
}
`,
			want: `for i in range(9 + 1):
    print("%d", i)
`,
		},
		{
			name: "go to python",
			from: "Go", to: "Python",
			src: `package main

import "fmt"

func main() {
	total := 0
	for _, v := range values {
		total += v
	}
	for total > 10 {
		total--
	}
	fmt.Println(total)
}
`,
			want: `def main():
    total = 0
    for v in values:
        total += v
    while total > 10:
        total--
    print(total)
`,
		},
		{
			name: "empty python block gets pass",
			from: "JavaScript", to: "Python",
			src: `if (ok) {
}
`,
			want: `if ok:
    pass
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate(tt.src, lang(t, tt.from), lang(t, tt.to))
			if got != tt.want {
				t.Errorf("Translate() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestTranslateLeavesStringsAndComments(t *testing.T) {
	src := `print("if True and None")  # True and None` + "\n"
	got := Translate(src, lang(t, "Python"), lang(t, "JavaScript"))
	want := `console.log("if True and None");  // True and None` + "\n"
	if got != want {
		t.Errorf("Translate() = %q, want %q", got, want)
	}
}

func TestTranslateWithoutKeywordTable(t *testing.T) {
	src := "# note\nmain = putStrLn \"hi\" -- not a comment in python\n"
	got := Translate(src, lang(t, "Python"), lang(t, "Haskell"))
	want := "-- note\nmain = putStrLn \"hi\" -- not a comment in python\n"
	if got != want {
		t.Errorf("Translate() = %q, want %q", got, want)
	}
}

func TestTranslateSameLanguage(t *testing.T) {
	src := "x = 1  # keep\n"
	py := lang(t, "Python")
	if got := Translate(src, py, py); got != src {
		t.Errorf("Translate() = %q, want unchanged", got)
	}
}

func TestTranslateBlockComments(t *testing.T) {
	src := "/* a\n   b */\nx = 1;\n"
	got := Translate(src, lang(t, "C"), lang(t, "Python"))
	want := "# a\n#   b\nx = 1\n"
	if got != want {
		t.Errorf("Translate() = %q, want %q", got, want)
	}
}

func TestTranslateJavaEntryPoint(t *testing.T) {
	src := "def greet():\n    print(\"hi\")\n\ngreet()\n"
	got := translate(src, lang(t, "Python"), lang(t, "Java"), "Hello")
	for _, want := range []string{
		"public class Hello {",
		"    public static void greet() {",
		"        System.out.println(\"hi\");",
		"    public static void main(String[] args) {",
		"        greet();",
	} {
		if !strings.Contains(got, want+"\n") {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "    }\n}\n") {
		t.Errorf("output not closed:\n%s", got)
	}
	if !strings.Contains(got, "main(String[] args) {\n        greet();\n") {
		t.Errorf("main body does not start with the first statement:\n%s", got)
	}
}

func TestTranslateEntryPointSkipsLeadingBlankLines(t *testing.T) {
	src := "def greet():\n    print(\"hi\")\n\n\ngreet()\n"
	tests := []struct {
		to   string
		want string
	}{
		{"Go", "func main() {\n\tgreet()\n}\n"},
		{"C", "int main(void) {\n    greet();\n"},
		{"Rust", "fn main() {\n    greet();\n}\n"},
	}
	for _, tt := range tests {
		got := Translate(src, lang(t, "Python"), lang(t, tt.to))
		if !strings.Contains(got, tt.want) {
			t.Errorf("%s output missing %q:\n%s", tt.to, tt.want, got)
		}
	}
}

func TestTranslateSigilVariables(t *testing.T) {
	src := `def greet(name):
    msg = name
    if msg == "":
        return
    print(msg)

x = True
for i in range(3):
    greet(i)
`
	tests := []struct {
		to   string
		want []string
	}{
		{"PHP", []string{
			"function greet($name) {",
			"$msg = $name;",
			`if ($msg == "") {`,
			"echo($msg);",
			"$x = true;",
			"for ($i = 0; $i < 3; $i++) {",
			"greet($i);",
		}},
		{"Perl", []string{
			"my $msg = $name;",
			"print($msg);",
			"greet($i);",
		}},
	}
	for _, tt := range tests {
		got := Translate(src, lang(t, "Python"), lang(t, tt.to))
		for _, want := range tt.want {
			if !strings.Contains(got, want) {
				t.Errorf("%s output missing %q:\n%s", tt.to, want, got)
			}
		}
		if strings.Contains(got, "$greet") || strings.Contains(got, "$$") {
			t.Errorf("%s output has a misplaced sigil:\n%s", tt.to, got)
		}
	}
}

func TestTranslateDropsSelf(t *testing.T) {
	src := "class Box:\n    def size(self, scale):\n        return self.n * scale\n"
	got := Translate(src, lang(t, "Python"), lang(t, "TypeScript"))
	for _, want := range []string{"class Box {", "function size(scale) {", "return this.n * scale;"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	srcs := []string{
		"x = 'a # b'  # c\n\"\"\"doc\nstring\"\"\"\n",
		"let s = `multi\nline`; /* c\n */ a--\n",
		"local x = 1 --[[ block\n]] -- line\n",
	}
	langs := []string{"Python", "JavaScript", "Lua"}
	for i, src := range srcs {
		l := lang(t, langs[i])
		if got := render(tokenize(src, l)); got != src {
			t.Errorf("%s round trip = %q, want %q", l.Name, got, src)
		}
	}
}

func TestTokenizeKinds(t *testing.T) {
	toks := code(tokenize(`if a != "x" // c`, lang(t, "Go")))
	kinds := []tokenKind{tokWord, tokWord, tokPunct, tokString, tokComment}
	if len(toks) != len(kinds) {
		t.Fatalf("got %d tokens: %+v", len(toks), toks)
	}
	for i, k := range kinds {
		if toks[i].kind != k {
			t.Errorf("token %d (%q) kind = %d, want %d", i, toks[i].text, toks[i].kind, k)
		}
	}
}
