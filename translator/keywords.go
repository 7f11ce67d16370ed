package translator

import "strings"

// Concept is a language-neutral keyword meaning.
type Concept int

const (
	ConceptFunction Concept = iota + 1
	ConceptClass
	ConceptIf
	ConceptElif
	ConceptElse
	ConceptFor
	ConceptWhile
	ConceptReturn
	ConceptBreak
	ConceptContinue
	ConceptTrue
	ConceptFalse
	ConceptNull
	ConceptAnd
	ConceptOr
	ConceptNot
	ConceptSelf
	ConceptPrint
	ConceptVar
	ConceptConst
	ConceptImport
	ConceptPass
	// ConceptThen and ConceptDo trail conditions and loop headers in
	// languages such as Lua.
	ConceptThen
	ConceptDo
)

var conceptNames = map[Concept]string{
	ConceptFunction: "function", ConceptClass: "class", ConceptIf: "if",
	ConceptElif: "elif", ConceptElse: "else", ConceptFor: "for",
	ConceptWhile: "while", ConceptReturn: "return", ConceptBreak: "break",
	ConceptContinue: "continue", ConceptTrue: "true", ConceptFalse: "false",
	ConceptNull: "null", ConceptAnd: "and", ConceptOr: "or", ConceptNot: "not",
	ConceptSelf: "self", ConceptPrint: "print", ConceptVar: "var",
	ConceptConst: "const", ConceptImport: "import", ConceptPass: "pass",
	ConceptThen: "then", ConceptDo: "do",
}

func (c Concept) String() string {
	if s, ok := conceptNames[c]; ok {
		return s
	}
	return "concept"
}

// Spelling returns the output form of c in l and whether l knows c at all.
func (l *Language) Spelling(c Concept) (string, bool) {
	v, ok := l.Keywords[c]
	if !ok {
		return "", false
	}
	first, _, _ := strings.Cut(v, ",")
	return first, true
}

// loop describes a loop header in language-neutral terms. Counted loops run
// Var from Start up to, but excluding, End. Each loops bind Var to the
// elements of Iter.
type loop struct {
	Var, Start, End, Iter string
	Counted               bool
}

// syntax holds everything structural translation needs beyond keywords.
type syntax struct {
	keywords map[Concept]string
	indent   string
	// explicitSelf is set when methods name the receiver as a parameter.
	explicitSelf bool
	// main is the entry point header loose statements are moved into.
	main string
	// class wraps the whole program, the placeholder %s is the class name.
	class   string
	counted func(v, start, end string) string
	each    func(v, iter string) string

	patterns []pattern
}

func cCounted(decl string) func(v, s, e string) string {
	return func(v, s, e string) string {
		return "for (" + decl + v + " = " + s + "; " + v + " < " + e + "; " + v + "++)"
	}
}

func sigil(v string) string {
	if strings.HasPrefix(v, "$") {
		return v
	}
	return "$" + v
}

var syntaxes = map[string]*syntax{
	"python": {
		keywords: map[Concept]string{
			ConceptFunction: "def", ConceptClass: "class", ConceptIf: "if", ConceptElif: "elif",
			ConceptElse: "else", ConceptFor: "for", ConceptWhile: "while", ConceptReturn: "return",
			ConceptBreak: "break", ConceptContinue: "continue", ConceptTrue: "True", ConceptFalse: "False",
			ConceptNull: "None", ConceptAnd: "and", ConceptOr: "or", ConceptNot: "not",
			ConceptSelf: "self", ConceptPrint: "print", ConceptVar: "", ConceptConst: "",
			ConceptImport: "import", ConceptPass: "pass",
		},
		explicitSelf: true,
		counted: func(v, s, e string) string {
			if s == "0" {
				return "for " + v + " in range(" + e + ")"
			}
			return "for " + v + " in range(" + s + ", " + e + ")"
		},
		each: func(v, iter string) string { return "for " + v + " in " + iter },
	},
	"javascript": {
		keywords: map[Concept]string{
			ConceptFunction: "function", ConceptClass: "class", ConceptIf: "if", ConceptElif: "else if",
			ConceptElse: "else", ConceptFor: "for", ConceptWhile: "while", ConceptReturn: "return",
			ConceptBreak: "break", ConceptContinue: "continue", ConceptTrue: "true", ConceptFalse: "false",
			ConceptNull: "null,undefined", ConceptAnd: "&&", ConceptOr: "||", ConceptNot: "!",
			ConceptSelf: "this", ConceptPrint: "console.log", ConceptVar: "let,var", ConceptConst: "const",
			ConceptImport: "import",
		},
		counted: cCounted("let "),
		each:    func(v, iter string) string { return "for (const " + v + " of " + iter + ")" },
	},
	"typescript": {
		keywords: map[Concept]string{
			ConceptFunction: "function", ConceptClass: "class", ConceptIf: "if", ConceptElif: "else if",
			ConceptElse: "else", ConceptFor: "for", ConceptWhile: "while", ConceptReturn: "return",
			ConceptBreak: "break", ConceptContinue: "continue", ConceptTrue: "true", ConceptFalse: "false",
			ConceptNull: "null,undefined", ConceptAnd: "&&", ConceptOr: "||", ConceptNot: "!",
			ConceptSelf: "this", ConceptPrint: "console.log", ConceptVar: "let,var", ConceptConst: "const",
			ConceptImport: "import",
		},
		counted: cCounted("let "),
		each:    func(v, iter string) string { return "for (const " + v + " of " + iter + ")" },
	},
	"java": {
		keywords: map[Concept]string{
			ConceptFunction: "public static void,public void,private void,static void", ConceptClass: "public class,class",
			ConceptIf: "if", ConceptElif: "else if", ConceptElse: "else", ConceptFor: "for", ConceptWhile: "while",
			ConceptReturn: "return", ConceptBreak: "break", ConceptContinue: "continue", ConceptTrue: "true",
			ConceptFalse: "false", ConceptNull: "null", ConceptAnd: "&&", ConceptOr: "||", ConceptNot: "!",
			ConceptSelf: "this", ConceptPrint: "System.out.println", ConceptVar: "var,int,long,double,boolean,String",
			ConceptConst: "final var,final int,final String", ConceptImport: "import",
		},
		class:   "public class %s",
		main:    "public static void main(String[] args)",
		counted: cCounted("int "),
		each:    func(v, iter string) string { return "for (var " + v + " : " + iter + ")" },
	},
	"c": {
		keywords: map[Concept]string{
			ConceptFunction: "void", ConceptClass: "struct", ConceptIf: "if", ConceptElif: "else if",
			ConceptElse: "else", ConceptFor: "for", ConceptWhile: "while", ConceptReturn: "return",
			ConceptBreak: "break", ConceptContinue: "continue", ConceptTrue: "true", ConceptFalse: "false",
			ConceptNull: "NULL", ConceptAnd: "&&", ConceptOr: "||", ConceptNot: "!",
			ConceptPrint: "printf", ConceptVar: "int,long,char,float,double", ConceptConst: "const int,const char",
			ConceptImport: "#include",
		},
		main:    "int main(void)",
		counted: cCounted("int "),
	},
	"c++": {
		keywords: map[Concept]string{
			ConceptFunction: "void", ConceptClass: "class,struct", ConceptIf: "if", ConceptElif: "else if",
			ConceptElse: "else", ConceptFor: "for", ConceptWhile: "while", ConceptReturn: "return",
			ConceptBreak: "break", ConceptContinue: "continue", ConceptTrue: "true", ConceptFalse: "false",
			ConceptNull: "nullptr,NULL", ConceptAnd: "&&", ConceptOr: "||", ConceptNot: "!",
			ConceptSelf: "this", ConceptPrint: "printf", ConceptVar: "auto,int,long,double,std::string",
			ConceptConst: "const auto,constexpr auto", ConceptImport: "#include",
		},
		main:    "int main()",
		counted: cCounted("int "),
		each:    func(v, iter string) string { return "for (auto " + v + " : " + iter + ")" },
	},
	"c#": {
		keywords: map[Concept]string{
			ConceptFunction: "public static void,static void,public void", ConceptClass: "public class,class",
			ConceptIf: "if", ConceptElif: "else if", ConceptElse: "else", ConceptFor: "for,foreach", ConceptWhile: "while",
			ConceptReturn: "return", ConceptBreak: "break", ConceptContinue: "continue", ConceptTrue: "true",
			ConceptFalse: "false", ConceptNull: "null", ConceptAnd: "&&", ConceptOr: "||", ConceptNot: "!",
			ConceptSelf: "this", ConceptPrint: "Console.WriteLine", ConceptVar: "var,int,string,double,bool",
			ConceptConst: "const", ConceptImport: "using",
		},
		counted: cCounted("int "),
		each:    func(v, iter string) string { return "foreach (var " + v + " in " + iter + ")" },
	},
	"go": {
		keywords: map[Concept]string{
			ConceptFunction: "func", ConceptClass: "type", ConceptIf: "if", ConceptElif: "else if",
			ConceptElse: "else", ConceptFor: "for", ConceptWhile: "for", ConceptReturn: "return",
			ConceptBreak: "break", ConceptContinue: "continue", ConceptTrue: "true", ConceptFalse: "false",
			ConceptNull: "nil", ConceptAnd: "&&", ConceptOr: "||", ConceptNot: "!",
			ConceptPrint: "fmt.Println", ConceptVar: "var", ConceptConst: "const", ConceptImport: "import",
		},
		indent: "\t",
		main:   "func main()",
		counted: func(v, s, e string) string {
			return "for " + v + " := " + s + "; " + v + " < " + e + "; " + v + "++"
		},
		each: func(v, iter string) string { return "for _, " + v + " := range " + iter },
	},
	"rust": {
		keywords: map[Concept]string{
			ConceptFunction: "fn,pub fn", ConceptClass: "struct,pub struct", ConceptIf: "if", ConceptElif: "else if",
			ConceptElse: "else", ConceptFor: "for", ConceptWhile: "while", ConceptReturn: "return",
			ConceptBreak: "break", ConceptContinue: "continue", ConceptTrue: "true", ConceptFalse: "false",
			ConceptNull: "None", ConceptAnd: "&&", ConceptOr: "||", ConceptNot: "!",
			ConceptSelf: "self", ConceptPrint: "println!", ConceptVar: "let mut,let", ConceptConst: "const",
			ConceptImport: "use",
		},
		explicitSelf: true,
		main:         "fn main()",
		counted:      func(v, s, e string) string { return "for " + v + " in " + s + ".." + e },
		each:         func(v, iter string) string { return "for " + v + " in " + iter },
	},
	"ruby": {
		keywords: map[Concept]string{
			ConceptFunction: "def", ConceptClass: "class", ConceptIf: "if", ConceptElif: "elsif",
			ConceptElse: "else", ConceptFor: "for", ConceptWhile: "while", ConceptReturn: "return",
			ConceptBreak: "break", ConceptContinue: "next", ConceptTrue: "true", ConceptFalse: "false",
			ConceptNull: "nil", ConceptAnd: "&&,and", ConceptOr: "||,or", ConceptNot: "!,not",
			ConceptSelf: "self", ConceptPrint: "puts,print", ConceptVar: "", ConceptConst: "",
			ConceptImport: "require", ConceptThen: "", ConceptDo: "",
		},
		indent:  "  ",
		counted: func(v, s, e string) string { return "for " + v + " in " + s + "..." + e },
		each:    func(v, iter string) string { return "for " + v + " in " + iter },
	},
	"php": {
		keywords: map[Concept]string{
			ConceptFunction: "function,public function,private function", ConceptClass: "class", ConceptIf: "if",
			ConceptElif: "elseif,else if", ConceptElse: "else", ConceptFor: "for,foreach", ConceptWhile: "while",
			ConceptReturn: "return", ConceptBreak: "break", ConceptContinue: "continue", ConceptTrue: "true",
			ConceptFalse: "false", ConceptNull: "null", ConceptAnd: "&&", ConceptOr: "||", ConceptNot: "!",
			ConceptSelf: "$this", ConceptPrint: "echo", ConceptVar: "", ConceptConst: "const",
			ConceptImport: "require_once,require,include",
		},
		counted: func(v, s, e string) string {
			v = sigil(v)
			return "for (" + v + " = " + s + "; " + v + " < " + e + "; " + v + "++)"
		},
		each: func(v, iter string) string { return "foreach (" + iter + " as " + sigil(v) + ")" },
	},
	"swift": {
		keywords: map[Concept]string{
			ConceptFunction: "func", ConceptClass: "class,struct", ConceptIf: "if", ConceptElif: "else if",
			ConceptElse: "else", ConceptFor: "for", ConceptWhile: "while", ConceptReturn: "return",
			ConceptBreak: "break", ConceptContinue: "continue", ConceptTrue: "true", ConceptFalse: "false",
			ConceptNull: "nil", ConceptAnd: "&&", ConceptOr: "||", ConceptNot: "!",
			ConceptSelf: "self", ConceptPrint: "print", ConceptVar: "var", ConceptConst: "let",
			ConceptImport: "import",
		},
		counted: func(v, s, e string) string { return "for " + v + " in " + s + "..<" + e },
		each:    func(v, iter string) string { return "for " + v + " in " + iter },
	},
	"kotlin": {
		keywords: map[Concept]string{
			ConceptFunction: "fun", ConceptClass: "class,data class", ConceptIf: "if", ConceptElif: "else if",
			ConceptElse: "else", ConceptFor: "for", ConceptWhile: "while", ConceptReturn: "return",
			ConceptBreak: "break", ConceptContinue: "continue", ConceptTrue: "true", ConceptFalse: "false",
			ConceptNull: "null", ConceptAnd: "&&", ConceptOr: "||", ConceptNot: "!",
			ConceptSelf: "this", ConceptPrint: "println", ConceptVar: "var", ConceptConst: "val",
			ConceptImport: "import",
		},
		main:    "fun main()",
		counted: func(v, s, e string) string { return "for (" + v + " in " + s + " until " + e + ")" },
		each:    func(v, iter string) string { return "for (" + v + " in " + iter + ")" },
	},
	"scala": {
		keywords: map[Concept]string{
			ConceptFunction: "def", ConceptClass: "class,case class,object", ConceptIf: "if", ConceptElif: "else if",
			ConceptElse: "else", ConceptFor: "for", ConceptWhile: "while", ConceptReturn: "return",
			ConceptTrue: "true", ConceptFalse: "false", ConceptNull: "null", ConceptAnd: "&&", ConceptOr: "||",
			ConceptNot: "!", ConceptSelf: "this", ConceptPrint: "println", ConceptVar: "var", ConceptConst: "val",
			ConceptImport: "import",
		},
		indent:  "  ",
		counted: func(v, s, e string) string { return "for (" + v + " <- " + s + " until " + e + ")" },
		each:    func(v, iter string) string { return "for (" + v + " <- " + iter + ")" },
	},
	"dart": {
		keywords: map[Concept]string{
			ConceptFunction: "void", ConceptClass: "class", ConceptIf: "if", ConceptElif: "else if",
			ConceptElse: "else", ConceptFor: "for", ConceptWhile: "while", ConceptReturn: "return",
			ConceptBreak: "break", ConceptContinue: "continue", ConceptTrue: "true", ConceptFalse: "false",
			ConceptNull: "null", ConceptAnd: "&&", ConceptOr: "||", ConceptNot: "!",
			ConceptSelf: "this", ConceptPrint: "print", ConceptVar: "var,int,double,String", ConceptConst: "final,const",
			ConceptImport: "import",
		},
		indent:  "  ",
		main:    "void main()",
		counted: cCounted("var "),
		each:    func(v, iter string) string { return "for (var " + v + " in " + iter + ")" },
	},
	"lua": {
		keywords: map[Concept]string{
			ConceptFunction: "function,local function", ConceptIf: "if", ConceptElif: "elseif", ConceptElse: "else",
			ConceptFor: "for", ConceptWhile: "while", ConceptReturn: "return", ConceptBreak: "break",
			ConceptTrue: "true", ConceptFalse: "false", ConceptNull: "nil", ConceptAnd: "and", ConceptOr: "or",
			ConceptNot: "not", ConceptSelf: "self", ConceptPrint: "print", ConceptVar: "local", ConceptConst: "local",
			ConceptImport: "require", ConceptThen: "then", ConceptDo: "do",
		},
		counted: func(v, s, e string) string { return "for " + v + " = " + s + ", " + inclusive(e) },
		each:    func(v, iter string) string { return "for _, " + v + " in ipairs(" + iter + ")" },
	},
	"perl": {
		keywords: map[Concept]string{
			ConceptFunction: "sub", ConceptIf: "if", ConceptElif: "elsif", ConceptElse: "else",
			ConceptFor: "for,foreach", ConceptWhile: "while", ConceptReturn: "return", ConceptBreak: "last",
			ConceptContinue: "next", ConceptNull: "undef", ConceptAnd: "&&,and", ConceptOr: "||,or",
			ConceptNot: "!,not", ConceptSelf: "$self", ConceptPrint: "print", ConceptVar: "my", ConceptConst: "my",
			ConceptImport: "use,require",
		},
		counted: func(v, s, e string) string {
			v = sigil(v)
			return "for (my " + v + " = " + s + "; " + v + " < " + e + "; " + v + "++)"
		},
		each: func(v, iter string) string { return "foreach my " + sigil(v) + " (" + iter + ")" },
	},
	"r": {
		keywords: map[Concept]string{
			ConceptFunction: "function", ConceptIf: "if", ConceptElif: "else if", ConceptElse: "else",
			ConceptFor: "for", ConceptWhile: "while", ConceptReturn: "return", ConceptBreak: "break",
			ConceptContinue: "next", ConceptTrue: "TRUE", ConceptFalse: "FALSE", ConceptNull: "NULL",
			ConceptAnd: "&&", ConceptOr: "||", ConceptNot: "!", ConceptPrint: "print", ConceptVar: "",
			ConceptConst: "", ConceptImport: "library",
		},
		indent:  "  ",
		counted: func(v, s, e string) string { return "for (" + v + " in " + s + ":(" + inclusive(e) + "))" },
		each:    func(v, iter string) string { return "for (" + v + " in " + iter + ")" },
	},
	"powershell": {
		keywords: map[Concept]string{
			ConceptFunction: "function", ConceptClass: "class", ConceptIf: "if", ConceptElif: "elseif",
			ConceptElse: "else", ConceptFor: "for,foreach", ConceptWhile: "while", ConceptReturn: "return",
			ConceptBreak: "break", ConceptContinue: "continue", ConceptTrue: "$true", ConceptFalse: "$false",
			ConceptNull: "$null", ConceptAnd: "-and", ConceptOr: "-or", ConceptNot: "-not", ConceptSelf: "$this",
			ConceptPrint: "Write-Output,Write-Host", ConceptVar: "", ConceptConst: "", ConceptImport: "Import-Module",
		},
		counted: func(v, s, e string) string {
			v = sigil(v)
			return "for (" + v + " = " + s + "; " + v + " -lt " + e + "; " + v + "++)"
		},
		each: func(v, iter string) string { return "foreach (" + sigil(v) + " in " + iter + ")" },
	},
	"julia": {
		keywords: map[Concept]string{
			ConceptFunction: "function", ConceptClass: "struct,mutable struct", ConceptIf: "if", ConceptElif: "elseif",
			ConceptElse: "else", ConceptFor: "for", ConceptWhile: "while", ConceptReturn: "return",
			ConceptBreak: "break", ConceptContinue: "continue", ConceptTrue: "true", ConceptFalse: "false",
			ConceptNull: "nothing", ConceptAnd: "&&", ConceptOr: "||", ConceptNot: "!", ConceptPrint: "println",
			ConceptVar: "", ConceptConst: "const", ConceptImport: "using,import",
		},
		counted: func(v, s, e string) string { return "for " + v + " in " + s + ":" + inclusive(e) },
		each:    func(v, iter string) string { return "for " + v + " in " + iter },
	},
}
