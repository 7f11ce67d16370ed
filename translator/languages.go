package translator

var (
	cBlock    = [2]string{"/*", "*/"}
	htmlBlock = [2]string{"<!--", "-->"}
	mlBlock   = [2]string{"(*", "*)"}
)

// registry lists every supported language. IDs are stable menu numbers.
var registry = []*Language{
	{ID: 1, Name: "Python", Extensions: []string{".py", ".pyw"}, Comment: CommentHash, Block: BlockIndent},
	{ID: 2, Name: "JavaScript", Extensions: []string{".js", ".mjs", ".cjs"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true, ParenConditions: true, quotes: "\"'`"},
	{ID: 3, Name: "TypeScript", Extensions: []string{".ts", ".tsx", ".mts"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true, ParenConditions: true, quotes: "\"'`"},
	{ID: 4, Name: "Java", Extensions: []string{".java"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true, ParenConditions: true},
	{ID: 5, Name: "C", Extensions: []string{".c", ".h"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true, ParenConditions: true},
	{ID: 6, Name: "C++", Extensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh", ".hxx"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true, ParenConditions: true},
	{ID: 7, Name: "C#", Extensions: []string{".cs", ".csx"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true, ParenConditions: true},
	{ID: 8, Name: "Go", Extensions: []string{".go"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, quotes: "\"'`"},
	{ID: 9, Name: "Rust", Extensions: []string{".rs"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true, quotes: `"`},
	{ID: 10, Name: "Ruby", Extensions: []string{".rb", ".rake", ".gemspec"}, Comment: CommentHash, BlockComment: [2]string{"=begin", "=end"}, Block: BlockEnd},
	{ID: 11, Name: "PHP", Extensions: []string{".php", ".phtml"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true, ParenConditions: true},
	{ID: 12, Name: "Swift", Extensions: []string{".swift"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, quotes: `"`},
	{ID: 13, Name: "Kotlin", Extensions: []string{".kt", ".kts"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, ParenConditions: true},
	{ID: 14, Name: "Scala", Extensions: []string{".scala", ".sc"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, ParenConditions: true},
	{ID: 15, Name: "Dart", Extensions: []string{".dart"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true, ParenConditions: true},
	{ID: 16, Name: "Lua", Extensions: []string{".lua"}, Comment: CommentDash, BlockComment: [2]string{"--[[", "]]"}, Block: BlockEnd},
	{ID: 17, Name: "Perl", Extensions: []string{".pl", ".pm"}, Comment: CommentHash, Block: BlockBraces, Semicolons: true, ParenConditions: true},
	{ID: 18, Name: "R", Extensions: []string{".r", ".rmd"}, Comment: CommentHash, Block: BlockBraces, ParenConditions: true},
	{ID: 19, Name: "Shell", Extensions: []string{".sh", ".bash", ".zsh"}, Comment: CommentHash, Block: BlockNone, quotes: "\"'`"},
	{ID: 20, Name: "PowerShell", Extensions: []string{".ps1", ".psm1"}, Comment: CommentHash, BlockComment: [2]string{"<#", "#>"}, Block: BlockBraces, ParenConditions: true},
	{ID: 21, Name: "Haskell", Extensions: []string{".hs", ".lhs"}, Comment: CommentDash, BlockComment: [2]string{"{-", "-}"}, Block: BlockIndent, quotes: `"`},
	{ID: 22, Name: "Objective-C", Extensions: []string{".m", ".mm"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true, ParenConditions: true},
	{ID: 23, Name: "MATLAB", Extensions: []string{".m", ".mlx"}, Comment: CommentPercent, BlockComment: [2]string{"%{", "%}"}, Block: BlockEnd},
	{ID: 24, Name: "Julia", Extensions: []string{".jl"}, Comment: CommentHash, BlockComment: [2]string{"#=", "=#"}, Block: BlockEnd},
	{ID: 25, Name: "Elixir", Extensions: []string{".ex", ".exs"}, Comment: CommentHash, Block: BlockEnd},
	{ID: 26, Name: "Erlang", Extensions: []string{".erl", ".hrl"}, Comment: CommentPercent},
	{ID: 27, Name: "Clojure", Extensions: []string{".clj", ".cljs", ".cljc", ".edn"}, Comment: CommentSemicolon, quotes: `"`},
	{ID: 28, Name: "F#", Extensions: []string{".fs", ".fsx", ".fsi"}, Comment: CommentSlash, BlockComment: mlBlock, Block: BlockIndent, quotes: `"`},
	{ID: 29, Name: "OCaml", Extensions: []string{".ml", ".mli"}, Comment: CommentBlock, BlockComment: mlBlock, quotes: `"`},
	{ID: 30, Name: "Visual Basic", Extensions: []string{".vb", ".bas", ".vbs"}, Comment: CommentQuote, Block: BlockEnd},
	{ID: 31, Name: "Pascal", Extensions: []string{".pas", ".pp", ".dpr"}, Comment: CommentSlash, BlockComment: [2]string{"{", "}"}, Semicolons: true},
	{ID: 32, Name: "Fortran", Extensions: []string{".f90", ".f95", ".f03", ".f", ".for"}, Comment: CommentBang, Block: BlockEnd},
	{ID: 33, Name: "COBOL", Extensions: []string{".cob", ".cbl", ".cpy"}, Comment: CommentStar},
	{ID: 34, Name: "Ada", Extensions: []string{".adb", ".ads"}, Comment: CommentDash, Semicolons: true},
	{ID: 35, Name: "Assembly", Extensions: []string{".asm", ".s", ".nasm"}, Comment: CommentSemicolon},
	{ID: 36, Name: "Batch", Extensions: []string{".bat", ".cmd"}, Comment: CommentRem, quotes: `"`},
	{ID: 37, Name: "SQL", Extensions: []string{".sql"}, Comment: CommentDash, BlockComment: cBlock, Semicolons: true},
	{ID: 38, Name: "HTML", Extensions: []string{".html", ".htm", ".xhtml"}, Comment: CommentBlock, BlockComment: htmlBlock},
	{ID: 39, Name: "CSS", Extensions: []string{".css"}, Comment: CommentBlock, BlockComment: cBlock},
	{ID: 40, Name: "SCSS", Extensions: []string{".scss"}, Comment: CommentSlash, BlockComment: cBlock},
	{ID: 41, Name: "Less", Extensions: []string{".less"}, Comment: CommentSlash, BlockComment: cBlock},
	{ID: 42, Name: "XML", Extensions: []string{".xml", ".xsd", ".xsl", ".svg"}, Comment: CommentBlock, BlockComment: htmlBlock},
	{ID: 43, Name: "JSON", Extensions: []string{".json"}, Comment: CommentBlock, BlockComment: cBlock},
	{ID: 44, Name: "YAML", Extensions: []string{".yaml", ".yml"}, Comment: CommentHash},
	{ID: 45, Name: "TOML", Extensions: []string{".toml"}, Comment: CommentHash},
	{ID: 46, Name: "INI", Extensions: []string{".ini", ".cfg"}, Comment: CommentSemicolon, quotes: `"`},
	{ID: 47, Name: "Markdown", Extensions: []string{".md", ".markdown"}, Comment: CommentBlock, BlockComment: htmlBlock},
	{ID: 48, Name: "LaTeX", Extensions: []string{".tex", ".sty", ".cls"}, Comment: CommentPercent},
	{ID: 49, Name: "Groovy", Extensions: []string{".groovy", ".gvy", ".gradle"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, ParenConditions: true},
	{ID: 50, Name: "Elm", Extensions: []string{".elm"}, Comment: CommentDash, BlockComment: [2]string{"{-", "-}"}, quotes: `"`},
	{ID: 51, Name: "Crystal", Extensions: []string{".cr"}, Comment: CommentHash, Block: BlockEnd},
	{ID: 52, Name: "Nim", Extensions: []string{".nim", ".nims"}, Comment: CommentHash, BlockComment: [2]string{"#[", "]#"}, Block: BlockIndent},
	{ID: 53, Name: "Zig", Extensions: []string{".zig"}, Comment: CommentSlash, Block: BlockBraces, Semicolons: true, ParenConditions: true, quotes: `"`},
	{ID: 54, Name: "V", Extensions: []string{".v", ".vv"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces},
	{ID: 55, Name: "D", Extensions: []string{".d", ".di"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true, ParenConditions: true},
	{ID: 56, Name: "Solidity", Extensions: []string{".sol"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true, ParenConditions: true},
	{ID: 57, Name: "Vyper", Extensions: []string{".vy"}, Comment: CommentHash, Block: BlockIndent},
	{ID: 58, Name: "Apex", Extensions: []string{".cls", ".trigger"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true, ParenConditions: true},
	{ID: 59, Name: "ABAP", Extensions: []string{".abap"}, Comment: CommentStar},
	{ID: 60, Name: "Prolog", Extensions: []string{".pro", ".prolog"}, Comment: CommentPercent, BlockComment: cBlock},
	{ID: 61, Name: "Lisp", Extensions: []string{".lisp", ".lsp", ".cl"}, Comment: CommentSemicolon, BlockComment: [2]string{"#|", "|#"}, quotes: `"`},
	{ID: 62, Name: "Scheme", Extensions: []string{".scm", ".ss"}, Comment: CommentSemicolon, BlockComment: [2]string{"#|", "|#"}, quotes: `"`},
	{ID: 63, Name: "Racket", Extensions: []string{".rkt"}, Comment: CommentSemicolon, BlockComment: [2]string{"#|", "|#"}, quotes: `"`},
	{ID: 64, Name: "Smalltalk", Extensions: []string{".st"}, Comment: CommentBlock, BlockComment: [2]string{`"`, `"`}, quotes: "'"},
	{ID: 65, Name: "Tcl", Extensions: []string{".tcl", ".tk"}, Comment: CommentHash, Block: BlockBraces},
	{ID: 66, Name: "AWK", Extensions: []string{".awk"}, Comment: CommentHash, Block: BlockBraces, ParenConditions: true},
	{ID: 67, Name: "Sed", Extensions: []string{".sed"}, Comment: CommentHash},
	{ID: 68, Name: "VHDL", Extensions: []string{".vhd", ".vhdl"}, Comment: CommentDash, Semicolons: true},
	{ID: 69, Name: "Verilog", Extensions: []string{".v", ".sv", ".svh"}, Comment: CommentSlash, BlockComment: cBlock, Semicolons: true},
	{ID: 70, Name: "CoffeeScript", Extensions: []string{".coffee"}, Comment: CommentHash, BlockComment: [2]string{"###", "###"}, Block: BlockIndent},
	{ID: 71, Name: "LiveScript", Extensions: []string{".ls"}, Comment: CommentHash, Block: BlockIndent},
	{ID: 72, Name: "ReasonML", Extensions: []string{".re", ".rei"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true},
	{ID: 73, Name: "PureScript", Extensions: []string{".purs"}, Comment: CommentDash, BlockComment: [2]string{"{-", "-}"}, quotes: `"`},
	{ID: 74, Name: "Idris", Extensions: []string{".idr"}, Comment: CommentDash, BlockComment: [2]string{"{-", "-}"}, quotes: `"`},
	{ID: 75, Name: "Agda", Extensions: []string{".agda"}, Comment: CommentDash, BlockComment: [2]string{"{-", "-}"}, quotes: `"`},
	{ID: 76, Name: "Coq", Extensions: []string{".coq", ".vernac"}, Comment: CommentBlock, BlockComment: mlBlock, quotes: `"`},
	{ID: 77, Name: "Lean", Extensions: []string{".lean"}, Comment: CommentDash, BlockComment: [2]string{"/-", "-/"}, quotes: `"`},
	{ID: 78, Name: "Hack", Extensions: []string{".hack", ".hh"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true, ParenConditions: true},
	{ID: 79, Name: "ActionScript", Extensions: []string{".as"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true, ParenConditions: true},
	{ID: 80, Name: "Haxe", Extensions: []string{".hx"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true, ParenConditions: true},
	{ID: 81, Name: "Ballerina", Extensions: []string{".bal"}, Comment: CommentSlash, Block: BlockBraces, Semicolons: true},
	{ID: 82, Name: "Chapel", Extensions: []string{".chpl"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces, Semicolons: true},
	{ID: 83, Name: "Pony", Extensions: []string{".pony"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockEnd},
	{ID: 84, Name: "Red", Extensions: []string{".red", ".reds"}, Comment: CommentSemicolon, quotes: `"`},
	{ID: 85, Name: "Rebol", Extensions: []string{".r3", ".reb"}, Comment: CommentSemicolon, quotes: `"`},
	{ID: 86, Name: "Io", Extensions: []string{".io"}, Comment: CommentHash, BlockComment: cBlock},
	{ID: 87, Name: "Mojo", Extensions: []string{".mojo"}, Comment: CommentHash, Block: BlockIndent},
	{ID: 88, Name: "Odin", Extensions: []string{".odin"}, Comment: CommentSlash, BlockComment: cBlock, Block: BlockBraces},
	{ID: 89, Name: "Gleam", Extensions: []string{".gleam"}, Comment: CommentSlash, Block: BlockBraces, quotes: `"`},
	{ID: 90, Name: "Carbon", Extensions: []string{".carbon"}, Comment: CommentSlash, Block: BlockBraces, Semicolons: true, ParenConditions: true},
	{ID: 91, Name: "Haml", Extensions: []string{".haml"}, Comment: CommentBang},
	{ID: 92, Name: "Pug", Extensions: []string{".pug", ".jade"}, Comment: CommentSlash},
	{ID: 93, Name: "Dockerfile", Extensions: []string{".dockerfile"}, Comment: CommentHash},
	{ID: 94, Name: "Makefile", Extensions: []string{".mk", ".mak"}, Comment: CommentHash},
	{ID: 95, Name: "CMake", Extensions: []string{".cmake"}, Comment: CommentHash, BlockComment: [2]string{"#[[", "]]"}},
	{ID: 96, Name: "GraphQL", Extensions: []string{".graphql", ".gql"}, Comment: CommentHash},
	{ID: 97, Name: "Protocol Buffers", Extensions: []string{".proto"}, Comment: CommentSlash, BlockComment: cBlock, Semicolons: true},
	{ID: 98, Name: "Terraform", Extensions: []string{".tf", ".tfvars", ".hcl"}, Comment: CommentHash, BlockComment: cBlock},
	{ID: 99, Name: "Nix", Extensions: []string{".nix"}, Comment: CommentHash, BlockComment: cBlock},
	{ID: 100, Name: "WebAssembly Text", Extensions: []string{".wat", ".wast"}, Comment: CommentSemicolon, BlockComment: [2]string{"(;", ";)"}, quotes: `"`},
}
