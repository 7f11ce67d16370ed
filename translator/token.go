package translator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokWord tokenKind = iota
	tokNumber
	tokString
	tokComment
	tokPunct
	tokSpace
	tokNewline
)

type token struct {
	kind tokenKind
	text string
	// block is set on comments written with delimiters rather than a line marker.
	block bool
	// sub marks keywords produced by substitution.
	sub bool
}

// operators are matched longest first.
var operators = []string{
	"...", "..<", "<<=", ">>=", "===", "!==", "**=", "//=", "<=>",
	"->", "=>", "::", ":=", "==", "!=", "<=", ">=", "&&", "||", "++", "--",
	"+=", "-=", "*=", "/=", "%=", "..", "<<", ">>", "**", "//", "?.", "??",
}

func isWordStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isWordPart(r rune) bool {
	return isWordStart(r) || unicode.IsDigit(r)
}

// tokenize splits src into tokens using lang's comment and quote rules.
// Concatenating the token texts yields src again.
func tokenize(src string, lang *Language) []token {
	var (
		toks      []token
		lineStart = true
	)
	emit := func(kind tokenKind, text string) {
		toks = append(toks, token{kind: kind, text: text})
	}

	for i := 0; i < len(src); {
		rest := src[i:]
		r, size := utf8.DecodeRuneInString(rest)

		switch {
		case r == '\n':
			emit(tokNewline, "\n")
			i++
			lineStart = true
			continue
		case r == ' ' || r == '\t' || r == '\r' || r == '\f':
			j := i
			for j < len(src) && strings.IndexByte(" \t\r\f", src[j]) >= 0 {
				j++
			}
			emit(tokSpace, src[i:j])
			i = j
			continue
		}

		if n := blockCommentLen(rest, lang); n > 0 {
			toks = append(toks, token{kind: tokComment, text: rest[:n], block: true})
			i += n
			lineStart = false
			continue
		}
		if lineComment(rest, lang, lineStart) {
			n := strings.IndexByte(rest, '\n')
			if n < 0 {
				n = len(rest)
			}
			emit(tokComment, rest[:n])
			i += n
			continue
		}
		lineStart = false

		switch {
		case strings.ContainsRune(lang.quotes, r) && r < utf8.RuneSelf:
			n := stringLen(rest)
			emit(tokString, rest[:n])
			i += n
		case isWordStart(r):
			j := i + size
			for j < len(src) {
				r2, s2 := utf8.DecodeRuneInString(src[j:])
				if !isWordPart(r2) {
					break
				}
				j += s2
			}
			emit(tokWord, src[i:j])
			i = j
		case unicode.IsDigit(r):
			j := i + size
			for j < len(src) {
				c := src[j]
				if c == '.' {
					if j+1 < len(src) && src[j+1] >= '0' && src[j+1] <= '9' {
						j++
						continue
					}
					break
				}
				if c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
					j++
					continue
				}
				break
			}
			emit(tokNumber, src[i:j])
			i = j
		default:
			n := size
			for _, op := range operators {
				if strings.HasPrefix(rest, op) {
					n = len(op)
					break
				}
			}
			emit(tokPunct, rest[:n])
			i += n
		}
	}
	return toks
}

// lineComment reports whether a line comment starts at s.
func lineComment(s string, lang *Language, lineStart bool) bool {
	marker := string(lang.Comment)
	switch lang.Comment {
	case "", CommentBlock:
		return false
	case CommentStar:
		return lineStart && strings.HasPrefix(s, marker)
	case CommentRem:
		if !lineStart || len(s) < 3 || !strings.EqualFold(s[:3], marker) {
			return false
		}
		return len(s) == 3 || s[3] == ' ' || s[3] == '\t' || s[3] == '\n' || s[3] == '\r'
	}
	return strings.HasPrefix(s, marker)
}

// blockCommentLen returns the length of a delimited comment starting at s,
// or zero. Unterminated comments run to the end of input.
func blockCommentLen(s string, lang *Language) int {
	open, close := lang.BlockComment[0], lang.BlockComment[1]
	if open == "" || !strings.HasPrefix(s, open) {
		return 0
	}
	end := strings.Index(s[len(open):], close)
	if end < 0 {
		return len(s)
	}
	return len(open) + end + len(close)
}

// stringLen returns the length of the string literal starting at s. Triple
// quoted and backtick strings may span lines, other strings end at the line
// break when unterminated.
func stringLen(s string) int {
	q := s[0]
	if len(s) >= 3 && s[1] == q && s[2] == q {
		delim := s[:3]
		end := strings.Index(s[3:], delim)
		if end < 0 {
			return len(s)
		}
		return 3 + end + 3
	}

	multiline := q == '`'
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if !multiline {
				i++
			}
		case q:
			return i + 1
		case '\n':
			if !multiline {
				return i
			}
		}
	}
	return len(s)
}

func render(toks []token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.text)
	}
	return b.String()
}

// trimSpace drops leading and trailing whitespace tokens.
func trimSpace(toks []token) []token {
	for len(toks) > 0 && toks[0].kind == tokSpace {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].kind == tokSpace {
		toks = toks[:len(toks)-1]
	}
	return toks
}

// code returns toks without whitespace.
func code(toks []token) []token {
	out := make([]token, 0, len(toks))
	for _, t := range toks {
		if t.kind != tokSpace {
			out = append(out, t)
		}
	}
	return out
}
