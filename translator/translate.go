package translator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Translate converts code written in from into to. The conversion is
// lexical: keywords, comment markers, block delimiters, loop headers and
// program wrappers are rewritten, everything else is carried over verbatim.
func Translate(code string, from, to *Language) string {
	return translate(code, from, to, "Main")
}

func translate(src string, from, to *Language, className string) string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	if from == to || from.syntax == nil || to.syntax == nil {
		return convertComments(src, from, to)
	}

	src = stripWrapper(src, from)
	stmts := parseBlocks(splitLines(tokenize(src, from)), from)

	t := &translation{from: from, to: to, declared: map[string]bool{}, locals: map[string]bool{}}
	for i := range stmts {
		t.rewrite(&stmts[i])
	}
	stmts = t.entryPoint(stmts, className)
	return wrap(strings.Join(t.emit(stmts), "\n"), to)
}

type translation struct {
	from, to *Language
	declared map[string]bool
	// locals holds parameters and loop variables of the current function.
	locals map[string]bool
}

var sigilLanguages = map[string]bool{"php": true, "perl": true, "powershell": true}

// sigils reports whether variable names need a $ added on the way out.
func (t *translation) sigils() bool {
	return sigilLanguages[t.to.key()] && !sigilLanguages[t.from.key()]
}

func (t *translation) enterFunction(header []token) {
	t.declared = map[string]bool{}
	t.locals = map[string]bool{}
	if t.sigils() {
		for _, name := range paramNames(header) {
			t.locals[name] = true
		}
	}
}

// paramNames returns the names declared in the first parameter list of
// toks: words followed by a separator, default or annotation, and not
// themselves a default value.
func paramNames(toks []token) []string {
	c := code(toks)
	start := -1
	for i, tk := range c {
		if isPunct(tk, "(") {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}
	var names []string
	depth := 0
	for i := start; i < len(c); i++ {
		tk := c[i]
		switch {
		case isPunct(tk, "("):
			depth++
			continue
		case isPunct(tk, ")"):
			depth--
			if depth == 0 {
				return names
			}
			continue
		}
		if depth != 1 || tk.kind != tokWord || i+1 >= len(c) {
			continue
		}
		if prev := c[i-1]; prev.kind != tokWord && !isPunct(prev, "(") && !isPunct(prev, ",") {
			continue
		}
		switch c[i+1].text {
		case ",", ")", "=", ":":
			names = append(names, strings.TrimPrefix(tk.text, "$"))
		}
	}
	return names
}

// variable reports whether the word at toks[i] names a known variable that
// should carry a sigil: not a member access and not a call.
func (t *translation) variable(toks []token, i int) bool {
	name := toks[i].text
	if strings.HasPrefix(name, "$") || !(t.declared[name] || t.locals[name]) {
		return false
	}
	for j := i - 1; j >= 0; j-- {
		if toks[j].kind == tokSpace {
			continue
		}
		if isPunct(toks[j], ".") || isPunct(toks[j], "->") {
			return false
		}
		break
	}
	for j := i + 1; j < len(toks); j++ {
		if toks[j].kind == tokSpace {
			continue
		}
		return !isPunct(toks[j], "(")
	}
	return true
}

func (t *translation) spell(c Concept, fallback string) string {
	if s, ok := t.to.Spelling(c); ok {
		return s
	}
	return fallback
}

func join(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

func (t *translation) rewrite(s *stmt) {
	if s.blank || len(s.toks) == 0 {
		return
	}
	toks := stripSemicolon(s.toks)
	if s.contLine {
		s.text = t.substitute(toks)
		t.terminate(s)
		return
	}

	if s.leadEnd > len(toks) {
		s.leadEnd = len(toks)
	}
	kw := render(toks[:s.leadEnd])
	rest := trimSpace(toks[s.leadEnd:])
	if t.from.Block == BlockEnd {
		switch s.lead {
		case ConceptIf, ConceptElif, ConceptWhile, ConceptFor:
			rest = stripTrailingWord(rest, "then", "do")
		}
	}

	switch s.lead {
	case ConceptIf, ConceptElif, ConceptWhile:
		s.text = t.condition(s.lead, kw, rest)
	case ConceptFor:
		s.text = t.forLoop(kw, toks, rest)
	case ConceptElse:
		s.text = join(t.spell(ConceptElse, kw), t.substitute(rest))
	case ConceptFunction:
		t.enterFunction(rest)
		if t.from.syntax.explicitSelf && !t.to.syntax.explicitSelf {
			rest = t.dropSelfParam(rest)
		}
		s.text = join(t.spell(ConceptFunction, kw), t.substitute(rest))
	case ConceptClass, ConceptImport:
		s.text = join(t.spell(s.lead, kw), t.substitute(rest))
	case ConceptPass:
		if p, ok := t.to.Spelling(ConceptPass); ok && p != "" {
			s.text = p
		} else {
			s.drop = true
		}
	case ConceptVar, ConceptConst:
		if name, ok := declaredName(rest); ok {
			t.declared[name] = true
			s.text = join(t.spell(s.lead, kw), t.substitute(rest))
		} else if c := code(rest); s.opens && len(c) >= 2 && c[0].kind == tokWord && isPunct(c[1], "(") {
			// typed function definitions such as "int main(void)"
			t.enterFunction(rest)
			s.text = join(t.spell(ConceptFunction, kw), t.substitute(rest))
		} else {
			s.text = t.substitute(toks)
		}
	default:
		s.text = t.statement(toks)
	}
	t.terminate(s)
}

// declaredName returns the name a declaration introduces when toks look
// like "name = ...", "name: type ..." or a bare "name".
func declaredName(toks []token) (string, bool) {
	c := code(toks)
	if len(c) == 0 || c[0].kind != tokWord {
		return "", false
	}
	if len(c) == 1 {
		return c[0].text, true
	}
	switch c[1].text {
	case "=", ":", ",":
		return c[0].text, true
	}
	return "", false
}

func (t *translation) statement(toks []token) string {
	c := code(toks)
	if len(c) >= 2 && c[0].kind == tokWord && c[1].kind == tokPunct {
		name := c[0].text
		switch {
		case c[1].text == ":=" && t.from.key() == "go" && t.to.key() != "go":
			t.declared[name] = true
			idx := indexOf(toks, c[1])
			if t.sigils() {
				name = sigil(name)
			}
			return join(t.spell(ConceptVar, ""), name, "=", t.substitute(trimSpace(toks[idx+1:])))
		case c[1].text == "=" && !t.declared[name] && !t.isKeyword(name):
			fromVar, _ := t.from.Spelling(ConceptVar)
			toVar, _ := t.to.Spelling(ConceptVar)
			t.declared[name] = true
			if fromVar == "" && toVar != "" {
				return toVar + " " + t.substitute(toks)
			}
		}
	}
	return t.substitute(toks)
}

func indexOf(toks []token, want token) int {
	for i, tk := range toks {
		if tk == want {
			return i
		}
	}
	return -1
}

func (t *translation) isKeyword(w string) bool {
	for _, p := range t.from.syntax.patterns {
		if len(p.parts) == 1 && p.parts[0] == w {
			return true
		}
	}
	return false
}

func unwrapParens(toks []token) []token {
	toks = trimSpace(toks)
	if len(toks) < 2 || !isPunct(toks[0], "(") || !isPunct(toks[len(toks)-1], ")") {
		return toks
	}
	depth := 0
	for i, tk := range toks {
		if tk.kind != tokPunct {
			continue
		}
		switch tk.text {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 && i != len(toks)-1 {
				return toks
			}
		}
	}
	return trimSpace(toks[1 : len(toks)-1])
}

func (t *translation) condition(c Concept, kw string, rest []token) string {
	cond := t.substitute(unwrapParens(rest))
	if cond == "" {
		cond = t.spell(ConceptTrue, "true")
	}
	if t.to.ParenConditions {
		cond = "(" + cond + ")"
	}
	out := join(t.spell(c, kw), cond)
	trail := ConceptThen
	if c == ConceptWhile {
		trail = ConceptDo
	}
	if w, _ := t.to.Spelling(trail); w != "" {
		out += " " + w
	}
	return out
}

func (t *translation) forLoop(kw string, toks, rest []token) string {
	header := render(trimSpace(toks))
	if t.from.Block == BlockEnd {
		header = render(stripTrailingWord(toks, "then", "do"))
	}

	var out string
	if l, ok := parseLoop(header, t.from); ok {
		out = t.renderLoop(l)
	} else {
		// languages spelling while as for, such as Go
		fw, _ := t.from.Spelling(ConceptFor)
		ww, _ := t.from.Spelling(ConceptWhile)
		if fw == ww {
			return t.condition(ConceptWhile, kw, rest)
		}
		inner := t.substitute(unwrapParens(rest))
		if t.to.ParenConditions {
			inner = "(" + inner + ")"
		}
		out = join(t.spell(ConceptFor, kw), inner)
	}
	if w, _ := t.to.Spelling(ConceptDo); w != "" {
		out += " " + w
	}
	return out
}

func (t *translation) renderLoop(l loop) string {
	v := l.Var
	if !sigilLanguages[t.to.key()] {
		v = strings.TrimPrefix(v, "$")
	}
	if t.sigils() {
		t.locals[v] = true
	}
	sx := t.to.syntax
	if l.Counted && sx.counted != nil {
		return sx.counted(v, t.expr(l.Start), t.expr(l.End))
	}
	iter := l.Iter
	if l.Counted {
		iter = "range(" + l.Start + ", " + l.End + ")"
	}
	if sx.each != nil {
		return sx.each(v, t.expr(iter))
	}
	fw := t.spell(ConceptFor, "for")
	if t.to.ParenConditions {
		return fw + " (" + v + " in " + t.expr(iter) + ")"
	}
	return fw + " " + v + " in " + t.expr(iter)
}

func (t *translation) expr(src string) string {
	return t.substitute(trimSpace(tokenize(src, t.from)))
}

// dropSelfParam removes a leading self parameter from a parameter list.
func (t *translation) dropSelfParam(toks []token) []token {
	self, ok := t.from.Spelling(ConceptSelf)
	if !ok {
		return toks
	}
	for i, tk := range toks {
		if !isPunct(tk, "(") {
			continue
		}
		j := i + 1
		for j < len(toks) && toks[j].kind == tokSpace {
			j++
		}
		if j >= len(toks) || !isWord(toks[j], self) {
			return toks
		}
		k := j + 1
		for k < len(toks) && (toks[k].kind == tokSpace || isPunct(toks[k], ",")) {
			k++
		}
		out := append([]token{}, toks[:i+1]...)
		return append(out, toks[k:]...)
	}
	return toks
}

// substitute renders toks with expression keywords and comments converted.
func (t *translation) substitute(toks []token) string {
	var out []token
	for i := 0; i < len(toks); {
		tk := toks[i]
		switch tk.kind {
		case tokComment:
			out = append(out, token{kind: tokComment, text: convertComment(tk, t.from, t.to)})
			i++
			continue
		case tokWord, tokPunct:
		default:
			out = append(out, tk)
			i++
			continue
		}

		c, end := t.from.syntax.inline(toks, i)
		if c == 0 {
			if tk.kind == tokWord && t.sigils() && t.variable(toks, i) {
				tk.text = sigil(tk.text)
			}
			out = append(out, tk)
			i++
			continue
		}
		repl, known := t.to.Spelling(c)
		switch {
		case !known:
			out = append(out, toks[i:end]...)
		case repl == "":
			if end < len(toks) && toks[end].kind == tokSpace {
				end++
			}
		default:
			out = append(out, token{kind: tokWord, text: repl, sub: true})
		}
		i = end
	}
	return render(fixSpacing(out))
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func wordy(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// fixSpacing keeps substituted keywords from gluing onto neighbours, and
// drops the space after a symbolic negation.
func fixSpacing(toks []token) []token {
	out := make([]token, 0, len(toks))
	for i, tk := range toks {
		if tk.kind == tokSpace && i > 0 && toks[i-1].sub && toks[i-1].text == "!" {
			continue
		}
		if tk.sub && len(out) > 0 {
			prev := out[len(out)-1]
			if prev.kind != tokSpace && wordy(lastRune(prev.text)) && wordy(firstRune(tk.text)) {
				out = append(out, token{kind: tokSpace, text: " "})
			}
		}
		out = append(out, tk)
		if tk.sub && i+1 < len(toks) {
			next := toks[i+1]
			if (next.kind == tokWord || next.kind == tokNumber || next.kind == tokString) && wordy(lastRune(tk.text)) {
				out = append(out, token{kind: tokSpace, text: " "})
			}
		}
	}
	return out
}

var noTerminator = []string{";", ",", "{", "}", "(", "[", "\\", "+", "-", "*", "/", "&&", "||", "=", ":", "."}

// terminate adds a statement terminator where the target expects one.
func (t *translation) terminate(s *stmt) {
	if !t.to.Semicolons || s.opens || s.continued || s.drop || s.text == "" {
		return
	}
	first := firstRune(s.text)
	if first == '@' || first == '#' {
		return
	}
	for _, suffix := range noTerminator {
		if strings.HasSuffix(s.text, suffix) {
			return
		}
	}
	s.text += ";"
}

// entryPoint moves loose top level statements into the target's main
// function, and wraps the program in a class where the target requires it.
func (t *translation) entryPoint(stmts []stmt, className string) []stmt {
	sx := t.to.syntax
	if sx.main == "" || t.from.syntax.main != "" || t.from.syntax.class != "" {
		return stmts
	}

	var decls, body, pending []stmt
	inDecl := true
	for _, s := range stmts {
		if s.blank || s.commentOnly() {
			pending = append(pending, s)
			continue
		}
		if s.depth == 0 && !s.contLine && !s.cont {
			switch s.lead {
			case ConceptFunction, ConceptClass, ConceptImport:
				inDecl = true
			default:
				inDecl = false
			}
		}
		if inDecl {
			decls = append(decls, pending...)
			decls = append(decls, s)
		} else {
			body = append(body, pending...)
			body = append(body, s)
		}
		pending = nil
	}
	if inDecl {
		decls = append(decls, pending...)
	} else {
		body = append(body, pending...)
	}
	for len(body) > 0 && body[0].blank {
		body = body[1:]
	}

	base := 0
	var out []stmt
	if sx.class != "" {
		out = append(out, stmt{text: fmt.Sprintf(sx.class, className), opens: true})
		base = 1
	}
	out = append(out, shift(decls, base)...)
	if len(body) > 0 {
		if len(decls) > 0 {
			out = append(out, stmt{blank: true})
		}
		out = append(out, stmt{depth: base, text: sx.main, opens: true})
		out = append(out, shift(body, base+1)...)
	}
	return out
}

func shift(stmts []stmt, n int) []stmt {
	for i := range stmts {
		stmts[i].depth += n
	}
	return stmts
}

type frame struct {
	depth int
	body  bool
}

// emit lays the statements out in the target's block style.
func (t *translation) emit(stmts []stmt) []string {
	var (
		out      []string
		open     []frame
		lastCode = -1
	)
	unit := t.to.syntax.indent
	if unit == "" {
		unit = "    "
	}
	ind := func(d int) string { return strings.Repeat(unit, d) }
	pass, _ := t.to.Spelling(ConceptPass)

	insert := func(lines ...string) {
		at := lastCode + 1
		out = append(out[:at], append(lines, out[at:]...)...)
		lastCode += len(lines)
	}
	closeTo := func(depth int, cont bool) bool {
		merged := false
		for len(open) > 0 && open[len(open)-1].depth >= depth {
			f := open[len(open)-1]
			open = open[:len(open)-1]
			if !f.body && t.to.Block == BlockIndent && pass != "" {
				insert(ind(f.depth+1) + pass)
			}
			if cont && f.depth == depth {
				merged = true
				continue
			}
			switch t.to.Block {
			case BlockBraces:
				insert(ind(f.depth) + "}")
			case BlockEnd:
				insert(ind(f.depth) + "end")
			}
		}
		return merged
	}

	for _, s := range stmts {
		switch {
		case s.blank:
			out = append(out, "")
			continue
		case s.drop:
			continue
		case s.commentOnly():
			out = append(out, ind(s.depth)+convertComment(*s.comment, t.from, t.to))
			continue
		}

		depth := s.depth
		merged := false
		if s.contLine {
			depth++
		} else {
			merged = closeTo(s.depth, s.cont)
		}

		line := s.text
		if s.opens {
			switch t.to.Block {
			case BlockBraces:
				line += " {"
			case BlockIndent:
				line += ":"
			}
		}
		if merged && t.to.Block == BlockBraces {
			line = "} " + line
		}
		if s.comment != nil {
			gap := s.gap
			if gap == "" {
				gap = " "
			}
			line += gap + convertComment(*s.comment, t.from, t.to)
		}

		out = append(out, ind(depth)+line)
		lastCode = len(out) - 1
		if len(open) > 0 {
			open[len(open)-1].body = true
		}
		if s.opens {
			open = append(open, frame{depth: s.depth})
		}
	}
	closeTo(0, false)

	for i, l := range out {
		out[i] = strings.TrimRight(l, " \t")
	}
	return out
}

var (
	reGoPackage = regexp.MustCompile(`(?m)^package\s+\w+\s*$`)
	reGoImports = regexp.MustCompile(`(?ms)^import\s*\(.*?^\)\s*$`)
	reGoImport  = regexp.MustCompile(`(?m)^import\s+(?:\w+\s+)?"[^"]*"\s*$`)
	reInclude   = regexp.MustCompile(`(?m)^\s*#\s*include\s*[<"].*$`)
	reUsingStd  = regexp.MustCompile(`(?m)^\s*using\s+namespace\s+std\s*;\s*$`)
)

// stripWrapper removes boilerplate the target wrapper would add back.
func stripWrapper(src string, from *Language) string {
	switch from.key() {
	case "go":
		src = reGoPackage.ReplaceAllString(src, "")
		src = reGoImports.ReplaceAllString(src, "")
		src = reGoImport.ReplaceAllString(src, "")
	case "php":
		src = strings.TrimSpace(src)
		src = strings.TrimPrefix(src, "<?php")
		src = strings.TrimSuffix(src, "?>")
	case "c", "c++":
		src = reInclude.ReplaceAllString(src, "")
		src = reUsingStd.ReplaceAllString(src, "")
	}
	return strings.Trim(src, "\n")
}

// wrap adds the target's file level boilerplate.
func wrap(body string, to *Language) string {
	body = strings.Trim(body, "\n")
	switch to.key() {
	case "go":
		head := "package main\n\n"
		if strings.Contains(body, "fmt.") {
			head += "import \"fmt\"\n\n"
		}
		body = head + body
	case "php":
		body = "<?php\n\n" + body + "\n\n?>"
	case "c":
		body = "#include <stdio.h>\n#include <stdbool.h>\n\n" + body
	case "c++":
		body = "#include <cstdio>\n#include <iostream>\n#include <string>\n\n" + body
	}
	return body + "\n"
}
