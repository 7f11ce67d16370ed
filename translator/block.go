package translator

import "strings"

// stmt is one source line after block structure has been recovered.
type stmt struct {
	depth int
	toks  []token
	// comment is a trailing comment and gap the whitespace before it.
	comment *token
	gap     string

	lead    Concept
	leadEnd int

	blank bool
	// opens is set when the statement introduces a nested block, cont when
	// it continues the block structure of the previous sibling (else, elif).
	opens bool
	cont  bool
	// contLine marks lines that continue an unfinished statement, continued
	// marks statements that carry on past this line.
	contLine  bool
	continued bool

	text string
	drop bool
}

func (s *stmt) commentOnly() bool {
	return !s.blank && len(s.toks) == 0 && s.comment != nil
}

type srcLine struct {
	indent  string
	toks    []token
	comment *token
	gap     string
}

func splitLines(toks []token) []srcLine {
	var (
		lines []srcLine
		cur   []token
	)
	flush := func() {
		var l srcLine
		if len(cur) > 0 && cur[0].kind == tokSpace {
			l.indent = cur[0].text
			cur = cur[1:]
		}
		cur = trimSpace(cur)
		if n := len(cur); n > 0 && cur[n-1].kind == tokComment {
			c := cur[n-1]
			l.comment = &c
			cur = cur[:n-1]
			if m := len(cur); m > 0 && cur[m-1].kind == tokSpace {
				l.gap = cur[m-1].text
			}
			cur = trimSpace(cur)
		}
		l.toks = cur
		lines = append(lines, l)
		cur = nil
	}
	for _, t := range toks {
		if t.kind == tokNewline {
			flush()
			continue
		}
		cur = append(cur, t)
	}
	flush()
	return lines
}

func indentWidth(s string) int {
	w := 0
	for _, r := range s {
		if r == '\t' {
			w += 8 - w%8
		} else {
			w++
		}
	}
	return w
}

func bracketBalance(toks []token, braces bool) int {
	n := 0
	for _, t := range toks {
		if t.kind != tokPunct {
			continue
		}
		switch t.text {
		case "(", "[":
			n++
		case ")", "]":
			n--
		case "{":
			if braces {
				n++
			}
		case "}":
			if braces {
				n--
			}
		}
	}
	return n
}

func isPunct(t token, text string) bool {
	return t.kind == tokPunct && t.text == text
}

func isWord(t token, text string) bool {
	return t.kind == tokWord && t.text == text
}

// stripSemicolon drops a trailing statement terminator.
func stripSemicolon(toks []token) []token {
	toks = trimSpace(toks)
	for len(toks) > 0 && isPunct(toks[len(toks)-1], ";") {
		toks = trimSpace(toks[:len(toks)-1])
	}
	return toks
}

var contWords = map[string]bool{
	"except": true, "finally": true, "catch": true, "rescue": true, "ensure": true,
}

func (s *stmt) continuesBlock() bool {
	if s.lead == ConceptElse || s.lead == ConceptElif {
		return true
	}
	return len(s.toks) > 0 && s.toks[0].kind == tokWord && contWords[s.toks[0].text]
}

// parseBlocks recovers nesting depth from lines according to the source
// language's block style.
func parseBlocks(lines []srcLine, from *Language) []stmt {
	p := &blockParser{from: from}
	for _, l := range lines {
		p.line(l)
	}
	return p.out
}

type blockParser struct {
	from    *Language
	out     []stmt
	depth   int
	bracket int

	// indentation based sources
	widths      []int
	pendingOpen bool
}

func (p *blockParser) line(l srcLine) {
	s := stmt{toks: l.toks, comment: l.comment, gap: l.gap}

	if len(l.toks) == 0 {
		s.blank = l.comment == nil
		s.depth = p.depth
		if p.pendingOpen && !s.blank {
			s.depth++
		}
		p.out = append(p.out, s)
		return
	}

	if p.bracket > 0 {
		s.contLine = true
		s.depth = p.lastDepth()
		p.bracket += bracketBalance(l.toks, p.from.Block != BlockBraces)
		if p.from.Block == BlockBraces && isPunct(s.toks[len(s.toks)-1], "{") && p.bracket <= 0 {
			s.toks = trimSpace(s.toks[:len(s.toks)-1])
			s.opens = true
			p.depth++
		}
		s.continued = p.bracket > 0
		p.out = append(p.out, s)
		return
	}

	switch p.from.Block {
	case BlockIndent:
		p.indentLine(&s, l)
	case BlockEnd:
		p.endLine(&s)
	default:
		p.braceLine(&s)
	}
}

func (p *blockParser) lastDepth() int {
	for i := len(p.out) - 1; i >= 0; i-- {
		if !p.out[i].blank && !p.out[i].commentOnly() {
			return p.out[i].depth
		}
	}
	return 0
}

func (p *blockParser) finish(s *stmt) {
	s.lead, s.leadEnd = p.from.syntax.lead(s.toks)
	p.bracket = bracketBalance(s.toks, p.from.Block != BlockBraces)
	if p.bracket < 0 {
		p.bracket = 0
	}
	s.continued = p.bracket > 0
}

func (p *blockParser) indentLine(s *stmt, l srcLine) {
	if len(p.widths) == 0 {
		p.widths = []int{0}
	}
	w := indentWidth(l.indent)
	if p.pendingOpen && w > p.widths[len(p.widths)-1] {
		p.widths = append(p.widths, w)
	} else {
		for len(p.widths) > 1 && w < p.widths[len(p.widths)-1] {
			p.widths = p.widths[:len(p.widths)-1]
		}
	}
	p.pendingOpen = false
	p.depth = len(p.widths) - 1
	s.depth = p.depth

	if n := len(s.toks); isPunct(s.toks[n-1], ":") {
		s.toks = trimSpace(s.toks[:n-1])
		s.opens = true
		p.pendingOpen = true
	}
	p.finish(s)
	s.cont = s.continuesBlock()
	p.out = append(p.out, *s)
}

func (p *blockParser) braceLine(s *stmt) {
	closed := 0
	for len(s.toks) > 0 && isPunct(s.toks[0], "}") {
		s.toks = trimSpace(s.toks[1:])
		closed++
	}
	p.depth -= closed
	if p.depth < 0 {
		p.depth = 0
	}

	// a lone "{" opens the previous statement's block
	if len(s.toks) == 1 && isPunct(s.toks[0], "{") {
		for i := len(p.out) - 1; i >= 0; i-- {
			if !p.out[i].blank && !p.out[i].commentOnly() {
				p.out[i].opens = true
				break
			}
		}
		p.depth++
		if s.comment != nil {
			s.toks = nil
			s.depth = p.depth
			p.out = append(p.out, *s)
		}
		return
	}

	s.toks = stripSemicolon(s.toks)
	if len(s.toks) == 0 {
		if s.comment != nil {
			s.depth = p.depth
			p.out = append(p.out, *s)
		}
		return
	}

	s.depth = p.depth
	if n := len(s.toks); isPunct(s.toks[n-1], "{") {
		s.toks = trimSpace(s.toks[:n-1])
		s.opens = true
		p.depth++
	}
	p.finish(s)
	s.cont = closed > 0 && s.opens || s.continuesBlock()
	p.out = append(p.out, *s)
}

var endOpeners = map[string]bool{
	"unless": true, "until": true, "case": true, "begin": true, "module": true,
}

func (p *blockParser) endLine(s *stmt) {
	if isWord(s.toks[0], "end") {
		p.depth--
		if p.depth < 0 {
			p.depth = 0
		}
		rest := trimSpace(s.toks[1:])
		if len(rest) == 0 || len(code(rest)) == 1 && code(rest)[0].kind == tokPunct {
			if s.comment != nil {
				s.toks = nil
				s.depth = p.depth
				p.out = append(p.out, *s)
			}
			return
		}
		s.toks = rest
	}

	p.finish(s)
	s.cont = s.continuesBlock()
	s.depth = p.depth
	if s.cont {
		s.depth--
		if s.depth < 0 {
			s.depth = 0
		}
		s.opens = true
		p.out = append(p.out, *s)
		return
	}

	last := s.toks[len(s.toks)-1]
	oneLiner := isWord(last, "end")
	switch {
	case oneLiner:
	case s.lead == ConceptFunction, s.lead == ConceptClass, s.lead == ConceptIf,
		s.lead == ConceptWhile, s.lead == ConceptFor:
		s.opens = true
	case s.toks[0].kind == tokWord && endOpeners[s.toks[0].text]:
		s.opens = true
	case isWord(last, "do"), isWord(last, "then"), isPunct(last, "|") && hasWord(s.toks, "do"):
		s.opens = true
	case hasWord(s.toks, "function"):
		s.opens = true
	}
	if s.opens {
		p.depth++
	}
	p.out = append(p.out, *s)
}

func hasWord(toks []token, w string) bool {
	for _, t := range toks {
		if isWord(t, w) {
			return true
		}
	}
	return false
}

// stripTrailingWord removes a trailing then/do from end-style headers.
func stripTrailingWord(toks []token, words ...string) []token {
	toks = trimSpace(toks)
	if n := len(toks); n > 0 && toks[n-1].kind == tokWord {
		for _, w := range words {
			if strings.EqualFold(toks[n-1].text, w) {
				return trimSpace(toks[:n-1])
			}
		}
	}
	return toks
}
