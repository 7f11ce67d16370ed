package translator

import (
	"sort"
	"strings"
)

// pattern is one spelling of a concept split into its non-space tokens.
type pattern struct {
	concept Concept
	parts   []string
}

// statement concepts only count at the start of a statement.
var statementConcepts = map[Concept]bool{
	ConceptFunction: true, ConceptClass: true, ConceptIf: true, ConceptElif: true,
	ConceptElse: true, ConceptFor: true, ConceptWhile: true, ConceptVar: true,
	ConceptConst: true, ConceptImport: true, ConceptPass: true,
	ConceptThen: true, ConceptDo: true,
}

func buildPatterns(l *Language) []pattern {
	var out []pattern
	for c, spelling := range l.Keywords {
		if c == ConceptThen || c == ConceptDo {
			continue
		}
		for _, alt := range strings.Split(spelling, ",") {
			alt = strings.TrimSpace(alt)
			if alt == "" {
				continue
			}
			var parts []string
			for _, t := range code(tokenize(alt, l)) {
				parts = append(parts, t.text)
			}
			out = append(out, pattern{concept: c, parts: parts})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].parts) != len(out[j].parts) {
			return len(out[i].parts) > len(out[j].parts)
		}
		return out[i].concept < out[j].concept
	})
	return out
}

// matchAt tries p against toks starting at i, skipping whitespace between
// parts. It returns the index just past the match, or -1.
func (p pattern) matchAt(toks []token, i int) int {
	for k, part := range p.parts {
		if k > 0 {
			for i < len(toks) && toks[i].kind == tokSpace {
				i++
			}
		}
		if i >= len(toks) || toks[i].text != part {
			return -1
		}
		if toks[i].kind != tokWord && toks[i].kind != tokPunct {
			return -1
		}
		i++
	}
	return i
}

// lead returns the concept a statement starts with and the token index just
// past its keyword.
func (s *syntax) lead(toks []token) (Concept, int) {
	for _, p := range s.patterns {
		if end := p.matchAt(toks, 0); end > 0 {
			return p.concept, end
		}
	}
	return 0, 0
}

// inline finds an expression-level concept at toks[i].
func (s *syntax) inline(toks []token, i int) (Concept, int) {
	if prev := prevCode(toks, i); prev != nil {
		switch prev.text {
		case ".", "->", "::", "?.":
			return 0, 0
		}
	}
	for _, p := range s.patterns {
		if statementConcepts[p.concept] {
			continue
		}
		if end := p.matchAt(toks, i); end > 0 {
			return p.concept, end
		}
	}
	return 0, 0
}

func prevCode(toks []token, i int) *token {
	for j := i - 1; j >= 0; j-- {
		if toks[j].kind != tokSpace {
			return &toks[j]
		}
	}
	return nil
}
