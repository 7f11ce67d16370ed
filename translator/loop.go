package translator

import (
	"regexp"
	"strings"
)

var (
	reCLoop     = regexp.MustCompile(`^for\s*\(\s*(?:(?:my|let|var|int|long|size_t|auto|const)\s+)?(\$?\w+)\s*=\s*(.+?)\s*;\s*\$?\w+\s*(<=|<|-lt|-le)\s*(.+?)\s*;\s*\$?\w+\s*(?:\+\+|\+=\s*1)\s*\)$`)
	reGoLoop    = regexp.MustCompile(`^for\s+(\w+)\s*:=\s*(.+?)\s*;\s*\w+\s*(<=|<)\s*(.+?)\s*;\s*\w+\s*\+\+$`)
	reGoRange   = regexp.MustCompile(`^for\s+(?:\w+)\s*,\s*(\w+)\s*:=\s*range\s+(.+)$`)
	reLuaNum    = regexp.MustCompile(`^for\s+(\w+)\s*=\s*(.+?)\s*,\s*(.+)$`)
	reLuaEach   = regexp.MustCompile(`^for\s+\w+\s*,\s*(\w+)\s+in\s+i?pairs\s*\((.+)\)$`)
	reForOf     = regexp.MustCompile(`^for\s*\(\s*(?:const|let|var)\s+(\w+)\s+of\s+(.+)\)$`)
	reForColon  = regexp.MustCompile(`^for\s*\(\s*(?:(?:final|const)\s+)?[\w<>\[\]:&]+\s+&?(\w+)\s*:\s*(.+)\)$`)
	reForeachIn = regexp.MustCompile(`^foreach\s*\(\s*(?:\w+\s+)?(\$?\w+)\s+in\s+(.+)\)$`)
	rePHPEach   = regexp.MustCompile(`^foreach\s*\(\s*(.+?)\s+as\s+(\$\w+)\s*\)$`)
	rePerlEach  = regexp.MustCompile(`^foreach\s+my\s+(\$\w+)\s*\((.+)\)$`)
	reScala     = regexp.MustCompile(`^for\s*\(\s*(\w+)\s*<-\s*(.+)\)$`)
	reParenIn   = regexp.MustCompile(`^for\s*\(\s*(\w+)\s+in\s+(.+)\)$`)
	reIn        = regexp.MustCompile(`^for\s+(\w+)\s+in\s+(.+)$`)

	reRange     = regexp.MustCompile(`^range\s*\((.*)\)$`)
	reUntil     = regexp.MustCompile(`^(.+?)\s+until\s+(.+)$`)
	reTo        = regexp.MustCompile(`^(.+?)\s+to\s+(.+)$`)
	reHalfOpen  = regexp.MustCompile(`^(.+?)\s*\.\.<\s*(.+)$`)
	reTriple    = regexp.MustCompile(`^(.+?)\s*\.\.\.\s*(.+)$`)
	reInclusive = regexp.MustCompile(`^(.+?)\s*\.\.=\s*(.+)$`)
	reDouble    = regexp.MustCompile(`^(.+?)\s*\.\.\s*(.+)$`)
	reColon     = regexp.MustCompile(`^(\w+)\s*:\s*(.+)$`)
)

// exclusive turns an inclusive upper bound into an exclusive one.
func exclusive(e string) string {
	if t := strings.TrimSuffix(e, " - 1"); t != e {
		return t
	}
	if t := strings.TrimSuffix(e, "-1"); t != e {
		return strings.TrimSpace(t)
	}
	return e + " + 1"
}

// inclusive turns an exclusive upper bound into an inclusive one.
func inclusive(e string) string {
	if t := strings.TrimSuffix(e, " + 1"); t != e {
		return t
	}
	return e + " - 1"
}

// splitArgs splits a call argument list on top level commas.
func splitArgs(s string) []string {
	var (
		args  []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(args, strings.TrimSpace(s[start:]))
}

// parseLoop recognises counted and for-each loop headers in the common
// spellings. header is the source text of the statement.
func parseLoop(header string, from *Language) (loop, bool) {
	h := strings.TrimSpace(header)
	inclusiveDots := from.key() == "ruby" || from.key() == "kotlin"

	if m := reCLoop.FindStringSubmatch(h); m != nil {
		return counted(m[1], m[2], m[3], m[4]), true
	}
	if m := reGoLoop.FindStringSubmatch(h); m != nil {
		return counted(m[1], m[2], m[3], m[4]), true
	}
	if m := reGoRange.FindStringSubmatch(h); m != nil {
		return loop{Var: m[1], Iter: m[2]}, true
	}
	if m := reLuaEach.FindStringSubmatch(h); m != nil {
		return loop{Var: m[1], Iter: m[2]}, true
	}
	if m := reLuaNum.FindStringSubmatch(h); m != nil && !strings.Contains(h, " in ") {
		return loop{Var: m[1], Start: m[2], End: exclusive(m[3]), Counted: true}, true
	}
	if m := reForOf.FindStringSubmatch(h); m != nil {
		return loop{Var: m[1], Iter: m[2]}, true
	}
	if m := reForColon.FindStringSubmatch(h); m != nil {
		return loop{Var: m[1], Iter: m[2]}, true
	}
	if m := reForeachIn.FindStringSubmatch(h); m != nil {
		return loop{Var: m[1], Iter: m[2]}, true
	}
	if m := rePHPEach.FindStringSubmatch(h); m != nil {
		return loop{Var: m[2], Iter: m[1]}, true
	}
	if m := rePerlEach.FindStringSubmatch(h); m != nil {
		return loop{Var: m[1], Iter: m[2]}, true
	}
	if m := reScala.FindStringSubmatch(h); m != nil {
		if r := reUntil.FindStringSubmatch(m[2]); r != nil {
			return loop{Var: m[1], Start: r[1], End: r[2], Counted: true}, true
		}
		if r := reTo.FindStringSubmatch(m[2]); r != nil {
			return loop{Var: m[1], Start: r[1], End: exclusive(r[2]), Counted: true}, true
		}
		return loop{Var: m[1], Iter: m[2]}, true
	}

	var v, iter string
	if m := reParenIn.FindStringSubmatch(h); m != nil {
		v, iter = m[1], m[2]
	} else if m := reIn.FindStringSubmatch(h); m != nil {
		v, iter = m[1], m[2]
	} else {
		return loop{}, false
	}
	iter = strings.TrimSpace(iter)
	if strings.HasPrefix(iter, "(") && strings.HasSuffix(iter, ")") && !strings.Contains(iter[1:len(iter)-1], "(") {
		iter = strings.TrimSpace(iter[1 : len(iter)-1])
	}

	if m := reRange.FindStringSubmatch(iter); m != nil {
		switch args := splitArgs(m[1]); len(args) {
		case 1:
			return loop{Var: v, Start: "0", End: args[0], Counted: true}, true
		case 2:
			return loop{Var: v, Start: args[0], End: args[1], Counted: true}, true
		}
		return loop{Var: v, Iter: iter}, true
	}
	if m := reUntil.FindStringSubmatch(iter); m != nil {
		return loop{Var: v, Start: m[1], End: m[2], Counted: true}, true
	}
	if m := reHalfOpen.FindStringSubmatch(iter); m != nil {
		return loop{Var: v, Start: m[1], End: m[2], Counted: true}, true
	}
	if m := reTriple.FindStringSubmatch(iter); m != nil {
		return loop{Var: v, Start: m[1], End: m[2], Counted: true}, true
	}
	if m := reInclusive.FindStringSubmatch(iter); m != nil {
		return loop{Var: v, Start: m[1], End: exclusive(m[2]), Counted: true}, true
	}
	if m := reDouble.FindStringSubmatch(iter); m != nil {
		end := m[2]
		if inclusiveDots {
			end = exclusive(end)
		}
		return loop{Var: v, Start: m[1], End: end, Counted: true}, true
	}
	if from.key() == "julia" || from.key() == "r" {
		if m := reColon.FindStringSubmatch(iter); m != nil {
			return loop{Var: v, Start: m[1], End: exclusive(strings.Trim(m[2], "()")), Counted: true}, true
		}
	}
	return loop{Var: v, Iter: iter}, true
}

func counted(v, start, op, end string) loop {
	if op == "<=" || op == "-le" {
		end = exclusive(end)
	}
	return loop{Var: v, Start: start, End: end, Counted: true}
}
