package translator

import "strings"

// commentBody strips the markers from a comment token.
func commentBody(t token, from *Language) string {
	if t.block {
		open, close := from.BlockComment[0], from.BlockComment[1]
		body := strings.TrimPrefix(t.text, open)
		return strings.TrimSuffix(body, close)
	}
	marker := string(from.Comment)
	if len(t.text) >= len(marker) {
		return t.text[len(marker):]
	}
	return ""
}

// convertComment rewrites a comment token in to's syntax.
func convertComment(t token, from, to *Language) string {
	if from == to {
		return t.text
	}
	body := commentBody(t, from)
	marker := string(to.Comment)
	open, close := to.BlockComment[0], to.BlockComment[1]
	hasLine := to.Comment != "" && to.Comment != CommentBlock

	switch {
	case t.block && open != "":
		return open + body + close
	case t.block && hasLine:
		lines := strings.Split(strings.Trim(body, "\n"), "\n")
		for i, l := range lines {
			lines[i] = marker + l
		}
		return strings.Join(lines, "\n")
	case hasLine:
		return marker + body
	case open != "":
		return open + body + " " + close
	}
	return t.text
}

// convertComments only rewrites comment markers, leaving code untouched.
func convertComments(src string, from, to *Language) string {
	if from == to {
		return src
	}
	toks := tokenize(src, from)
	for i, t := range toks {
		if t.kind == tokComment {
			toks[i].text = convertComment(t, from, to)
		}
	}
	return render(toks)
}
