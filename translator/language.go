// Package translator performs naive source-to-source translation by lexical
// keyword and block-syntax substitution between programming languages.
package translator

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var (
	ErrUnknownExtension = errors.New("unknown file extension")
	ErrUnknownLanguage  = errors.New("unknown language")
)

// CommentStyle is the marker that starts a line comment. CommentBlock marks
// languages that only have delimited comments.
type CommentStyle string

const (
	CommentHash      CommentStyle = "#"
	CommentSlash     CommentStyle = "//"
	CommentDash      CommentStyle = "--"
	CommentPercent   CommentStyle = "%"
	CommentSemicolon CommentStyle = ";"
	CommentQuote     CommentStyle = "'"
	CommentStar      CommentStyle = "*"
	CommentRem       CommentStyle = "REM"
	CommentBang      CommentStyle = "!"
	CommentBlock     CommentStyle = "/*"
)

// BlockStyle describes how a language delimits nested blocks.
type BlockStyle int

const (
	BlockNone BlockStyle = iota
	BlockBraces
	BlockIndent
	BlockEnd
)

func (b BlockStyle) String() string {
	switch b {
	case BlockBraces:
		return "braces"
	case BlockIndent:
		return "indent"
	case BlockEnd:
		return "end"
	default:
		return "none"
	}
}

// Language is one entry of the language registry.
type Language struct {
	ID         int
	Name       string
	Extensions []string
	Comment    CommentStyle
	// BlockComment holds the open and close delimiters, empty when the
	// language has none.
	BlockComment    [2]string
	Block           BlockStyle
	Semicolons      bool
	ParenConditions bool
	// Keywords maps concepts to this language's spelling. Alternatives are
	// separated by ",", the first one is used for output. An empty value
	// means the language has no such keyword.
	Keywords map[Concept]string

	quotes string
	syntax *syntax
}

func (l *Language) String() string {
	return l.Name
}

// Ext returns the primary file extension.
func (l *Language) Ext() string {
	if len(l.Extensions) == 0 {
		return ".txt"
	}
	return l.Extensions[0]
}

// HasKeywords reports whether structural translation is available for l.
func (l *Language) HasKeywords() bool {
	return len(l.Keywords) > 0
}

func (l *Language) key() string {
	return strings.ToLower(l.Name)
}

var (
	byID  = map[int]*Language{}
	byExt = map[string]*Language{}
)

func init() {
	for _, l := range registry {
		if _, dup := byID[l.ID]; dup {
			panic(fmt.Sprintf("translator: duplicate language id %d", l.ID))
		}
		byID[l.ID] = l

		for _, ext := range l.Extensions {
			ext = strings.ToLower(ext)
			if _, taken := byExt[ext]; !taken {
				byExt[ext] = l
			}
		}

		if l.quotes == "" {
			l.quotes = strings.ReplaceAll(`"'`, string(l.Comment), "")
		}
		if s, ok := syntaxes[l.key()]; ok {
			l.syntax = s
			l.Keywords = s.keywords
			s.patterns = buildPatterns(l)
		}
	}
	sort.Slice(registry, func(i, j int) bool { return registry[i].ID < registry[j].ID })
}

// Languages returns the registry ordered by ID.
func Languages() []*Language {
	out := make([]*Language, len(registry))
	copy(out, registry)
	return out
}

// ByID returns the language with the given menu number.
func ByID(id int) (*Language, bool) {
	l, ok := byID[id]
	return l, ok
}

// ByExtension returns the language owning ext. The leading dot is optional.
func ByExtension(ext string) (*Language, bool) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return nil, false
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	l, ok := byExt[ext]
	return l, ok
}

// Lookup resolves a user supplied language reference: an ID, a name, an
// extension, or failing those the closest fuzzy name match.
func Lookup(query string) (*Language, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownLanguage)
	}
	if id, err := strconv.Atoi(q); err == nil {
		if l, ok := ByID(id); ok {
			return l, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, q)
	}
	for _, l := range registry {
		if strings.EqualFold(l.Name, q) {
			return l, nil
		}
	}
	if l, ok := ByExtension(q); ok {
		return l, nil
	}

	names := make([]string, len(registry))
	for i, l := range registry {
		names[i] = l.Name
	}
	ranks := fuzzy.RankFindFold(q, names)
	if len(ranks) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, q)
	}
	sort.Sort(ranks)
	return registry[ranks[0].OriginalIndex], nil
}
