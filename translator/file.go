package translator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/codealchemist/codealchemist/common/credits"
	"github.com/codealchemist/codealchemist/constant"
)

// Result describes a translated file.
type Result struct {
	Source string    `json:"source"`
	Output string    `json:"output"`
	From   *Language `json:"-"`
	To     *Language `json:"-"`
	Lines  int       `json:"lines"`
	// Code is the text written to Output.
	Code string `json:"-"`
}

// CreditHeader returns the attribution block in to's comment syntax.
func CreditHeader(to *Language) string {
	if to.Comment == CommentBlock && to.BlockComment[0] != "" && to.BlockComment[0] != "/*" {
		return credits.Block(to.BlockComment[0], to.BlockComment[1])
	}
	return credits.Header(string(to.Comment))
}

// OutputPath returns where TranslateFile writes the translation of path.
func OutputPath(path string, to *Language) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)
	return filepath.Join(filepath.Dir(path), stem+constant.TranslatedSuffix+to.Ext())
}

// className turns a file stem into an identifier usable as a class name.
func className(stem string) string {
	var b strings.Builder
	for _, r := range stem {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	name := b.String()
	if name == "" || unicode.IsDigit([]rune(name)[0]) {
		name = "_" + name
	}
	return name
}

// TranslateFile translates the file at path into the language with ID
// targetID. The source language is taken from the file extension and the
// result is written next to the source as <stem>_translated<ext>.
func TranslateFile(path string, targetID int) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}

	ext := filepath.Ext(path)
	from, ok := ByExtension(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownExtension, ext)
	}
	to, ok := ByID(targetID)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownLanguage, targetID)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	src := strings.ToValidUTF8(string(data), "")

	out := OutputPath(path, to)
	stem := strings.TrimSuffix(filepath.Base(out), filepath.Ext(out))
	code := CreditHeader(to) + translate(src, from, to, className(stem))

	if err := os.WriteFile(out, []byte(code), 0644); err != nil {
		return nil, fmt.Errorf("failed to write translation: %w", err)
	}

	return &Result{
		Source: path,
		Output: out,
		From:   from,
		To:     to,
		Lines:  strings.Count(code, "\n"),
		Code:   code,
	}, nil
}
