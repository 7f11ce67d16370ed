// Package credits renders the attribution blocks stamped on generated output.
package credits

import (
	"fmt"
	"strings"
)

const (
	ToolName  = "CodeAlchemist"
	Developer = "mero"
	Telegram  = "qp4rm"

	// ReadmeName is the archive entry carrying Readme().
	ReadmeName = "CREDITS.txt"

	rule = "========================================"
)

// Header returns the credit block for a source file whose line comments start
// with style. Unknown styles, and "/*", produce a C block comment.
func Header(style string) string {
	var b strings.Builder
	switch style {
	case "#", "//", "--", "%", ";", "'", "*", "REM", "!":
		for _, line := range body() {
			fmt.Fprintf(&b, "%s %s\n", style, line)
		}
	default:
		return Block("/*", "*/")
	}
	b.WriteString("\n")
	return b.String()
}

// Block returns the credit block wrapped in the given comment delimiters.
func Block(open, close string) string {
	var b strings.Builder
	b.WriteString(open + "\n")
	for _, line := range body() {
		fmt.Fprintf(&b, " * %s\n", line)
	}
	b.WriteString(" " + close + "\n\n")
	return b.String()
}

func body() []string {
	return []string{
		rule,
		"Tool: " + ToolName,
		"Developer: " + Developer,
		"Telegram: @" + Telegram,
		rule,
	}
}

// Readme is the text of the CREDITS.txt entry added to archives.
func Readme() string {
	return rule + "\n" +
		ToolName + "\n" +
		rule + "\n" +
		"Developer: " + Developer + "\n" +
		"Telegram: @" + Telegram + "\n" +
		rule + "\n" +
		"This archive was created using " + ToolName + "\n" +
		"A powerful code translation and compression tool\n" +
		rule + "\n"
}
