package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/alecthomas/chroma/quick"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/codealchemist/codealchemist/common/i18n"
)

var (
	errColor  = color.New(color.FgRed)
	okColor   = color.New(color.FgGreen)
	infoColor = color.New(color.FgCyan)
	noteColor = color.New(color.FgYellow)
)

// debugf logs diagnostics when --verbose is set.
func debugf(format string, v ...any) {
	if verbose {
		log.Printf(format, v...)
	}
}

// fatalf prints a red error and exits.
func fatalf(format string, v ...any) {
	log.Fatal(errColor.Sprintf(format, v...))
}

// printError reports a failure without leaving the menu.
func printError(format string, v ...any) {
	errColor.Fprintf(os.Stderr, format+"\n", v...)
}

func printSuccess(format string, v ...any) {
	okColor.Printf(format+"\n", v...)
}

// formatSize converts bytes into a human-readable string.
func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1fGB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.1fMB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.1fKB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

func yesNo(b bool) string {
	if b {
		return i18n.I18nMsg.Common.Yes
	}
	return i18n.I18nMsg.Common.No
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	if !color.NoColor {
		colors := make([]tablewriter.Colors, len(header))
		for i := range colors {
			colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor}
		}
		table.SetHeaderColor(colors...)
	}
	return table
}

// keyValueTable renders label/value rows.
func keyValueTable(w io.Writer, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, row := range rows {
		if len(row) > 0 {
			row[0] = infoColor.Sprint(row[0])
		}
		table.Append(row)
	}
	table.Render()
}

// preview writes code highlighted for the language with the given file
// extension, falling back to plain text when the terminal has no colour.
func preview(w io.Writer, code, ext string) {
	if color.NoColor {
		fmt.Fprint(w, code)
		return
	}
	lexer := strings.TrimPrefix(ext, ".")
	if err := quick.Highlight(w, code, lexer, "terminal256", "monokai"); err != nil {
		debugf("highlight failed: %v", err)
		fmt.Fprint(w, code)
	}
	fmt.Fprintln(w)
}

// existingPath validates survey input naming an existing path. When fileOnly
// is set directories are rejected.
func existingPath(fileOnly bool) survey.Validator {
	return func(ans interface{}) error {
		p := strings.TrimSpace(fmt.Sprint(ans))
		if p == "" {
			return errors.New(i18n.I18nMsg.Common.ErrorPathRequired)
		}
		info, err := os.Stat(cleanPath(p))
		if err != nil {
			return fmt.Errorf(i18n.I18nMsg.Common.ErrorPathNotFound, p)
		}
		if fileOnly && info.IsDir() {
			return fmt.Errorf(i18n.I18nMsg.Common.ErrorPathIsDir, p)
		}
		return nil
	}
}

// cleanPath strips whitespace and the quotes terminals add to dropped paths.
func cleanPath(p string) string {
	p = strings.TrimSpace(p)
	if len(p) >= 2 && (p[0] == '"' || p[0] == '\'') && p[len(p)-1] == p[0] {
		p = p[1 : len(p)-1]
	}
	return p
}
