package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/codealchemist/codealchemist/common/i18n"
	"github.com/codealchemist/codealchemist/translator"
)

var languagesJSON bool

func initLanguagesCmd() {
	languagesCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Translate.LanguagesUse,
		Short: i18n.I18nMsg.Translate.LanguagesShort,
		Long:  i18n.I18nMsg.Translate.LanguagesLong,
		Args:  cobra.MaximumNArgs(1),
		Run:   runLanguages,
	}

	languagesCmd.Flags().BoolVarP(&languagesJSON, "json", "j", false, i18n.I18nMsg.Common.FlagJSON)

	rootCmd.AddCommand(languagesCmd)
}

// languageInfo is the JSON form of a registry entry.
type languageInfo struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
	Comment    string   `json:"comment"`
	Blocks     string   `json:"blocks"`
	Keywords   bool     `json:"keywords"`
}

func runLanguages(cmd *cobra.Command, args []string) {
	langs := translator.Languages()
	if len(args) == 1 {
		langs = filterLanguages(langs, args[0])
		if len(langs) == 0 {
			fatalf(i18n.I18nMsg.Translate.NoMatchingLangs, args[0])
		}
	}

	if languagesJSON {
		infos := make([]languageInfo, 0, len(langs))
		for _, l := range langs {
			infos = append(infos, languageInfo{
				ID:         l.ID,
				Name:       l.Name,
				Extensions: l.Extensions,
				Comment:    commentMarker(l),
				Blocks:     l.Block.String(),
				Keywords:   l.HasKeywords(),
			})
		}
		data, err := json.MarshalIndent(infos, "", "    ")
		if err != nil {
			fatalf(i18n.I18nMsg.Common.ErrorFailedToMarshalJSON, err)
		}
		fmt.Println(string(data))
		return
	}

	msg := i18n.I18nMsg.Translate
	table := newTable(os.Stdout, msg.HeaderID, msg.HeaderName, msg.HeaderExtensions,
		msg.HeaderComment, msg.HeaderBlocks, msg.HeaderKeywords)
	for _, l := range langs {
		support := msg.KeywordsComments
		if l.HasKeywords() {
			support = msg.KeywordsFull
		}
		table.Append([]string{
			strconv.Itoa(l.ID),
			l.Name,
			strings.Join(l.Extensions, " "),
			commentMarker(l),
			l.Block.String(),
			support,
		})
	}
	table.Render()
	fmt.Printf(msg.TotalLanguages+"\n", len(langs))
}

// filterLanguages keeps the languages whose name fuzzily matches query, or
// whose extension equals it.
func filterLanguages(langs []*translator.Language, query string) []*translator.Language {
	var out []*translator.Language
	for _, l := range langs {
		if fuzzy.MatchFold(query, l.Name) {
			out = append(out, l)
			continue
		}
		if ext, ok := translator.ByExtension(query); ok && ext == l {
			out = append(out, l)
		}
	}
	return out
}

func commentMarker(l *translator.Language) string {
	if l.Comment == translator.CommentBlock {
		return l.BlockComment[0] + " " + l.BlockComment[1]
	}
	return string(l.Comment)
}
