package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/codealchemist/codealchemist/common/i18n"
	"github.com/codealchemist/codealchemist/translator"
)

var (
	translateTo      string
	translatePreview bool
	translateJSON    bool
)

func initTranslateCmd() {
	translateCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Translate.Use,
		Short: i18n.I18nMsg.Translate.Short,
		Long:  i18n.I18nMsg.Translate.Long,
		Args:  cobra.ExactArgs(1),
		Run:   runTranslate,
	}

	translateCmd.Flags().StringVarP(&translateTo, "to", "t", "", i18n.I18nMsg.Translate.FlagTo)
	translateCmd.Flags().BoolVarP(&translatePreview, "preview", "p", false, i18n.I18nMsg.Translate.FlagPreview)
	translateCmd.Flags().BoolVarP(&translateJSON, "json", "j", false, i18n.I18nMsg.Common.FlagJSON)
	_ = translateCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) {
	start := time.Now()
	defer func() {
		if !translateJSON {
			fmt.Printf(i18n.I18nMsg.Common.ElapsedTime+"\n", time.Since(start))
		}
	}()

	to, err := translator.Lookup(translateTo)
	if err != nil {
		fatalf(i18n.I18nMsg.Translate.ErrorUnknownTarget, err)
	}
	debugf("target %s (id %d)", to.Name, to.ID)

	res, err := translateFile(cleanPath(args[0]), to)
	if err != nil {
		fatalf(i18n.I18nMsg.Translate.ErrorFailed, err)
	}

	if translateJSON {
		data, err := json.MarshalIndent(struct {
			*translator.Result
			From string `json:"from"`
			To   string `json:"to"`
		}{res, res.From.Name, res.To.Name}, "", "    ")
		if err != nil {
			fatalf(i18n.I18nMsg.Common.ErrorFailedToMarshalJSON, err)
		}
		fmt.Println(string(data))
		return
	}

	printTranslation(res)
	if translatePreview {
		preview(os.Stdout, res.Code, res.To.Ext())
	}
}

// translateFile runs the translation and logs what the translator picked.
func translateFile(path string, to *translator.Language) (*translator.Result, error) {
	res, err := translator.TranslateFile(path, to.ID)
	if err != nil {
		return nil, err
	}
	debugf("translated %s: %s -> %s, keyword tables %v/%v",
		res.Source, res.From.Name, res.To.Name, res.From.HasKeywords(), res.To.HasKeywords())
	return res, nil
}

func printTranslation(res *translator.Result) {
	printSuccess(i18n.I18nMsg.Translate.Success, res.Source, res.From.Name, res.Output, res.To.Name, res.Lines)
	if res.From != res.To && (!res.From.HasKeywords() || !res.To.HasKeywords()) {
		noteColor.Println(i18n.I18nMsg.Translate.NoKeywordTable)
	}
}
