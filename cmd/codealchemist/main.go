package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/codealchemist/codealchemist/common/i18n"
)

var (
	rootCmd *cobra.Command
	uiLang  string
	verbose bool
	noColor bool
)

func init() {
	i18n.InitLanguage()
	log.SetFlags(0)

	rootCmd = &cobra.Command{
		Use:   "codealchemist",
		Short: i18n.I18nMsg.App.AppDescription,
		Long:  i18n.I18nMsg.App.AppLongDescription,
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if uiLang != "" {
				lang, ok := i18n.ParseLanguage(uiLang)
				if !ok {
					fatalf(i18n.I18nMsg.App.ErrorLang, uiLang)
				}
				i18n.SetLanguage(lang)
			}
			if noColor {
				color.NoColor = true
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			runMenu(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVar(&uiLang, "lang", "", i18n.I18nMsg.App.FlagLang)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, i18n.I18nMsg.App.FlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, i18n.I18nMsg.App.FlagNoColor)

	initTranslateCmd()
	initLanguagesCmd()
	initCompressCmd()
	initFormatsCmd()
	initVerifyCmd()
	initVersionCmd()

	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)
}

// normalizeFlagName lets --no_color and --no-color name the same flag.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
