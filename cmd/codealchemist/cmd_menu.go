package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"github.com/codealchemist/codealchemist/archive"
	"github.com/codealchemist/codealchemist/common/credits"
	"github.com/codealchemist/codealchemist/common/i18n"
	"github.com/codealchemist/codealchemist/compression"
	"github.com/codealchemist/codealchemist/constant"
	"github.com/codealchemist/codealchemist/translator"
)

const textWidth = 72

// runMenu shows the main menu until the user exits. Each action gets its
// own interrupt context so Ctrl-C during a long compression returns here.
func runMenu(ctx context.Context) {
	msg := i18n.I18nMsg.Menu
	printIntro()

	for {
		var choice int
		err := survey.AskOne(&survey.Select{
			Message: msg.MainPrompt,
			Options: []string{msg.OptionTranslate, msg.OptionCompress, msg.OptionAbout, msg.OptionExit},
		}, &choice)
		if errors.Is(err, terminal.InterruptErr) {
			fmt.Println(msg.Goodbye)
			return
		}
		if err != nil {
			fatalf(i18n.I18nMsg.Common.ErrorPromptFailed, err)
		}

		switch choice {
		case 0:
			menuTranslate()
		case 1:
			actx, stop := signal.NotifyContext(context.WithoutCancel(ctx), os.Interrupt)
			menuCompress(actx)
			stop()
		case 2:
			printAbout()
		default:
			fmt.Println(msg.Goodbye)
			return
		}
		fmt.Println()
	}
}

func printIntro() {
	msg := i18n.I18nMsg.Menu
	banner := color.New(color.FgCyan, color.Bold)
	rule := strings.Repeat("=", 48)

	banner.Println(rule)
	banner.Printf("  %s %s\n", credits.ToolName, constant.Version)
	fmt.Printf("  %s\n", msg.IntroTagline)
	banner.Println(rule)
	fmt.Println(wordwrap.String(msg.IntroHint, textWidth))
	fmt.Println()
}

func printAbout() {
	msg := i18n.I18nMsg.Menu
	color.New(color.FgCyan, color.Bold).Println(msg.AboutTitle)
	fmt.Println(wordwrap.String(msg.AboutText, textWidth))
	fmt.Println()
	keyValueTable(os.Stdout, [][]string{
		{msg.AboutDeveloper, credits.Developer},
		{msg.AboutTelegram, "@" + credits.Telegram},
	})
	fmt.Printf(msg.AboutContact+"\n", credits.Telegram)

	var ignored string
	_ = survey.AskOne(&survey.Input{Message: msg.PressEnter}, &ignored)
}

// promptFailed reports a prompt error. Interrupts silently return to the menu.
func promptFailed(err error) {
	if errors.Is(err, terminal.InterruptErr) {
		return
	}
	printError(i18n.I18nMsg.Common.ErrorPromptFailed, err)
}

// suggestPaths completes file names for path prompts.
func suggestPaths(toComplete string) []string {
	files, _ := filepath.Glob(cleanPath(toComplete) + "*")
	return files
}

func askPath(message string, fileOnly bool) (string, error) {
	var path string
	err := survey.AskOne(&survey.Input{
		Message: message,
		Suggest: suggestPaths,
	}, &path, survey.WithValidator(existingPath(fileOnly)))
	return cleanPath(path), err
}

func menuTranslate() {
	msg := i18n.I18nMsg.Translate

	path, err := askPath(msg.PromptPath, true)
	if err != nil {
		promptFailed(err)
		return
	}
	from, ok := translator.ByExtension(filepath.Ext(path))
	if !ok {
		printError(msg.ErrorUnknownExtension, path, translator.ErrUnknownExtension)
		return
	}
	infoColor.Printf(msg.DetectedSource+"\n", from.Name)

	langs := translator.Languages()
	options := make([]string, len(langs))
	for i, l := range langs {
		options[i] = fmt.Sprintf("%3d. %s (%s)", l.ID, l.Name, l.Ext())
	}
	var idx int
	if err := survey.AskOne(&survey.Select{
		Message:  msg.PromptTarget,
		Options:  options,
		PageSize: 15,
	}, &idx); err != nil {
		promptFailed(err)
		return
	}

	res, err := translateFile(path, langs[idx])
	if err != nil {
		printError(msg.ErrorFailed, err)
		return
	}
	printTranslation(res)

	var show bool
	if err := survey.AskOne(&survey.Confirm{Message: msg.PromptPreview}, &show); err != nil {
		promptFailed(err)
		return
	}
	if show {
		preview(os.Stdout, res.Code, res.To.Ext())
	}
}

func menuCompress(ctx context.Context) {
	msg := i18n.I18nMsg.Compress

	formats := archive.Formats()
	options := []string{msg.OptionBack}
	for _, f := range formats {
		options = append(options, fmt.Sprintf("%d. %s (%s)", f, f, f.Extension(false)))
	}
	var idx int
	if err := survey.AskOne(&survey.Select{
		Message:  msg.PromptFormat,
		Options:  options,
		PageSize: len(options),
	}, &idx); err != nil {
		promptFailed(err)
		return
	}
	if idx == 0 {
		return
	}
	f := formats[idx-1]

	path, err := askPath(msg.PromptPath, false)
	if err != nil {
		promptFailed(err)
		return
	}

	opts := archive.Options{Format: f}
	if f.SupportsPassword() {
		var protect bool
		if err := survey.AskOne(&survey.Confirm{Message: msg.PromptSetPassword}, &protect); err != nil {
			promptFailed(err)
			return
		}
		if protect {
			err := survey.AskOne(&survey.Password{Message: msg.PromptPassword}, &opts.Password,
				survey.WithValidator(func(ans interface{}) error {
					if fmt.Sprint(ans) == "" {
						return errors.New(msg.ErrorPasswordEmpty)
					}
					return nil
				}))
			if err != nil {
				promptFailed(err)
				return
			}
		}
	}

	levels := []compression.Level{compression.LevelDefault, compression.LevelFast, compression.LevelBest}
	var level int
	if err := survey.AskOne(&survey.Select{
		Message: msg.PromptLevel,
		Options: []string{msg.LevelDefault, msg.LevelFast, msg.LevelBest},
	}, &level); err != nil {
		promptFailed(err)
		return
	}
	opts.Level = levels[level]

	debugf("compressing %s as %s, level %d, password %v", path, f, opts.Level, opts.Password != "")
	res, err := compressWithProgress(ctx, path, opts, true)
	if err != nil {
		if errors.Is(err, archive.ErrToolNotFound) {
			printError(msg.ErrorToolNotFound, f, strings.Join(archive.ToolsFor(f), ", "))
		}
		printError(msg.ErrorFailed, err)
		return
	}
	printCompressResult(res)
}
