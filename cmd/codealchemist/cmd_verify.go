package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/codealchemist/codealchemist/archive"
	"github.com/codealchemist/codealchemist/common/i18n"
)

var verifyPassword string

func initVerifyCmd() {
	verifyCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Verify.Use,
		Short: i18n.I18nMsg.Verify.Short,
		Long:  i18n.I18nMsg.Verify.Long,
		Args:  cobra.ExactArgs(1),
		Run:   runVerify,
	}

	verifyCmd.Flags().StringVarP(&verifyPassword, "password", "P", "", i18n.I18nMsg.Verify.FlagPassword)

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) {
	path := cleanPath(args[0])

	res, err := archive.Verify(cmd.Context(), path, verifyPassword)
	if errors.Is(err, archive.ErrPasswordRequired) && isatty.IsTerminal(os.Stdin.Fd()) {
		var password string
		if perr := survey.AskOne(&survey.Password{Message: i18n.I18nMsg.Verify.PromptPassword}, &password); perr != nil {
			fatalf(i18n.I18nMsg.Common.ErrorPromptFailed, perr)
		}
		res, err = archive.Verify(cmd.Context(), path, password)
	}
	if err != nil {
		fatalf(i18n.I18nMsg.Verify.ErrorFailed, err)
	}

	printVerifyResult(res)
}

func printVerifyResult(res *archive.VerifyResult) {
	msg := i18n.I18nMsg.Verify
	printSuccess(msg.Success)
	keyValueTable(os.Stdout, [][]string{
		{msg.HeaderPath, res.Path},
		{msg.HeaderFormat, res.Format},
		{msg.HeaderEntries, fmt.Sprint(res.Entries)},
		{msg.HeaderBytes, formatSize(res.Bytes)},
		{msg.HeaderCrypt, yesNo(res.Encrypted)},
	})
}
