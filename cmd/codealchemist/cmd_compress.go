package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/codealchemist/codealchemist/archive"
	"github.com/codealchemist/codealchemist/common/i18n"
	"github.com/codealchemist/codealchemist/compression"
)

var (
	compressFormat   string
	compressPassword string
	compressOut      string
	compressLevel    int
	compressJSON     bool
)

func initCompressCmd() {
	compressCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Compress.Use,
		Short: i18n.I18nMsg.Compress.Short,
		Long:  i18n.I18nMsg.Compress.Long,
		Args:  cobra.ExactArgs(1),
		Run:   runCompress,
	}

	compressCmd.Flags().StringVarP(&compressFormat, "format", "f", "zip", i18n.I18nMsg.Compress.FlagFormat)
	compressCmd.Flags().StringVarP(&compressPassword, "password", "P", "", i18n.I18nMsg.Compress.FlagPassword)
	compressCmd.Flags().StringVarP(&compressOut, "out", "o", "", i18n.I18nMsg.Common.FlagOut)
	compressCmd.Flags().IntVarP(&compressLevel, "level", "l", 0, i18n.I18nMsg.Compress.FlagLevel)
	compressCmd.Flags().BoolVarP(&compressJSON, "json", "j", false, i18n.I18nMsg.Common.FlagJSON)

	rootCmd.AddCommand(compressCmd)
}

func runCompress(cmd *cobra.Command, args []string) {
	f, err := archive.ParseFormat(compressFormat)
	if err != nil {
		fatalf(i18n.I18nMsg.Compress.ErrorUnknownFormat, err)
	}

	opts := archive.Options{
		Format:    f,
		Password:  compressPassword,
		OutputDir: compressOut,
		Level:     compression.Level(compressLevel),
	}
	res, err := compressWithProgress(cmd.Context(), cleanPath(args[0]), opts, !compressJSON)
	if err != nil {
		if errors.Is(err, archive.ErrToolNotFound) {
			printError(i18n.I18nMsg.Compress.ErrorToolNotFound, f, strings.Join(archive.ToolsFor(f), ", "))
		}
		fatalf(i18n.I18nMsg.Compress.ErrorFailed, err)
	}

	if compressJSON {
		data, err := json.MarshalIndent(res, "", "    ")
		if err != nil {
			fatalf(i18n.I18nMsg.Common.ErrorFailedToMarshalJSON, err)
		}
		fmt.Println(string(data))
		return
	}
	printCompressResult(res)
}

// compressWithProgress runs archive.Compress with a progress bar rendered in
// the cmd layer.
func compressWithProgress(ctx context.Context, src string, opts archive.Options, show bool) (*archive.Result, error) {
	if !show {
		return archive.Compress(ctx, src, opts)
	}

	progress := mpb.NewWithContext(ctx, mpb.WithWidth(60))
	var bar *mpb.Bar

	opts.Progress = func(pi archive.ProgressInfo) {
		if bar == nil {
			bar = progress.AddBar(pi.Total,
				mpb.PrependDecorators(
					decor.Name(fmt.Sprintf("[%s]", pi.Format), decor.WCSyncSpaceR),
				),
				mpb.AppendDecorators(
					decor.Percentage(decor.WC{W: 5}),
					decor.CountersKibiByte(" | % .1f / % .1f"),
					decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 6}, decor.WCSyncSpace),
				),
			)
		}
		if delta := pi.Done - bar.Current(); delta > 0 {
			bar.IncrInt64(delta)
		}
		if pi.Stage == archive.StageDone {
			bar.SetTotal(pi.Total, true)
		}
	}

	res, err := archive.Compress(ctx, src, opts)
	if err != nil && bar != nil {
		bar.Abort(false)
	}
	progress.Wait()
	return res, err
}

func printCompressResult(res *archive.Result) {
	msg := i18n.I18nMsg.Compress
	printSuccess(msg.Success, res.OutputPath)
	keyValueTable(os.Stdout, [][]string{
		{msg.SummaryOutput, res.OutputPath},
		{msg.SummaryFormat, res.Format.String()},
		{msg.SummaryFiles, fmt.Sprint(res.Files)},
		{msg.SummaryInput, formatSize(res.InputBytes)},
		{msg.SummaryCompressed, formatSize(res.OutputBytes)},
		{msg.SummaryRatio, fmt.Sprintf("%.1f%%", res.Ratio()*100)},
		{msg.SummaryEntropy, fmt.Sprintf("%.2f bits/byte", res.Entropy)},
		{msg.SummaryEncrypted, yesNo(res.Encrypted)},
		{msg.SummaryElapsed, res.Elapsed.Round(1e6).String()},
	})
}
