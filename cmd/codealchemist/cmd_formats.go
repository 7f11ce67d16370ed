package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/codealchemist/codealchemist/archive"
	"github.com/codealchemist/codealchemist/common/i18n"
	"github.com/codealchemist/codealchemist/compression"
)

func initFormatsCmd() {
	formatsCmd := &cobra.Command{
		Use:   i18n.I18nMsg.Compress.FormatsUse,
		Short: i18n.I18nMsg.Compress.FormatsShort,
		Long:  i18n.I18nMsg.Compress.FormatsLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printFormats()
		},
	}

	rootCmd.AddCommand(formatsCmd)
}

func printFormats() {
	msg := i18n.I18nMsg.Compress
	impls := compression.NewCodecManager().GetImplementationInfo()

	table := newTable(os.Stdout, msg.HeaderNumber, msg.HeaderFormat, msg.HeaderFileExt,
		msg.HeaderFolderExt, msg.HeaderPassword, msg.HeaderBackend)
	for _, f := range archive.Formats() {
		table.Append([]string{
			strconv.Itoa(int(f)),
			f.String(),
			archive.OutputName(f, false),
			archive.OutputName(f, true),
			yesNo(f.SupportsPassword()),
			formatBackend(f, impls),
		})
	}
	table.Render()
}

// formatBackend names the library or program producing f.
func formatBackend(f archive.Format, impls map[compression.CompressionType]string) string {
	switch {
	case f.External():
		tool, err := archive.LookupTool(archive.ToolsFor(f))
		if err != nil {
			return i18n.I18nMsg.Compress.BackendMissing
		}
		return tool
	case f == archive.FormatZIP:
		return "mholt/archives, yeka/zip (AES)"
	case f == archive.FormatTAR:
		return "mholt/archives"
	}
	if impl, ok := impls[f.Compression()]; ok {
		return impl
	}
	return f.Compression().String()
}
