package main

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/spf13/cobra"

	"github.com/codealchemist/codealchemist/common/i18n"
	"github.com/codealchemist/codealchemist/compression"
	"github.com/codealchemist/codealchemist/constant"
)

func initVersionCmd() {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: i18n.I18nMsg.App.VersionCmdShort,
		Long:  i18n.I18nMsg.App.VersionCmdLong,
		Args:  cobra.NoArgs,
		Run:   runVersion,
	}

	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	msg := i18n.I18nMsg.App
	fmt.Printf("%s\n", msg.VersionTitle)
	fmt.Printf("%s: %s(%s)\n", msg.VersionLabel, constant.Version, constant.BuildTime)
	fmt.Printf("%s: %s\n", msg.GoVersionLabel, runtime.Version())
	fmt.Printf("%s: %s/%s\n", msg.PlatformLabel, runtime.GOOS, runtime.GOARCH)

	fmt.Printf("\n%s\n", msg.CodecsTitle)
	implementations := compression.NewCodecManager().GetImplementationInfo()

	// Sort algorithms for consistent display
	types := make([]compression.CompressionType, 0, len(implementations))
	for t := range implementations {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, t := range types {
		fmt.Printf("  %-8s: %s\n", t, implementations[t])
	}

	fmt.Printf("\n")
	if cgo, _ := compression.GetBuildInfo()["cgo_enabled"].(bool); cgo {
		okColor.Printf("✅ %s\n", msg.PerformanceFastMessage)
	} else {
		noteColor.Printf("⚠️  %s\n", msg.PerformanceSlowMessage)
		fmt.Printf("💡 %s\n", msg.PerformanceSlowAdvice)
	}
}
