package i18n

// AppMessages holds application-level translatable strings
type AppMessages struct {
	AppDescription     string
	AppLongDescription string

	// Version command messages
	VersionTitle           string
	VersionLabel           string
	GoVersionLabel         string
	PlatformLabel          string
	CodecsTitle            string
	CGOLabel               string
	PerformanceFastMessage string
	PerformanceSlowMessage string
	PerformanceSlowAdvice  string
	VersionCmdShort        string
	VersionCmdLong         string

	// Global flags
	FlagLang    string
	FlagVerbose string
	FlagNoColor string
	ErrorLang   string
}

// English app messages
var EnglishAppMessages = AppMessages{
	AppDescription: "Translate source code between languages and compress files",
	AppLongDescription: `CodeAlchemist is a menu driven tool with two features.

It rewrites source files from one programming language into another by
keyword and block syntax substitution, and it compresses files or folders
into ZIP, RAR, 7Z, GZIP, BZIP2, XZ, TAR, LZ4, ZSTD or Brotli archives.

Run it without arguments to open the interactive menu.`,

	VersionTitle:           "CodeAlchemist",
	VersionLabel:           "Version",
	GoVersionLabel:         "Go Version",
	PlatformLabel:          "Platform",
	CodecsTitle:            "Codec implementations:",
	CGOLabel:               "CGO codecs",
	PerformanceFastMessage: "Some codecs use the faster CGO implementation",
	PerformanceSlowMessage: "All codecs use the portable pure Go implementation",
	PerformanceSlowAdvice:  "For better performance, rebuild with -tags cgo_compression and liblzma/libzstd installed",
	VersionCmdShort:        "Show version information",
	VersionCmdLong:         "Display version information including codec implementation details",

	FlagLang:    "interface language (en, zh)",
	FlagVerbose: "print diagnostic logs",
	FlagNoColor: "disable coloured output",
	ErrorLang:   "Unsupported interface language: %s",
}

// Chinese app messages
var ChineseAppMessages = AppMessages{
	AppDescription: "在编程语言之间转换源代码并压缩文件",
	AppLongDescription: `CodeAlchemist 是一个菜单驱动的工具，提供两项功能。

它通过关键字和代码块语法替换，将源文件从一种编程语言改写为另一种，
并可将文件或文件夹压缩为 ZIP、RAR、7Z、GZIP、BZIP2、XZ、TAR、LZ4、ZSTD 或 Brotli 归档。

不带参数运行即可打开交互式菜单。`,

	VersionTitle:           "CodeAlchemist",
	VersionLabel:           "版本",
	GoVersionLabel:         "Go 版本",
	PlatformLabel:          "平台",
	CodecsTitle:            "压缩算法实现:",
	CGOLabel:               "CGO 编解码器",
	PerformanceFastMessage: "部分压缩算法使用高性能 CGO 实现",
	PerformanceSlowMessage: "所有压缩算法使用标准 Pure Go 实现",
	PerformanceSlowAdvice:  "安装 liblzma/libzstd 并使用 -tags cgo_compression 重新构建可获得更好的性能",
	VersionCmdShort:        "显示版本信息",
	VersionCmdLong:         "显示版本信息，包括压缩算法实现详情",

	FlagLang:    "界面语言 (en, zh)",
	FlagVerbose: "输出诊断日志",
	FlagNoColor: "禁用彩色输出",
	ErrorLang:   "不支持的界面语言: %s",
}
