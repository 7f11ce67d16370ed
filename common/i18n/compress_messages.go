package i18n

// CompressMessages holds compress command and menu strings
type CompressMessages struct {
	Use   string
	Short string
	Long  string

	FlagFormat   string
	FlagPassword string
	FlagLevel    string

	PromptFormat      string
	OptionBack        string
	PromptPath        string
	PromptSetPassword string
	PromptPassword    string
	PromptLevel       string
	LevelFast         string
	LevelDefault      string
	LevelBest         string

	ErrorUnknownFormat string
	ErrorFailed        string
	ErrorToolNotFound  string
	ErrorPasswordEmpty string
	Success            string
	SummaryOutput      string
	SummaryFormat      string
	SummaryFiles       string
	SummaryInput       string
	SummaryCompressed  string
	SummaryRatio       string
	SummaryEntropy     string
	SummaryEncrypted   string
	SummaryElapsed     string

	FormatsUse      string
	FormatsShort    string
	FormatsLong     string
	HeaderNumber    string
	HeaderFormat    string
	HeaderFileExt   string
	HeaderFolderExt string
	HeaderPassword  string
	HeaderBackend   string
	BackendMissing  string
}

// English compress messages
var EnglishCompressMessages = CompressMessages{
	Use:   "compress <file or folder>",
	Short: "Compress a file or folder",
	Long: `Compress a file or folder into one of the supported archive formats.

The archive is written next to the input as CodeAlchemist.<extension>.
Folders are tarred first for the single stream formats (GZIP, BZIP2, XZ,
LZ4, ZSTD, Brotli). RAR and 7Z need the rar or 7zz/7z program on PATH.`,

	FlagFormat:   "archive format (number, name or extension)",
	FlagPassword: "encrypt the archive with a password (ZIP only)",
	FlagLevel:    "compression level from 1 (fast) to 9 (best), 0 for the codec default",

	PromptFormat:      "Choose a compression format:",
	OptionBack:        "0. Back",
	PromptPath:        "Path of the file or folder to compress:",
	PromptSetPassword: "Protect the archive with a password?",
	PromptPassword:    "Password:",
	PromptLevel:       "Compression level:",
	LevelFast:         "Fast",
	LevelDefault:      "Default",
	LevelBest:         "Best",

	ErrorUnknownFormat: "Unknown archive format: %v",
	ErrorFailed:        "Compression failed: %v",
	ErrorToolNotFound:  "Install one of these programs to create %s archives: %s",
	ErrorPasswordEmpty: "the password must not be empty",
	Success:            "Archive created: %s",
	SummaryOutput:      "Output",
	SummaryFormat:      "Format",
	SummaryFiles:       "Files",
	SummaryInput:       "Input size",
	SummaryCompressed:  "Archive size",
	SummaryRatio:       "Ratio",
	SummaryEntropy:     "Entropy",
	SummaryEncrypted:   "Encrypted",
	SummaryElapsed:     "Elapsed",

	FormatsUse:      "formats",
	FormatsShort:    "List supported archive formats",
	FormatsLong:     "List the archive formats with their file names, password support and backend.",
	HeaderNumber:    "No.",
	HeaderFormat:    "Format",
	HeaderFileExt:   "File",
	HeaderFolderExt: "Folder",
	HeaderPassword:  "Password",
	HeaderBackend:   "Backend",
	BackendMissing:  "not installed",
}

// Chinese compress messages
var ChineseCompressMessages = CompressMessages{
	Use:   "compress <文件或文件夹>",
	Short: "压缩文件或文件夹",
	Long: `将文件或文件夹压缩为支持的归档格式之一。

归档写入输入旁边，文件名为 CodeAlchemist.<扩展名>。
对于单流格式 (GZIP、BZIP2、XZ、LZ4、ZSTD、Brotli)，文件夹会先打包为 tar。
RAR 和 7Z 需要 PATH 中存在 rar 或 7zz/7z 程序。`,

	FlagFormat:   "归档格式 (编号、名称或扩展名)",
	FlagPassword: "使用密码加密归档 (仅 ZIP)",
	FlagLevel:    "压缩级别，1 (最快) 到 9 (最佳)，0 为默认",

	PromptFormat:      "选择压缩格式:",
	OptionBack:        "0. 返回",
	PromptPath:        "要压缩的文件或文件夹路径:",
	PromptSetPassword: "是否为归档设置密码?",
	PromptPassword:    "密码:",
	PromptLevel:       "压缩级别:",
	LevelFast:         "最快",
	LevelDefault:      "默认",
	LevelBest:         "最佳",

	ErrorUnknownFormat: "未知的归档格式: %v",
	ErrorFailed:        "压缩失败: %v",
	ErrorToolNotFound:  "创建 %s 归档需要安装以下程序之一: %s",
	ErrorPasswordEmpty: "密码不能为空",
	Success:            "归档已创建: %s",
	SummaryOutput:      "输出",
	SummaryFormat:      "格式",
	SummaryFiles:       "文件数",
	SummaryInput:       "输入大小",
	SummaryCompressed:  "归档大小",
	SummaryRatio:       "压缩比",
	SummaryEntropy:     "熵",
	SummaryEncrypted:   "已加密",
	SummaryElapsed:     "耗时",

	FormatsUse:      "formats",
	FormatsShort:    "列出支持的归档格式",
	FormatsLong:     "列出归档格式及其文件名、密码支持和实现方式。",
	HeaderNumber:    "编号",
	HeaderFormat:    "格式",
	HeaderFileExt:   "文件",
	HeaderFolderExt: "文件夹",
	HeaderPassword:  "密码",
	HeaderBackend:   "实现",
	BackendMissing:  "未安装",
}
