package i18n

// VerifyMessages holds verify command strings
type VerifyMessages struct {
	Use   string
	Short string
	Long  string

	FlagPassword   string
	PromptPassword string

	ErrorFailed   string
	Success       string
	HeaderPath    string
	HeaderFormat  string
	HeaderEntries string
	HeaderBytes   string
	HeaderCrypt   string
}

// English verify messages
var EnglishVerifyMessages = VerifyMessages{
	Use:   "verify <archive>",
	Short: "Check that an archive can be read back completely",
	Long: `Identify an archive and read every entry to the end.

Encrypted ZIP archives need the password they were created with.`,

	FlagPassword:   "password for encrypted ZIP archives",
	PromptPassword: "The archive is encrypted. Password:",

	ErrorFailed:   "Verification failed: %v",
	Success:       "Archive is readable",
	HeaderPath:    "Archive",
	HeaderFormat:  "Format",
	HeaderEntries: "Entries",
	HeaderBytes:   "Content size",
	HeaderCrypt:   "Encrypted",
}

// Chinese verify messages
var ChineseVerifyMessages = VerifyMessages{
	Use:   "verify <归档>",
	Short: "检查归档能否被完整读取",
	Long: `识别归档并完整读取每个条目。

加密的 ZIP 归档需要创建时使用的密码。`,

	FlagPassword:   "加密 ZIP 归档的密码",
	PromptPassword: "归档已加密，请输入密码:",

	ErrorFailed:   "校验失败: %v",
	Success:       "归档可以正常读取",
	HeaderPath:    "归档",
	HeaderFormat:  "格式",
	HeaderEntries: "条目数",
	HeaderBytes:   "内容大小",
	HeaderCrypt:   "已加密",
}
