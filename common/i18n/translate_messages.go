package i18n

// TranslateMessages holds translate command and menu strings
type TranslateMessages struct {
	Use   string
	Short string
	Long  string

	FlagTo      string
	FlagPreview string

	PromptPath     string
	PromptTarget   string
	PromptPreview  string
	DetectedSource string

	ErrorUnknownExtension string
	ErrorUnknownTarget    string
	ErrorFailed           string
	Success               string
	NoKeywordTable        string

	LanguagesUse     string
	LanguagesShort   string
	LanguagesLong    string
	HeaderID         string
	HeaderName       string
	HeaderExtensions string
	HeaderComment    string
	HeaderBlocks     string
	HeaderKeywords   string
	TotalLanguages   string
	NoMatchingLangs  string
	KeywordsFull     string
	KeywordsComments string
}

// English translate messages
var EnglishTranslateMessages = TranslateMessages{
	Use:   "translate <source file>",
	Short: "Translate a source file into another language",
	Long: `Translate a source file into another programming language.

The source language is detected from the file extension. The result is
written next to the source as <name>_translated<target extension>.`,

	FlagTo:      "target language (ID, name or extension)",
	FlagPreview: "print the translated code with syntax highlighting",

	PromptPath:     "Path of the file to translate:",
	PromptTarget:   "Translate into:",
	PromptPreview:  "Show the translated code?",
	DetectedSource: "Detected source language: %s",

	ErrorUnknownExtension: "Cannot detect the language of %s: %v",
	ErrorUnknownTarget:    "Unknown target language: %v",
	ErrorFailed:           "Translation failed: %v",
	Success:               "Translated %s (%s) to %s (%s), %d lines",
	NoKeywordTable:        "Note: no keyword table for this language pair, only comments were converted",

	LanguagesUse:     "languages [filter]",
	LanguagesShort:   "List supported programming languages",
	LanguagesLong:    "List the languages the translator knows, optionally filtered by a fuzzy name match.",
	HeaderID:         "ID",
	HeaderName:       "Language",
	HeaderExtensions: "Extensions",
	HeaderComment:    "Comment",
	HeaderBlocks:     "Blocks",
	HeaderKeywords:   "Translation",
	TotalLanguages:   "Total %d languages",
	NoMatchingLangs:  "No language matches %q",
	KeywordsFull:     "full",
	KeywordsComments: "comments",
}

// Chinese translate messages
var ChineseTranslateMessages = TranslateMessages{
	Use:   "translate <源文件>",
	Short: "将源文件转换为另一种语言",
	Long: `将源文件转换为另一种编程语言。

源语言根据文件扩展名检测。结果写入源文件旁边，
文件名为 <名称>_translated<目标扩展名>。`,

	FlagTo:      "目标语言 (ID、名称或扩展名)",
	FlagPreview: "以语法高亮显示转换后的代码",

	PromptPath:     "要转换的文件路径:",
	PromptTarget:   "转换为:",
	PromptPreview:  "显示转换后的代码?",
	DetectedSource: "检测到的源语言: %s",

	ErrorUnknownExtension: "无法检测 %s 的语言: %v",
	ErrorUnknownTarget:    "未知的目标语言: %v",
	ErrorFailed:           "转换失败: %v",
	Success:               "已将 %s (%s) 转换为 %s (%s)，共 %d 行",
	NoKeywordTable:        "提示: 该语言组合没有关键字表，仅转换了注释",

	LanguagesUse:     "languages [过滤条件]",
	LanguagesShort:   "列出支持的编程语言",
	LanguagesLong:    "列出转换器支持的语言，可按名称模糊过滤。",
	HeaderID:         "ID",
	HeaderName:       "语言",
	HeaderExtensions: "扩展名",
	HeaderComment:    "注释",
	HeaderBlocks:     "代码块",
	HeaderKeywords:   "转换",
	TotalLanguages:   "共 %d 种语言",
	NoMatchingLangs:  "没有匹配 %q 的语言",
	KeywordsFull:     "完整",
	KeywordsComments: "仅注释",
}
