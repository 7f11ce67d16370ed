package i18n

// CommonMessages holds common translatable strings
type CommonMessages struct {
	// Error messages
	ErrorFailedToOpen        string
	ErrorFailedToMarshalJSON string
	ErrorPathRequired        string
	ErrorPathNotFound        string
	ErrorPathIsDir           string
	ErrorPromptFailed        string

	// Common flag descriptions
	FlagOut     string
	FlagJSON    string
	ElapsedTime string
	Yes         string
	No          string
}

// English common messages
var EnglishCommonMessages = CommonMessages{
	ErrorFailedToOpen:        "Failed to open %s: %v",
	ErrorFailedToMarshalJSON: "Failed to marshal JSON: %v",
	ErrorPathRequired:        "a path is required",
	ErrorPathNotFound:        "path does not exist: %s",
	ErrorPathIsDir:           "a file is required, %s is a directory",
	ErrorPromptFailed:        "Input aborted: %v",

	FlagOut:     "output directory",
	FlagJSON:    "output as JSON",
	ElapsedTime: "Elapsed time: %s",
	Yes:         "yes",
	No:          "no",
}

// Chinese common messages
var ChineseCommonMessages = CommonMessages{
	ErrorFailedToOpen:        "无法打开 %s: %v",
	ErrorFailedToMarshalJSON: "无法序列化JSON: %v",
	ErrorPathRequired:        "必须提供路径",
	ErrorPathNotFound:        "路径不存在: %s",
	ErrorPathIsDir:           "需要文件，%s 是一个目录",
	ErrorPromptFailed:        "输入已中止: %v",

	FlagOut:     "输出目录",
	FlagJSON:    "以JSON格式输出",
	ElapsedTime: "耗时: %s",
	Yes:         "是",
	No:          "否",
}
