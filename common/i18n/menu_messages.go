package i18n

// MenuMessages holds the interactive menu strings
type MenuMessages struct {
	IntroTagline string
	IntroHint    string

	MainPrompt      string
	OptionTranslate string
	OptionCompress  string
	OptionAbout     string
	OptionExit      string
	Goodbye         string
	PressEnter      string

	AboutTitle     string
	AboutText      string
	AboutDeveloper string
	AboutTelegram  string
	AboutContact   string
}

// English menu messages
var EnglishMenuMessages = MenuMessages{
	IntroTagline: "Code translation and compression in one tool",
	IntroHint:    "Use the arrow keys to pick an entry, type to filter long lists, Ctrl-C to leave.",

	MainPrompt:      "What would you like to do?",
	OptionTranslate: "1. Translate code",
	OptionCompress:  "2. Compress files",
	OptionAbout:     "3. About the developer",
	OptionExit:      "0. Exit",
	Goodbye:         "Goodbye!",
	PressEnter:      "Press Enter to return to the menu",

	AboutTitle: "About CodeAlchemist",
	AboutText: "CodeAlchemist rewrites source code between about one hundred programming " +
		"languages by keyword and syntax substitution. The result is a starting point " +
		"for a manual port, not a compiled translation. It also packs files and folders " +
		"into the common archive formats, with optional password protection for ZIP.",
	AboutDeveloper: "Developer",
	AboutTelegram:  "Telegram",
	AboutContact:   "Contact the developer on Telegram: https://t.me/%s",
}

// Chinese menu messages
var ChineseMenuMessages = MenuMessages{
	IntroTagline: "代码转换与压缩工具",
	IntroHint:    "使用方向键选择条目，输入文字可过滤长列表，按 Ctrl-C 退出。",

	MainPrompt:      "请选择要执行的操作",
	OptionTranslate: "1. 转换代码",
	OptionCompress:  "2. 压缩文件",
	OptionAbout:     "3. 关于开发者",
	OptionExit:      "0. 退出",
	Goodbye:         "再见！",
	PressEnter:      "按回车键返回菜单",

	AboutTitle: "关于 CodeAlchemist",
	AboutText: "CodeAlchemist 通过关键字和语法替换，在大约一百种编程语言之间改写源代码。" +
		"结果只是手动移植的起点，并非编译级别的转换。它还可以将文件和文件夹打包为常见的归档格式，" +
		"ZIP 格式支持密码保护。",
	AboutDeveloper: "开发者",
	AboutTelegram:  "Telegram",
	AboutContact:   "通过 Telegram 联系开发者: https://t.me/%s",
}
