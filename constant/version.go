// Package constant holds build-time values stamped in with -ldflags.
package constant

var (
	Version   = "dev"
	BuildTime = "unknown"
)

// ArchiveBaseName is the file name every generated archive starts with.
const ArchiveBaseName = "CodeAlchemist"

// TranslatedSuffix is appended to the stem of every translated source file.
const TranslatedSuffix = "_translated"
