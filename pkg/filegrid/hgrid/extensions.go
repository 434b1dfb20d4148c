package hgrid

// extensions that have their own icon in the static icon set. the
// grid falls back to the generic file icon for anything not listed
// here. membership is case-sensitive; callers are expected to
// lowercase the extension beforehand.
var knownExtensionList = []string{
	"3gp", "7z", "ace", "ai", "aif", "aiff", "amr", "asf", "asx",
	"bat", "bin", "bmp", "bup", "cab", "cbr", "cda", "cdl", "cdr",
	"chm", "dat", "divx", "dll", "dmg", "doc", "docx", "dss", "dvf",
	"dwg", "eml", "eps", "exe", "fla", "flv", "gif", "gz", "hqx",
	"htm", "html", "ifo", "indd", "iso", "jar", "java", "jpeg", "jpg",
	"lnk", "log", "m4a", "m4b", "m4p", "m4v", "mcd", "mdb", "mid",
	"mov", "mp2", "mp3", "mp4", "mpeg", "mpg", "msi", "mswmm", "ogg",
	"pdf", "png", "pps", "ppt", "pptx", "ps", "psd", "pst", "ptb",
	"pub", "qbb", "qbw", "qxd", "ram", "rar", "rm", "rmvb", "rtf",
	"sea", "ses", "sit", "sitx", "ss", "swf", "tgz", "thm", "tif",
	"tmp", "torrent", "ttf", "txt", "vcd", "vob", "wav", "wma", "wmv",
	"wps", "xls", "xlsx", "xml", "xpi", "zip",
}

var knownExtension map[string]struct{}

func init() {
	knownExtension = make(map[string]struct{}, len(knownExtensionList))
	for _, item := range knownExtensionList {
		knownExtension[item] = struct{}{}
	}
}

func IsKnownExtension(ext string) bool {
	_, ok := knownExtension[ext]
	return ok
}
