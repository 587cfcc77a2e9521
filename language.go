package gistview

import "strings"

// Language tags assigned to gist files.
const (
	LanguageJavaScript = "javascript"
	LanguageTypeScript = "typescript"
	LanguagePython     = "python"
	LanguageJava       = "java"
	LanguageKotlin     = "kotlin"
	LanguageGo         = "go"
	LanguageRust       = "rust"
	LanguageRuby       = "ruby"
	LanguagePHP        = "php"
	LanguageCSharp     = "csharp"
	LanguageSwift      = "swift"
	LanguageCPP        = "cpp"
	LanguageC          = "c"
	LanguageCSS        = "css"
	LanguageHTML       = "html"
	LanguageJSON       = "json"
	LanguageXML        = "xml"
	LanguageMarkdown   = "markdown"
	LanguageSQL        = "sql"
	LanguageBash       = "bash"
	LanguageYAML       = "yaml"
	LanguagePlaintext  = "plaintext"
)

var extensionLanguages = map[string]string{
	"js":    LanguageJavaScript,
	"jsx":   LanguageJavaScript,
	"mjs":   LanguageJavaScript,
	"ts":    LanguageTypeScript,
	"tsx":   LanguageTypeScript,
	"py":    LanguagePython,
	"java":  LanguageJava,
	"kt":    LanguageKotlin,
	"kts":   LanguageKotlin,
	"go":    LanguageGo,
	"rs":    LanguageRust,
	"rb":    LanguageRuby,
	"php":   LanguagePHP,
	"cs":    LanguageCSharp,
	"swift": LanguageSwift,
	"cpp":   LanguageCPP,
	"c":     LanguageC,
	"h":     LanguageC,
	"css":   LanguageCSS,
	"html":  LanguageHTML,
	"json":  LanguageJSON,
	"xml":   LanguageXML,
	"md":    LanguageMarkdown,
	"sql":   LanguageSQL,
	"sh":    LanguageBash,
	"yml":   LanguageYAML,
	"yaml":  LanguageYAML,
}

// DetectLanguage returns the language tag for a filename based on its
// extension, or LanguagePlaintext when the extension is not recognized.
// A filename without a dot is looked up whole.
func DetectLanguage(filename string) string {
	ext := filename
	if i := strings.LastIndex(filename, "."); i >= 0 {
		ext = filename[i+1:]
	}
	if lang, ok := extensionLanguages[strings.ToLower(ext)]; ok {
		return lang
	}
	return LanguagePlaintext
}
