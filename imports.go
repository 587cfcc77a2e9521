package gistview

import (
	"regexp"
	"strings"
)

// importPatterns holds the line patterns that mark import statements.
// Languages without an entry never produce import blocks.
var importPatterns = map[string][]*regexp.Regexp{
	LanguageJavaScript: jsImportPatterns,
	LanguageTypeScript: jsImportPatterns,
	LanguagePython: {
		regexp.MustCompile(`^\s*import\s+`),
		regexp.MustCompile(`^\s*from\s+.*import\s+`),
	},
	LanguageJava: {
		regexp.MustCompile(`^\s*import\s+.*;`),
	},
	LanguageKotlin: {
		regexp.MustCompile(`^\s*import\s+`),
	},
	LanguageGo: {
		regexp.MustCompile(`^\s*import\s*\(`),
		regexp.MustCompile(`^\s*import\s+"`),
		regexp.MustCompile(`^\s*\)`),
	},
	LanguageRust: {
		regexp.MustCompile(`^\s*use\s+`),
		regexp.MustCompile(`^\s*extern\s+crate\s+`),
	},
	LanguageRuby: {
		regexp.MustCompile(`^\s*require\s+`),
		regexp.MustCompile(`^\s*require_relative\s+`),
		regexp.MustCompile(`^\s*include\s+`),
	},
	LanguagePHP: {
		regexp.MustCompile(`^\s*use\s+.*;`),
		regexp.MustCompile(`^\s*require(_once)?\s+`),
		regexp.MustCompile(`^\s*include(_once)?\s+`),
	},
	LanguageCSharp: {
		regexp.MustCompile(`^\s*using\s+.*;`),
	},
	LanguageSwift: {
		regexp.MustCompile(`^\s*import\s+`),
	},
}

var jsImportPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*import\s+`),
	regexp.MustCompile(`^\s*export\s+.*from\s+`),
	regexp.MustCompile(`^\s*require\s*\(`),
}

// IsImportLine reports whether line is an import statement in language.
func IsImportLine(line, language string) bool {
	for _, re := range importPatterns[language] {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// DetectImportBlocks finds contiguous runs of import statements.
// Blank lines inside a run extend it, so a block may end on a blank line.
// The first line that is neither an import nor blank closes the run.
func DetectImportBlocks(lines []string, language string) []ImportBlock {
	if len(importPatterns[language]) == 0 {
		return nil
	}

	var blocks []ImportBlock
	var current *ImportBlock

	for i, line := range lines {
		isImport := IsImportLine(line, language)
		isBlank := strings.TrimSpace(line) == ""

		switch {
		case isImport && current == nil:
			current = &ImportBlock{Start: i, End: i}
		case isImport, current != nil && isBlank:
			current.End = i
		case current != nil:
			blocks = append(blocks, *current)
			current = nil
		}
	}

	if current != nil {
		blocks = append(blocks, *current)
	}

	return blocks
}
