package parser

import (
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
)

// Language identifies a grammar supported by the parser
type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
)

// DefaultLanguage is used when no language is configured or inferred
const DefaultLanguage = LanguagePython

// SupportedLanguages returns all languages the parser can load a grammar for
func SupportedLanguages() []Language {
	return []Language{LanguagePython, LanguageJavaScript}
}

// IsSupported reports whether a grammar is available for the language
func (l Language) IsSupported() bool {
	switch l {
	case LanguagePython, LanguageJavaScript:
		return true
	}
	return false
}

// String returns the language name
func (l Language) String() string {
	return string(l)
}

// sitterLanguage maps a Language to its tree-sitter grammar
func sitterLanguage(l Language) *sitter.Language {
	switch l {
	case LanguageJavaScript:
		return javascript.GetLanguage()
	default:
		return python.GetLanguage()
	}
}

// extensionLanguages maps file extensions to their language
var extensionLanguages = map[string]Language{
	".py":  LanguagePython,
	".pyi": LanguagePython,
	".js":  LanguageJavaScript,
	".jsx": LanguageJavaScript,
	".mjs": LanguageJavaScript,
	".cjs": LanguageJavaScript,
}

// LanguageForFile infers the language from a file path's extension
func LanguageForFile(path string) (Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	lang, ok := extensionLanguages[ext]
	return lang, ok
}

// Extensions returns the file extensions recognized for the language
func (l Language) Extensions() []string {
	var exts []string
	for ext, lang := range extensionLanguages {
		if lang == l {
			exts = append(exts, ext)
		}
	}
	return exts
}
