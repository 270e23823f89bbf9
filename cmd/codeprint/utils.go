package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/service"
)

// printCommandError prints a failed command's error together with recovery
// suggestions for its category
func printCommandError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	categorizer := service.NewErrorCategorizer()
	categorized := categorizer.Categorize(err)

	suggestions := categorizer.GetRecoverySuggestions(categorized.Category)
	if len(suggestions) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s - things to try:\n", categorized.Category)
	for _, suggestion := range suggestions {
		fmt.Fprintf(w, "  • %s\n", suggestion)
	}
}

// parseLanguage converts a --language flag value into a domain language
func parseLanguage(value string) (domain.Language, error) {
	lang := domain.Language(strings.ToLower(strings.TrimSpace(value)))
	if !lang.IsValid() {
		supported := make([]string, 0, len(domain.SupportedLanguages()))
		for _, l := range domain.SupportedLanguages() {
			supported = append(supported, l.String())
		}
		return "", fmt.Errorf("unsupported language %q (supported: %s)", value, strings.Join(supported, ", "))
	}
	return lang, nil
}
