package service

import (
	"strings"
	"testing"
)

func TestFileReader_ValidatePattern(t *testing.T) {
	fr := NewFileReader()

	tests := []struct {
		name        string
		pattern     string
		expectError bool
		errorSubstr string
	}{
		{
			name:    "simple wildcard",
			pattern: "*.py",
		},
		{
			name:    "test file pattern",
			pattern: "test_*.py",
		},
		{
			name:    "directory with globstar",
			pattern: "venv/**",
		},
		{
			name:    "globstar with suffix",
			pattern: "**/conftest.py",
		},
		{
			name:    "multi-segment pattern",
			pattern: "src/*/tests/*.py",
		},
		{
			name:        "multiple globstars",
			pattern:     "**/dir/**/file.py",
			expectError: true,
			errorSubstr: "multiple ** globstars",
		},
		{
			name:        "regex dot-star",
			pattern:     ".*py",
			expectError: true,
			errorSubstr: "looks like regex syntax",
		},
		{
			name:        "regex dollar anchor",
			pattern:     "test.py$",
			expectError: true,
			errorSubstr: "regex anchors",
		},
		{
			name:        "regex caret anchor",
			pattern:     "^test.py",
			expectError: true,
			errorSubstr: "regex anchors",
		},
		{
			name:        "character class",
			pattern:     "[abc]*.py",
			expectError: true,
			errorSubstr: "character classes",
		},
		{
			name:        "character range",
			pattern:     "[a-z]*.py",
			expectError: true,
			errorSubstr: "character classes",
		},
		{
			name:        "unclosed bracket",
			pattern:     "test[.py",
			expectError: true,
			errorSubstr: "character classes",
		},
		{
			name:        "brace expansion alternatives",
			pattern:     "{test,spec}_*.py",
			expectError: true,
			errorSubstr: "brace expansion",
		},
		{
			name:        "brace expansion extensions",
			pattern:     "*.{py,pyx}",
			expectError: true,
			errorSubstr: "brace expansion",
		},
		{
			name:        "escaped asterisk",
			pattern:     "\\*.py",
			expectError: true,
			errorSubstr: "escaped characters",
		},
		{
			name:        "empty pattern",
			pattern:     "",
			expectError: true,
			errorSubstr: "empty pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fr.validatePattern(tt.pattern)

			if tt.expectError {
				if err == nil {
					t.Errorf("validatePattern(%q) should have returned an error", tt.pattern)
					return
				}
				if tt.errorSubstr != "" && !strings.Contains(err.Error(), tt.errorSubstr) {
					t.Errorf("validatePattern(%q) error %q should contain %q", tt.pattern, err.Error(), tt.errorSubstr)
				}
			} else if err != nil {
				t.Errorf("validatePattern(%q) should not have returned an error, got: %v", tt.pattern, err)
			}
		})
	}
}

func TestFileReader_ValidatePatterns(t *testing.T) {
	fr := NewFileReader()

	tests := []struct {
		name        string
		patterns    []string
		patternType string
		expectError bool
		errorSubstr string
	}{
		{
			name:        "all valid patterns",
			patterns:    []string{"*.py", "test_*.py", "venv/**"},
			patternType: "exclude",
		},
		{
			name:        "mixed valid and invalid",
			patterns:    []string{"*.py", "[abc]*.py", "venv/**"},
			patternType: "include",
			expectError: true,
			errorSubstr: "invalid include pattern '[abc]*.py'",
		},
		{
			name:        "first invalid pattern is reported",
			patterns:    []string{"[abc]*.py", "{test,spec}*.py"},
			patternType: "exclude",
			expectError: true,
			errorSubstr: "invalid exclude pattern '[abc]*.py'",
		},
		{
			name:        "empty pattern list",
			patterns:    []string{},
			patternType: "exclude",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fr.validatePatterns(tt.patterns, tt.patternType)

			if tt.expectError {
				if err == nil {
					t.Errorf("validatePatterns(%v, %q) should have returned an error", tt.patterns, tt.patternType)
					return
				}
				if tt.errorSubstr != "" && !strings.Contains(err.Error(), tt.errorSubstr) {
					t.Errorf("validatePatterns(%v, %q) error %q should contain %q", tt.patterns, tt.patternType, err.Error(), tt.errorSubstr)
				}
			} else if err != nil {
				t.Errorf("validatePatterns(%v, %q) should not have returned an error, got: %v", tt.patterns, tt.patternType, err)
			}
		})
	}
}

func TestFileReader_CollectSourceFiles_RejectsBadPatterns(t *testing.T) {
	fr := NewFileReader()

	_, err := fr.CollectSourceFiles(
		[]string{t.TempDir()},
		"python",
		true,
		[]string{"*.py"},
		[]string{"[abc]*.py"},
	)

	if err == nil {
		t.Fatal("CollectSourceFiles should have failed due to invalid exclude pattern")
	}
	if !strings.Contains(err.Error(), "invalid exclude pattern") {
		t.Errorf("error should mention invalid exclude pattern, got: %v", err)
	}
}
