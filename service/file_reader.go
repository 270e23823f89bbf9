package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/codeprint-dev/codeprint/domain"
)

// FileReaderImpl implements the FileReader interface
type FileReaderImpl struct{}

// NewFileReader creates a new file reader service
func NewFileReader() *FileReaderImpl {
	return &FileReaderImpl{}
}

// CollectSourceFiles recursively finds all source files for the given
// language in the given paths
func (f *FileReaderImpl) CollectSourceFiles(paths []string, language domain.Language, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	if err := f.validatePatterns(includePatterns, "include"); err != nil {
		return nil, domain.NewInvalidInputError(err.Error(), err)
	}
	if err := f.validatePatterns(excludePatterns, "exclude"); err != nil {
		return nil, domain.NewInvalidInputError(err.Error(), err)
	}

	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, domain.NewFileNotFoundError(path, err)
		}

		if info.IsDir() {
			dirFiles, err := f.collectFromDirectory(path, language, recursive, includePatterns, excludePatterns)
			if err != nil {
				return nil, err
			}
			files = append(files, dirFiles...)
		} else {
			// Explicitly named files only need to pass the pattern filters
			if f.IsValidSourceFile(path, language) && f.shouldIncludeFile(path, includePatterns, excludePatterns) {
				files = append(files, path)
			}
		}
	}

	return files, nil
}

// ReadFile reads the content of a file
func (f *FileReaderImpl) ReadFile(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}
	return content, nil
}

// IsValidSourceFile checks if a file has a source extension for the language
func (f *FileReaderImpl) IsValidSourceFile(path string, language domain.Language) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, valid := range toParserLanguage(language).Extensions() {
		if ext == valid {
			return true
		}
	}
	return false
}

// FileExists checks if a file exists
func (f *FileReaderImpl) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// collectFromDirectory collects source files from a directory
func (f *FileReaderImpl) collectFromDirectory(dirPath string, language domain.Language, recursive bool, includePatterns, excludePatterns []string) ([]string, error) {
	var files []string

	walkFunc := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip unreadable entries but continue the walk
			return nil
		}

		// Skip directories if not recursive
		if info.IsDir() && !recursive && path != dirPath {
			return filepath.SkipDir
		}

		// Skip hidden directories and files
		if strings.HasPrefix(info.Name(), ".") && path != dirPath {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip directories that never hold original author work
		if info.IsDir() && f.shouldSkipDirectory(info.Name()) {
			return filepath.SkipDir
		}

		if !info.IsDir() && f.IsValidSourceFile(path, language) {
			if f.shouldIncludeFile(path, includePatterns, excludePatterns) {
				files = append(files, path)
			}
		}

		return nil
	}

	if err := filepath.Walk(dirPath, walkFunc); err != nil {
		return nil, fmt.Errorf("failed to walk directory %s: %w", dirPath, err)
	}

	return files, nil
}

// shouldIncludeFile checks if a file should be included based on patterns.
// Patterns use doublestar globs, so "**/*.py" works across nested
// directories. Each pattern is tried against both the full path and the
// base name.
func (f *FileReaderImpl) shouldIncludeFile(path string, includePatterns, excludePatterns []string) bool {
	// Check exclude patterns first
	for _, pattern := range excludePatterns {
		if f.matchesPattern(pattern, path) {
			return false
		}
		if matched, _ := doublestar.Match(pattern, filepath.Base(path)); matched {
			return false
		}
	}

	// If no include patterns specified, include by default
	if len(includePatterns) == 0 {
		return true
	}

	for _, pattern := range includePatterns {
		if f.matchesPattern(pattern, path) {
			return true
		}
		if matched, _ := doublestar.Match(pattern, filepath.Base(path)); matched {
			return true
		}
	}

	return false
}

// matchesPattern reports whether a path matches a glob pattern. Patterns
// ending in "/**" also match the directory itself and any occurrence of
// that directory deeper in the tree, so "venv/**" excludes a vendored
// tree no matter where the walk entered it.
func (f *FileReaderImpl) matchesPattern(pattern, path string) bool {
	slashPath := filepath.ToSlash(path)

	if matched, _ := doublestar.Match(pattern, slashPath); matched {
		return true
	}

	if dir, ok := strings.CutSuffix(pattern, "/**"); ok {
		if matched, _ := doublestar.Match(dir, slashPath); matched {
			return true
		}
		if matched, _ := doublestar.Match("**/"+pattern, slashPath); matched {
			return true
		}
	}

	return false
}

// validatePatterns rejects glob patterns that will silently match nothing,
// usually regex syntax pasted where a glob belongs.
func (f *FileReaderImpl) validatePatterns(patterns []string, patternType string) error {
	for _, pattern := range patterns {
		if err := f.validatePattern(pattern); err != nil {
			return fmt.Errorf("invalid %s pattern '%s': %w", patternType, pattern, err)
		}
	}
	return nil
}

func (f *FileReaderImpl) validatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("empty pattern is not allowed")
	}
	if strings.Contains(pattern, "\\") {
		return fmt.Errorf("escaped characters are not supported, globs match literally")
	}
	if strings.Count(pattern, "**") > 1 {
		return fmt.Errorf("multiple ** globstars are not supported, use one per pattern")
	}
	if strings.ContainsAny(pattern, "[]") {
		return fmt.Errorf("character classes are not supported, use separate patterns")
	}
	if strings.ContainsAny(pattern, "{}") {
		return fmt.Errorf("brace expansion is not supported, use separate patterns")
	}
	if strings.ContainsAny(pattern, "^$") {
		return fmt.Errorf("regex anchors are not supported, globs always match the whole name")
	}
	if strings.Contains(pattern, ".*") {
		return fmt.Errorf("'.*' looks like regex syntax, use '*' instead")
	}
	return nil
}

// shouldSkipDirectory checks if a directory should be skipped entirely
func (f *FileReaderImpl) shouldSkipDirectory(dirName string) bool {
	skipDirs := []string{
		"__pycache__",
		".git",
		".svn",
		".hg",
		"node_modules",
		".tox",
		".pytest_cache",
		".mypy_cache",
		"venv",
		"env",
		".venv",
		".env",
		"build",
		"dist",
		"*.egg-info",
	}

	dirLower := strings.ToLower(dirName)
	for _, skipDir := range skipDirs {
		if matched, _ := filepath.Match(strings.ToLower(skipDir), dirLower); matched {
			return true
		}
	}

	return false
}
