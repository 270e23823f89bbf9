package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		format   OutputFormat
		expected bool
	}{
		{OutputFormatText, true},
		{OutputFormatJSON, true},
		{OutputFormatYAML, true},
		{OutputFormatCSV, true},
		{OutputFormat("html"), false},
		{OutputFormat("dot"), false},
		{OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.IsValid())
		})
	}
}

func TestSupportedOutputFormats(t *testing.T) {
	formats := SupportedOutputFormats()

	assert.Len(t, formats, 4)
	for _, format := range formats {
		assert.True(t, format.IsValid(), "Every supported format should be valid")
	}
}

func TestCategorizedError_Error(t *testing.T) {
	original := errors.New("open corpus.jsonl: no such file or directory")

	withOriginal := &CategorizedError{
		Category: ErrorCategoryInput,
		Message:  "input failed",
		Original: original,
	}
	assert.Equal(t, original.Error(), withOriginal.Error(), "Original error message should win")

	withoutOriginal := &CategorizedError{
		Category: ErrorCategoryConfig,
		Message:  "bad config",
	}
	assert.Equal(t, "bad config", withoutOriginal.Error())
}
