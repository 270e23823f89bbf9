package service

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/codeprint-dev/codeprint/domain"
)

func createTestCorpusListResponse() *domain.CorpusListResponse {
	return &domain.CorpusListResponse{
		CorpusPath: "refs/corpus.jsonl",
		Entries: []domain.CorpusEntrySummary{
			{ID: "hw1/alice.py", TokenCount: 42},
			{ID: "hw1/bob.py", TokenCount: 38},
		},
		Duration: 1,
	}
}

func TestNewCorpusListFormatter(t *testing.T) {
	formatter := NewCorpusListFormatter()
	assert.NotNil(t, formatter)
}

func TestCorpusListFormatter_Format_Text(t *testing.T) {
	formatter := NewCorpusListFormatter()

	t.Run("listing with entries", func(t *testing.T) {
		result, err := formatter.Format(createTestCorpusListResponse(), domain.OutputFormatText)
		require.NoError(t, err)

		for _, part := range []string{
			"Corpus Contents",
			"SUMMARY",
			"refs/corpus.jsonl",
			"ENTRIES",
			"hw1/alice.py",
			"42 tokens",
			"hw1/bob.py",
		} {
			assert.Contains(t, result, part)
		}
	})

	t.Run("empty corpus", func(t *testing.T) {
		response := &domain.CorpusListResponse{CorpusPath: "refs/corpus.jsonl"}

		result, err := formatter.Format(response, domain.OutputFormatText)
		require.NoError(t, err)

		assert.Contains(t, result, "Entries: 0")
		assert.NotContains(t, result, "ENTRIES")
	})
}

func TestCorpusListFormatter_Format_JSON(t *testing.T) {
	formatter := NewCorpusListFormatter()
	response := createTestCorpusListResponse()

	result, err := formatter.Format(response, domain.OutputFormatJSON)
	require.NoError(t, err)

	var decoded domain.CorpusListResponse
	require.NoError(t, json.Unmarshal([]byte(result), &decoded))

	assert.Equal(t, response.CorpusPath, decoded.CorpusPath)
	assert.Equal(t, response.Entries, decoded.Entries)
}

func TestCorpusListFormatter_Format_YAML(t *testing.T) {
	formatter := NewCorpusListFormatter()

	result, err := formatter.Format(createTestCorpusListResponse(), domain.OutputFormatYAML)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(result), &decoded))

	assert.Contains(t, decoded, "corpus_path")
	assert.Contains(t, decoded, "entries")
}

func TestCorpusListFormatter_Format_CSV(t *testing.T) {
	formatter := NewCorpusListFormatter()

	result, err := formatter.Format(createTestCorpusListResponse(), domain.OutputFormatCSV)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(result), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,token_count", lines[0])
	assert.Equal(t, "hw1/alice.py,42", lines[1])
	assert.Equal(t, "hw1/bob.py,38", lines[2])
}

func TestCorpusListFormatter_Format_UnsupportedFormat(t *testing.T) {
	formatter := NewCorpusListFormatter()

	_, err := formatter.Format(createTestCorpusListResponse(), domain.OutputFormat("markdown"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "markdown")
}

func TestCorpusListFormatter_Write(t *testing.T) {
	formatter := NewCorpusListFormatter()
	var buf strings.Builder

	require.NoError(t, formatter.Write(createTestCorpusListResponse(), domain.OutputFormatText, &buf))
	assert.Contains(t, buf.String(), "Corpus Contents")
}
