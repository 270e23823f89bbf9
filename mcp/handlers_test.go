package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/mcp"
	"github.com/codeprint-dev/codeprint/service"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pythonSnippetA = `def add(a, b):
    return a + b
`

// Same structure as pythonSnippetA with different names. The normalizer drops
// identifiers, so these two fingerprints are expected to coincide.
const pythonSnippetB = `def sum_two(x, y):
    return x + y
`

const pythonSnippetC = `class Greeter:
    def __init__(self, name):
        self.name = name

    def greet(self):
        if not self.name:
            return "Hello!"
        return "Hello, " + self.name
`

type args struct {
	arguments interface{}
	setupFS   func(t *testing.T) string
	pathKey   string
}

func setupCorpus(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	corpusPath := filepath.Join(tmp, "corpus.jsonl")

	entries := []domain.CorpusEntry{
		{ID: "known/add", Tokens: "module:0 function_definition:1 parameters:2 block:2 return_statement:3 binary_operator:4"},
		{ID: "known/class", Tokens: "module:0 class_definition:1 block:2 function_definition:3 parameters:4 block:4 expression_statement:5 assignment:6 attribute:7"},
	}

	var sb strings.Builder
	for _, entry := range entries {
		line, err := json.Marshal(entry)
		require.NoError(t, err)
		sb.Write(line)
		sb.WriteByte('\n')
	}
	require.NoError(t, os.WriteFile(corpusPath, []byte(sb.String()), 0o644))
	return corpusPath
}

func setupScanDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "alice.py"), []byte(pythonSnippetA), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "bob.py"), []byte(pythonSnippetC), 0o644))
	return tmp
}

func runToolTest(
	t *testing.T,
	tcArgs args,
	handlerFunc func(*mcp.HandlerSet, context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error),
) *mcplib.CallToolResult {

	t.Helper()
	deps := mcp.NewTestDependencies(service.NewFileReader(), nil, "")
	h := mcp.NewHandlerSet(deps)

	if tcArgs.setupFS != nil {
		path := tcArgs.setupFS(t)
		if m, ok := tcArgs.arguments.(map[string]interface{}); ok {
			key := tcArgs.pathKey
			if key == "" {
				key = "path"
			}
			m[key] = path
		}
	}

	req := mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{
			Arguments: tcArgs.arguments,
		},
	}

	res, err := handlerFunc(h, context.Background(), req)
	require.NoError(t, err)

	return res
}

func decodeResult(t *testing.T, res *mcplib.CallToolResult) map[string]interface{} {
	t.Helper()
	require.Greater(t, len(res.Content), 0)
	text := mcplib.GetTextFromContent(res.Content[0])
	require.NotEmpty(t, text)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text), &result))
	return result
}

func TestHandleCompareCode(t *testing.T) {
	errTrue := true

	tests := map[string]struct {
		args         args
		isError      *bool
		expectPrefix string
		check        func(t *testing.T, res *mcplib.CallToolResult)
	}{
		"invalid_arguments_format": {
			args:         args{arguments: "not-a-map"},
			isError:      &errTrue,
			expectPrefix: "invalid arguments format",
		},
		"code_a_missing": {
			args:    args{arguments: map[string]interface{}{"code_b": pythonSnippetB}},
			isError: &errTrue,
		},
		"code_b_missing": {
			args:    args{arguments: map[string]interface{}{"code_a": pythonSnippetA}},
			isError: &errTrue,
		},
		"unsupported_language": {
			args: args{
				arguments: map[string]interface{}{
					"code_a":   pythonSnippetA,
					"code_b":   pythonSnippetB,
					"language": "cobol",
				},
			},
			isError:      &errTrue,
			expectPrefix: "unsupported language",
		},
		"identical_structure": {
			args: args{
				arguments: map[string]interface{}{
					"code_a": pythonSnippetA,
					"code_b": pythonSnippetB,
				},
			},
			check: func(t *testing.T, res *mcplib.CallToolResult) {
				result := decodeResult(t, res)
				assert.Equal(t, "a", result["label_a"])
				assert.Equal(t, "b", result["label_b"])
				score, ok := result["score"].(float64)
				require.True(t, ok)
				assert.Equal(t, 1.0, score)
				assert.Equal(t, true, result["flagged"])
			},
		},
		"different_structure": {
			args: args{
				arguments: map[string]interface{}{
					"code_a":  pythonSnippetA,
					"code_b":  pythonSnippetC,
					"label_a": "submission.py",
					"label_b": "reference.py",
				},
			},
			check: func(t *testing.T, res *mcplib.CallToolResult) {
				result := decodeResult(t, res)
				assert.Equal(t, "submission.py", result["label_a"])
				score, ok := result["score"].(float64)
				require.True(t, ok)
				assert.GreaterOrEqual(t, score, 0.0)
				assert.Less(t, score, 1.0)
			},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res := runToolTest(t, tc.args, (*mcp.HandlerSet).HandleCompareCode)

			if tc.isError != nil && *tc.isError != res.IsError {
				t.Fatalf("IsError = %v, want %v", res.IsError, *tc.isError)
			}
			if tc.expectPrefix != "" && len(res.Content) > 0 {
				text := mcplib.GetTextFromContent(res.Content[0])
				if !strings.HasPrefix(text, tc.expectPrefix) {
					t.Fatalf("error text %q does not start with %q", text, tc.expectPrefix)
				}
			}
			if tc.check != nil {
				require.False(t, res.IsError)
				tc.check(t, res)
			}
		})
	}
}

func TestHandleFindBestMatch(t *testing.T) {
	errTrue := true

	tests := map[string]struct {
		args         args
		isError      *bool
		expectPrefix string
		check        func(t *testing.T, res *mcplib.CallToolResult)
	}{
		"invalid_arguments_format": {
			args:         args{arguments: "not-a-map"},
			isError:      &errTrue,
			expectPrefix: "invalid arguments format",
		},
		"code_missing": {
			args:    args{arguments: map[string]interface{}{"corpus_path": "corpus.jsonl"}},
			isError: &errTrue,
		},
		"corpus_path_missing": {
			args:    args{arguments: map[string]interface{}{"code": pythonSnippetA}},
			isError: &errTrue,
		},
		"corpus_not_exist": {
			args: args{
				arguments: map[string]interface{}{
					"code":        pythonSnippetA,
					"corpus_path": "/non/existing/corpus.jsonl",
				},
			},
			isError:      &errTrue,
			expectPrefix: "corpus does not exist",
		},
		"success": {
			args: args{
				setupFS: setupCorpus,
				pathKey: "corpus_path",
				arguments: map[string]interface{}{
					"code":  pythonSnippetA,
					"label": "submission.py",
				},
			},
			check: func(t *testing.T, res *mcplib.CallToolResult) {
				result := decodeResult(t, res)
				assert.Equal(t, "submission.py", result["label"])
				assert.Equal(t, true, result["found"])
				assert.NotNil(t, result["matched_id"])
				assert.Equal(t, float64(2), result["corpus_size"])
				score, ok := result["score"].(float64)
				require.True(t, ok)
				assert.GreaterOrEqual(t, score, 0.0)
				assert.LessOrEqual(t, score, 1.0)
			},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res := runToolTest(t, tc.args, (*mcp.HandlerSet).HandleFindBestMatch)

			if tc.isError != nil && *tc.isError != res.IsError {
				t.Fatalf("IsError = %v, want %v", res.IsError, *tc.isError)
			}
			if tc.expectPrefix != "" && len(res.Content) > 0 {
				text := mcplib.GetTextFromContent(res.Content[0])
				if !strings.HasPrefix(text, tc.expectPrefix) {
					t.Fatalf("error text %q does not start with %q", text, tc.expectPrefix)
				}
			}
			if tc.check != nil {
				require.False(t, res.IsError)
				tc.check(t, res)
			}
		})
	}
}

func TestHandleScanDirectory(t *testing.T) {
	errTrue := true

	tests := map[string]struct {
		args         args
		isError      *bool
		expectPrefix string
		check        func(t *testing.T, res *mcplib.CallToolResult)
	}{
		"invalid_arguments_format": {
			args:         args{arguments: "not-a-map"},
			isError:      &errTrue,
			expectPrefix: "invalid arguments format",
		},
		"path_missing": {
			args:    args{arguments: map[string]interface{}{}},
			isError: &errTrue,
		},
		"path_not_exist": {
			args: args{
				arguments: map[string]interface{}{
					"path": "/non/existing/submissions",
				},
			},
			isError:      &errTrue,
			expectPrefix: "path does not exist",
		},
		"success_summary": {
			args: args{
				setupFS:   setupScanDir,
				arguments: map[string]interface{}{},
			},
			check: func(t *testing.T, res *mcplib.CallToolResult) {
				result := decodeResult(t, res)
				assert.Contains(t, result, "issues")
				summary, ok := result["summary"].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, float64(2), summary["total_files"])
				assert.Equal(t, float64(1), summary["compared_pairs"])
			},
		},
		"success_full_output": {
			args: args{
				setupFS: setupScanDir,
				arguments: map[string]interface{}{
					"output_mode": "full",
				},
			},
			check: func(t *testing.T, res *mcplib.CallToolResult) {
				result := decodeResult(t, res)
				assert.Contains(t, result, "labels")
				assert.Contains(t, result, "matrix")
				assert.Contains(t, result, "suspicious_pairs")
			},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res := runToolTest(t, tc.args, (*mcp.HandlerSet).HandleScanDirectory)

			if tc.isError != nil && *tc.isError != res.IsError {
				t.Fatalf("IsError = %v, want %v", res.IsError, *tc.isError)
			}
			if tc.expectPrefix != "" && len(res.Content) > 0 {
				text := mcplib.GetTextFromContent(res.Content[0])
				if !strings.HasPrefix(text, tc.expectPrefix) {
					t.Fatalf("error text %q does not start with %q", text, tc.expectPrefix)
				}
			}
			if tc.check != nil {
				require.False(t, res.IsError)
				tc.check(t, res)
			}
		})
	}
}

func TestHandleFingerprintCode(t *testing.T) {
	errTrue := true

	tests := map[string]struct {
		args         args
		isError      *bool
		expectPrefix string
		check        func(t *testing.T, res *mcplib.CallToolResult)
	}{
		"invalid_arguments_format": {
			args:         args{arguments: "not-a-map"},
			isError:      &errTrue,
			expectPrefix: "invalid arguments format",
		},
		"code_missing": {
			args:    args{arguments: map[string]interface{}{}},
			isError: &errTrue,
		},
		"success": {
			args: args{
				arguments: map[string]interface{}{
					"code": pythonSnippetA,
				},
			},
			check: func(t *testing.T, res *mcplib.CallToolResult) {
				result := decodeResult(t, res)
				assert.Equal(t, "snippet", result["label"])
				tokenString, ok := result["token_string"].(string)
				require.True(t, ok)
				assert.Contains(t, tokenString, "module:0")
				assert.Contains(t, tokenString, "function_definition:1")
				count, ok := result["token_count"].(float64)
				require.True(t, ok)
				assert.Greater(t, count, 0.0)
				assert.NotContains(t, result, "weights")
			},
		},
		"success_with_weights": {
			args: args{
				arguments: map[string]interface{}{
					"code":            pythonSnippetA,
					"include_weights": true,
				},
			},
			check: func(t *testing.T, res *mcplib.CallToolResult) {
				result := decodeResult(t, res)
				assert.Contains(t, result, "weights")
				weights, ok := result["weights"].(map[string]interface{})
				require.True(t, ok)
				assert.NotEmpty(t, weights)
			},
		},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res := runToolTest(t, tc.args, (*mcp.HandlerSet).HandleFingerprintCode)

			if tc.isError != nil && *tc.isError != res.IsError {
				t.Fatalf("IsError = %v, want %v", res.IsError, *tc.isError)
			}
			if tc.expectPrefix != "" && len(res.Content) > 0 {
				text := mcplib.GetTextFromContent(res.Content[0])
				if !strings.HasPrefix(text, tc.expectPrefix) {
					t.Fatalf("error text %q does not start with %q", text, tc.expectPrefix)
				}
			}
			if tc.check != nil {
				require.False(t, res.IsError)
				tc.check(t, res)
			}
		})
	}
}
