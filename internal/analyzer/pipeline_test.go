package analyzer

import (
	"context"
	"testing"

	"github.com/codeprint-dev/codeprint/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fingerprintSource(t *testing.T, p *parser.Parser, source string) (Fingerprint, []Token) {
	t.Helper()

	result, err := p.Parse(context.Background(), []byte(source))
	require.NoError(t, err, "source should parse")

	normalizer := NewNormalizer(p.Language())
	tokens := Serialize(normalizer.Normalize(result.Root))
	return Vectorize(tokens), tokens
}

func TestPipeline_RenameInvariance(t *testing.T) {
	// Same structure; different identifiers, literal values, and comments.
	original := `def calculate_total(values):
    # sum everything
    total = 0
    for value in values:
        total = total + value
    print("done")
    return total
`
	renamed := `def compute_sum(numbers):
    # add them up
    acc = 100
    for n in numbers:
        acc = acc + n
    print("finished")
    return acc
`

	p := parser.New()
	fpA, tokensA := fingerprintSource(t, p, original)
	fpB, tokensB := fingerprintSource(t, p, renamed)

	assert.Equal(t, tokensA, tokensB, "token sequences should be identical after filtering")
	assert.Equal(t, fpA, fpB, "fingerprints should be identical after filtering")
	assert.Equal(t, 1.0, CosineSimilarity(fpA, fpB))
}

func TestPipeline_DifferentStructureScoresLower(t *testing.T) {
	functionSource := `def f(a):
    return a + 1
`
	classSource := `class Config:
    limit = 10
`

	p := parser.New()
	fpA, _ := fingerprintSource(t, p, functionSource)
	fpB, _ := fingerprintSource(t, p, classSource)

	score := CosineSimilarity(fpA, fpB)
	assert.Less(t, score, 1.0, "different shapes should not be identical")
}

func TestPipeline_DropsTextOnlyNodes(t *testing.T) {
	source := `x = "some text"  # trailing comment
`
	p := parser.New()
	_, tokens := fingerprintSource(t, p, source)

	for _, tok := range tokens {
		assert.NotEqual(t, "comment", tok.Type)
		assert.NotEqual(t, "identifier", tok.Type)
		assert.NotEqual(t, "string", tok.Type)
		assert.NotEqual(t, "=", tok.Type)
	}
}

func TestPipeline_EmptySource(t *testing.T) {
	p := parser.New()
	fp, tokens := fingerprintSource(t, p, "")

	// An empty file still has a module root.
	assert.Equal(t, []Token{{Type: "module", Depth: 0}}, tokens)
	assert.Equal(t, Fingerprint{"module": 1.0}, fp)
}

func TestPipeline_CanonicalStringRoundTrip(t *testing.T) {
	source := `def greet(name):
    if name:
        return "hi"
    return "bye"
`
	p := parser.New()
	fpDirect, tokens := fingerprintSource(t, p, source)

	stored := EncodeTokens(tokens)
	fpStored, skipped := FingerprintString(stored)

	assert.Zero(t, skipped)
	assert.Equal(t, fpDirect, fpStored,
		"a fingerprint rebuilt from the stored string should match the direct one")
}

func TestPipeline_JavaScriptProfile(t *testing.T) {
	p, err := parser.NewWithLanguage(parser.LanguageJavaScript)
	require.NoError(t, err)

	sourceA := `function add(a, b) { return a + b; }`
	sourceB := `function plus(x, y) { return x + y; }`

	fpA, _ := fingerprintSource(t, p, sourceA)
	fpB, _ := fingerprintSource(t, p, sourceB)

	assert.Equal(t, fpA, fpB, "rename invariance should hold for javascript too")
}
