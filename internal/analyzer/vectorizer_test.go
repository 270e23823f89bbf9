package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorize_SingleTokenWeights(t *testing.T) {
	tests := []struct {
		name       string
		tokens     []Token
		wantType   string
		wantWeight float64
	}{
		{
			name:       "depth 0 weighs 1.0",
			tokens:     []Token{{Type: "T", Depth: 0}},
			wantType:   "T",
			wantWeight: 1.0,
		},
		{
			name:       "depth 1 weighs 0.5",
			tokens:     []Token{{Type: "T", Depth: 1}},
			wantType:   "T",
			wantWeight: 0.5,
		},
		{
			name:       "depth 3 weighs 0.25",
			tokens:     []Token{{Type: "T", Depth: 3}},
			wantType:   "T",
			wantWeight: 0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fingerprint := Vectorize(tt.tokens)
			assert.Len(t, fingerprint, 1)
			assert.Equal(t, tt.wantWeight, fingerprint[tt.wantType])
		})
	}
}

func TestVectorize_AccumulatesSameType(t *testing.T) {
	tokens := []Token{
		{Type: "block", Depth: 1},
		{Type: "block", Depth: 3},
		{Type: "if_statement", Depth: 2},
	}

	fingerprint := Vectorize(tokens)

	assert.Len(t, fingerprint, 2)
	assert.Equal(t, 0.75, fingerprint["block"], "weights of repeated types should accumulate")
	assert.InDelta(t, 1.0/3.0, fingerprint["if_statement"], 1e-12)
}

func TestVectorize_DeeperTokensWeighLess(t *testing.T) {
	shallow := Vectorize([]Token{{Type: "T", Depth: 1}})
	deep := Vectorize([]Token{{Type: "T", Depth: 9}})

	assert.Greater(t, shallow["T"], deep["T"],
		"shallow structure should dominate the fingerprint")
}

func TestVectorize_EmptySequence(t *testing.T) {
	for _, tokens := range [][]Token{nil, {}} {
		fingerprint := Vectorize(tokens)
		assert.NotNil(t, fingerprint, "fingerprint should be empty, not nil")
		assert.Empty(t, fingerprint)
	}
}

func TestFingerprintString(t *testing.T) {
	t.Run("canonical string", func(t *testing.T) {
		fingerprint, skipped := FingerprintString("module:0 function_definition:1")
		assert.Zero(t, skipped)
		assert.Equal(t, Fingerprint{"module": 1.0, "function_definition": 0.5}, fingerprint)
	})

	t.Run("malformed fields are skipped and counted", func(t *testing.T) {
		fingerprint, skipped := FingerprintString("module:0 junk:x block:1")
		assert.Equal(t, 1, skipped)
		assert.Equal(t, Fingerprint{"module": 1.0, "block": 0.5}, fingerprint)
	})

	t.Run("field without separator counts as weight 1", func(t *testing.T) {
		fingerprint, skipped := FingerprintString("module")
		assert.Zero(t, skipped)
		assert.Equal(t, Fingerprint{"module": 1.0}, fingerprint)
	})

	t.Run("whitespace only input yields empty fingerprint", func(t *testing.T) {
		fingerprint, skipped := FingerprintString("   \n ")
		assert.Zero(t, skipped)
		assert.Empty(t, fingerprint)
	})
}
