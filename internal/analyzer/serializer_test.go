package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func structuralTree() *StructuralNode {
	// module
	// ├── function_definition
	// │   ├── parameters
	// │   └── block
	// │       └── return_statement
	// └── if_statement
	root := NewStructuralNode("module")
	funcDef := NewStructuralNode("function_definition")
	funcDef.AddChild(NewStructuralNode("parameters"))
	block := NewStructuralNode("block")
	block.AddChild(NewStructuralNode("return_statement"))
	funcDef.AddChild(block)
	root.AddChild(funcDef)
	root.AddChild(NewStructuralNode("if_statement"))
	return root
}

func TestSerialize_PreOrderWithDepths(t *testing.T) {
	tokens := Serialize(structuralTree())

	expected := []Token{
		{Type: "module", Depth: 0},
		{Type: "function_definition", Depth: 1},
		{Type: "parameters", Depth: 2},
		{Type: "block", Depth: 2},
		{Type: "return_statement", Depth: 3},
		{Type: "if_statement", Depth: 1},
	}
	assert.Equal(t, expected, tokens, "tokens should follow pre-order with left-to-right children")
}

func TestSerialize_NilTree(t *testing.T) {
	assert.Empty(t, Serialize(nil), "a nil tree should serialize to an empty sequence")
}

func TestSerialize_SingleNode(t *testing.T) {
	tokens := Serialize(NewStructuralNode("module"))
	assert.Equal(t, []Token{{Type: "module", Depth: 0}}, tokens)
}

func TestSerialize_Deterministic(t *testing.T) {
	first := Serialize(structuralTree())
	second := Serialize(structuralTree())
	assert.Equal(t, first, second, "identical trees should yield identical sequences")
}

func TestSerialize_DeepTree(t *testing.T) {
	const depth = 50000

	root := NewStructuralNode("module")
	current := root
	for i := 0; i < depth; i++ {
		child := NewStructuralNode("block")
		current.AddChild(child)
		current = child
	}

	tokens := Serialize(root)
	assert.Len(t, tokens, depth+1)
	assert.Equal(t, depth, tokens[len(tokens)-1].Depth, "depth should grow by 1 per level")
}

func TestEncodeTokens(t *testing.T) {
	tokens := Serialize(structuralTree())
	encoded := EncodeTokens(tokens)

	assert.Equal(t,
		"module:0 function_definition:1 parameters:2 block:2 return_statement:3 if_statement:1",
		encoded)
}

func TestEncodeTokens_Empty(t *testing.T) {
	assert.Equal(t, "", EncodeTokens(nil))
	assert.Equal(t, "", EncodeTokens([]Token{}))
}

func TestEncodeTokens_RoundTrip(t *testing.T) {
	original := Serialize(structuralTree())

	decoded, skipped := ParseTokenString(EncodeTokens(original))
	assert.Equal(t, original, decoded)
	assert.Zero(t, skipped, "a canonical string should decode without skips")
}

func TestParseTokenString(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantTokens  []Token
		wantSkipped int
	}{
		{
			name:       "well formed",
			input:      "module:0 function_definition:1",
			wantTokens: []Token{{Type: "module", Depth: 0}, {Type: "function_definition", Depth: 1}},
		},
		{
			name:        "unparseable depth is skipped",
			input:       "module:0 if_statement:abc function_definition:1",
			wantTokens:  []Token{{Type: "module", Depth: 0}, {Type: "function_definition", Depth: 1}},
			wantSkipped: 1,
		},
		{
			name:        "negative depth is skipped",
			input:       "module:0 block:-1",
			wantTokens:  []Token{{Type: "module", Depth: 0}},
			wantSkipped: 1,
		},
		{
			name:        "fractional depth is skipped",
			input:       "block:1.5",
			wantSkipped: 1,
		},
		{
			name:        "missing depth is skipped",
			input:       "block:",
			wantSkipped: 1,
		},
		{
			name:       "field without separator keeps literal text at depth 0",
			input:      "module bareword",
			wantTokens: []Token{{Type: "module", Depth: 0}, {Type: "bareword", Depth: 0}},
		},
		{
			name:       "depth read after the last separator",
			input:      "odd:label:2",
			wantTokens: []Token{{Type: "odd:label", Depth: 2}},
		},
		{
			name:  "empty string",
			input: "",
		},
		{
			name:  "whitespace only",
			input: "   \n\t  ",
		},
		{
			name:       "extra whitespace between fields",
			input:      "  module:0   block:1  ",
			wantTokens: []Token{{Type: "module", Depth: 0}, {Type: "block", Depth: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, skipped := ParseTokenString(tt.input)

			if len(tt.wantTokens) == 0 {
				assert.Empty(t, tokens)
			} else {
				assert.Equal(t, tt.wantTokens, tokens)
			}
			assert.Equal(t, tt.wantSkipped, skipped, "skipped count should match")
		})
	}
}
