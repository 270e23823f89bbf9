package analyzer

import (
	"strconv"
	"strings"
)

// Token is one element of the serialized structural sequence: a node type
// label and its depth in the structural tree, 0 at the root.
type Token struct {
	Type  string
	Depth int
}

const (
	// tokenFieldSeparator separates type from depth inside a token. Type
	// labels must not contain it; the normalizer's filtering guarantees that
	// for every shipped profile.
	tokenFieldSeparator = ":"

	// tokenDelimiter separates tokens in the canonical string form
	tokenDelimiter = " "
)

// Serialize flattens a structural tree into its pre-order token sequence:
// each node is emitted before its children, children left to right, depth
// increasing by exactly 1 per level. A nil tree serializes to an empty
// sequence. The traversal is iterative, so input nesting depth is not
// limited by the call stack.
func Serialize(root *StructuralNode) []Token {
	if root == nil {
		return nil
	}

	type frame struct {
		node  *StructuralNode
		depth int
	}
	stack := []frame{{node: root, depth: 0}}

	var tokens []Token
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tokens = append(tokens, Token{Type: f.node.Type, Depth: f.depth})

		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: f.node.Children[i], depth: f.depth + 1})
		}
	}

	return tokens
}

// EncodeTokens renders a token sequence in its canonical "type:depth" form,
// space delimited. This string is what the corpus stores for a submission.
func EncodeTokens(tokens []Token) string {
	if len(tokens) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			sb.WriteString(tokenDelimiter)
		}
		sb.WriteString(tok.Type)
		sb.WriteString(tokenFieldSeparator)
		sb.WriteString(strconv.Itoa(tok.Depth))
	}
	return sb.String()
}

// ParseTokenString decodes a canonical token string back into tokens. Fields
// are whitespace separated; the depth is read after the last separator so a
// drifted label cannot shift it. A field with no separator at all is kept as
// a depth-0 token, which vectorizes to weight 1 against its literal text. A
// field whose depth is not a non-negative integer is dropped; the second
// return value counts how many fields were dropped that way.
func ParseTokenString(s string) ([]Token, int) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, 0
	}

	tokens := make([]Token, 0, len(fields))
	skipped := 0
	for _, field := range fields {
		sep := strings.LastIndex(field, tokenFieldSeparator)
		if sep < 0 {
			tokens = append(tokens, Token{Type: field, Depth: 0})
			continue
		}

		depth, err := strconv.Atoi(field[sep+1:])
		if err != nil || depth < 0 {
			skipped++
			continue
		}
		tokens = append(tokens, Token{Type: field[:sep], Depth: depth})
	}

	return tokens, skipped
}
