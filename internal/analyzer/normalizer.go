package analyzer

import (
	"unicode"

	"github.com/codeprint-dev/codeprint/internal/parser"
)

// LanguageProfile is the filtering policy for one language: node types that
// never carry structure (dropped together with their whole subtree) and node
// types retained no matter what the drop rules say. AlwaysKeep entries must
// not contain ':' or whitespace, since kept labels end up in the canonical
// token encoding.
type LanguageProfile struct {
	Drop       map[string]bool
	AlwaysKeep map[string]bool
}

// pythonProfile drops the tree-sitter-python token kinds that only reflect
// surface text: comments, identifiers, literals and their sub-fragments.
// Punctuation and operator tokens fall to the no-alphabetic-character rule.
var pythonProfile = LanguageProfile{
	Drop: typeSet(
		"comment",
		"identifier",
		"string",
		"string_start",
		"string_content",
		"string_end",
		"concatenated_string",
		"escape_sequence",
		"interpolation",
		"format_specifier",
		"integer",
		"float",
		"true",
		"false",
		"none",
		"ellipsis",
	),
	AlwaysKeep: typeSet(
		"decorator",
		"yield",
	),
}

// javascriptProfile mirrors pythonProfile for the tree-sitter-javascript
// grammar names.
var javascriptProfile = LanguageProfile{
	Drop: typeSet(
		"comment",
		"html_comment",
		"identifier",
		"property_identifier",
		"shorthand_property_identifier",
		"shorthand_property_identifier_pattern",
		"private_property_identifier",
		"statement_identifier",
		"string",
		"string_fragment",
		"template_string",
		"escape_sequence",
		"number",
		"true",
		"false",
		"null",
		"undefined",
		"regex",
		"regex_pattern",
		"regex_flags",
		"jsx_text",
	),
	AlwaysKeep: typeSet(),
}

// genericProfile covers unconfigured languages with the grammar-neutral
// names most tree-sitter grammars share.
var genericProfile = LanguageProfile{
	Drop: typeSet(
		"comment",
		"identifier",
		"string",
		"number",
	),
	AlwaysKeep: typeSet(),
}

// languageProfiles is the static language-keyed filter table. Adding a
// language means adding a row here, not touching the traversal.
var languageProfiles = map[parser.Language]LanguageProfile{
	parser.LanguagePython:     pythonProfile,
	parser.LanguageJavaScript: javascriptProfile,
}

// ProfileFor returns the filtering profile for a language, falling back to
// the generic profile for unknown languages
func ProfileFor(lang parser.Language) LanguageProfile {
	if profile, ok := languageProfiles[lang]; ok {
		return profile
	}
	return genericProfile
}

func typeSet(types ...string) map[string]bool {
	set := make(map[string]bool, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

// Normalizer filters a raw syntax tree down to its structural shape
type Normalizer struct {
	profile LanguageProfile
}

// NewNormalizer creates a normalizer using the filter profile for lang
func NewNormalizer(lang parser.Language) *Normalizer {
	return &Normalizer{profile: ProfileFor(lang)}
}

// NewNormalizerWithProfile creates a normalizer with an explicit profile
func NewNormalizerWithProfile(profile LanguageProfile) *Normalizer {
	return &Normalizer{profile: profile}
}

// Normalize filters the raw tree into a structural tree. The decision is made
// before descending: a dropped node takes its entire subtree with it, and
// children of dropped nodes are never visited or promoted to the parent.
// Surviving children keep their source order. Normalize never fails; unknown
// node types are kept. A dropped root yields nil, which downstream stages
// treat as the empty tree.
func (n *Normalizer) Normalize(root *parser.RawNode) *StructuralNode {
	if root == nil || !n.keep(root.Type) {
		return nil
	}

	result := NewStructuralNode(root.Type)

	type frame struct {
		raw *parser.RawNode
		dst *StructuralNode
	}
	stack := []frame{{raw: root, dst: result}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, child := range f.raw.Children {
			if !n.keep(child.Type) {
				continue
			}
			structChild := NewStructuralNode(child.Type)
			f.dst.AddChild(structChild)
			stack = append(stack, frame{raw: child, dst: structChild})
		}
	}

	return result
}

// keep applies the filtering policy to a single node type. AlwaysKeep wins
// over the drop set, the drop set wins over the alphabetic check, and types
// nobody claims are kept.
func (n *Normalizer) keep(nodeType string) bool {
	if n.profile.AlwaysKeep[nodeType] {
		return true
	}
	if n.profile.Drop[nodeType] {
		return false
	}
	return hasAlphabetic(nodeType)
}

// hasAlphabetic reports whether the string contains at least one letter.
// Pure symbol tokens such as "==" or "(" contain none.
func hasAlphabetic(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
