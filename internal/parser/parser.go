package parser

import (
	"context"
	"fmt"
	"io"

	sitter "github.com/smacker/go-tree-sitter"
)

// Parser wraps a tree-sitter parser for a single configured language. It is
// an owned resource: callers construct one and pass it down the pipeline
// rather than sharing a package-level instance. A Parser is not safe for
// concurrent use.
type Parser struct {
	parser   *sitter.Parser
	language Language
}

// New creates a new Parser instance with the default (Python) grammar
func New() *Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(sitterLanguage(DefaultLanguage))
	return &Parser{
		parser:   parser,
		language: DefaultLanguage,
	}
}

// NewWithLanguage creates a Parser for the given language
func NewWithLanguage(lang Language) (*Parser, error) {
	p := New()
	if err := p.SetLanguage(lang); err != nil {
		return nil, err
	}
	return p, nil
}

// SetLanguage switches the parser to another supported grammar
func (p *Parser) SetLanguage(lang Language) error {
	if !lang.IsSupported() {
		return fmt.Errorf("unsupported language: %s", lang)
	}
	p.parser.SetLanguage(sitterLanguage(lang))
	p.language = lang
	return nil
}

// Language returns the currently configured language
func (p *Parser) Language() Language {
	return p.language
}

// ParseResult represents the result of parsing a source file
type ParseResult struct {
	Root      *RawNode
	Language  Language
	NodeCount int
}

// Parse parses source code and returns the raw syntax tree
func (p *Parser) Parse(ctx context.Context, source []byte) (*ParseResult, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}

	rootNode := tree.RootNode()
	if rootNode.HasError() {
		return nil, fmt.Errorf("syntax errors found in source code")
	}

	root, count := convertTree(rootNode)
	return &ParseResult{
		Root:      root,
		Language:  p.language,
		NodeCount: count,
	}, nil
}

// ParseFile parses source code from a reader
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) (*ParseResult, error) {
	source, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}

	return p.Parse(ctx, source)
}

// convertTree copies the tree-sitter CST into RawNodes so the rest of the
// pipeline never touches cgo-backed memory. Iterative to stay safe on deeply
// nested input.
func convertTree(root *sitter.Node) (*RawNode, int) {
	rawRoot := &RawNode{Type: root.Type()}
	count := 1

	type frame struct {
		src *sitter.Node
		dst *RawNode
	}
	stack := []frame{{src: root, dst: rawRoot}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		childCount := int(f.src.ChildCount())
		for i := 0; i < childCount; i++ {
			child := f.src.Child(i)
			rawChild := &RawNode{Type: child.Type()}
			f.dst.AddChild(rawChild)
			count++
			stack = append(stack, frame{src: child, dst: rawChild})
		}
	}

	return rawRoot, count
}
