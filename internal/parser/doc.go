// Package parser turns source code into raw syntax trees using tree-sitter.
//
// This package wraps the tree-sitter Go bindings and copies the concrete
// syntax tree into plain RawNode values, so the rest of the pipeline never
// holds references into cgo-backed memory. The tree keeps every node the
// grammar produces, including anonymous keyword, operator, and punctuation
// nodes; filtering is left to downstream stages.
//
// Key features:
//   - Python and JavaScript grammars behind a single Language switch
//   - Error-tolerant parsing with syntax error detection
//   - Language inference from file extensions
//   - Iterative tree conversion that is safe on deeply nested input
//
// Basic usage:
//
//	p := parser.New()
//	result, err := p.Parse(ctx, []byte("def hello(): pass"))
//	if err != nil {
//	    // Handle parsing error
//	}
//	// Use result.Root to walk the raw tree
package parser
