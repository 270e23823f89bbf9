package parser_test

import (
	"context"
	"fmt"
	"log"

	"github.com/codeprint-dev/codeprint/internal/parser"
)

func ExampleParser_Parse() {
	p := parser.New()
	ctx := context.Background()

	source := []byte(`def greet(name):
    return f"Hello, {name}!"

print(greet("World"))`)

	result, err := p.Parse(ctx, source)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Root: %s\n", result.Root.Type)
	fmt.Printf("Top-level statements: %d\n", len(result.Root.Children))

	// Output:
	// Root: module
	// Top-level statements: 2
}

func ExampleNewWithLanguage() {
	p, err := parser.NewWithLanguage(parser.LanguageJavaScript)
	if err != nil {
		log.Fatal(err)
	}

	source := []byte(`function greet(name) { return name; }`)

	result, err := p.Parse(context.Background(), source)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Root.Type)

	// Output: program
}
