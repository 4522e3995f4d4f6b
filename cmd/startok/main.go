package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/reusee/starc/starlang"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input_file>\n", os.Args[0])
		os.Exit(1)
	}

	content, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Could not open file %s\n", os.Args[1])
		os.Exit(1)
	}

	src := starlang.NewSource(os.Args[1], string(content))

	fmt.Printf("Input:\n%s\n\n", content)

	tokens, err := starlang.Tokenize(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var spellings []string
	for _, token := range tokens {
		spellings = append(spellings, token.String())
	}
	fmt.Printf("Tokens:\n%s\n", strings.Join(spellings, " "))
}
