// Command gsv is the reference CLI for the GSV dynamic-semantics
// evaluator: it parses a formula, resolves a model, and either
// evaluates the formula or checks one of the SemanticRelations.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
