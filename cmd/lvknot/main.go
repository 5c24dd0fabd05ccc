// Command lvknot evaluates and draws knot diagrams from the built-in atlas,
// YAML files, chord words and braid words.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
