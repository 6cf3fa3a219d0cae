// Command lvlopt solves linear and integer programs stored as YAML files and
// prints every tableau, node and narration step along the way.
//
// Usage:
//
//	lvlopt simplex problem.yaml
//	lvlopt branch --strategy BestBound problem.yaml
//	lvlopt sensitivity problem.yaml
//	lvlopt standard-form problem.yaml
//	lvlopt dual problem.yaml
//	lvlopt config
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
