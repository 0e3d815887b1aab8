// Package main provides the minic command-line compiler.
package main

import (
	"os"

	"github.com/leapstack-labs/minic/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
