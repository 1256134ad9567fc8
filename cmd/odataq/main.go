// Package main provides the odataq command-line interface.
package main

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/odataq/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
