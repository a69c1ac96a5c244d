// Package main provides the entry point for the primes CLI.
package main

import (
	"github.com/colthorp/primes-cli-go/internal/cli"
)

func main() {
	cli.Execute()
}
