// Package main - Stock Researcher CLI
//
// Usage:
//
//	go run ./cmd/researcher serve
//	go run ./cmd/researcher render /stocks
package main

import (
	"os"

	"github.com/nitish0shr/stock-researcher/cmd/researcher/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
