package main

import (
	"os"

	"github.com/IngLP/PerplexitySearchMCP/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
