package main

import (
	"os"

	"github.com/codejive/go-properties/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
