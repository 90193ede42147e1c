package main

import (
	"os"

	"github.com/mhr3/cstring/cmd/cstrcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
