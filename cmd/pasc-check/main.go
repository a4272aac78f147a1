package main

import (
	"os"

	"github.com/cwbudde/go-pascal-sema/cmd/pasc-check/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
