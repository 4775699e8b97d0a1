package main

import (
	"os"

	"github.com/xiam/wellformed/cmd/wellformed/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
