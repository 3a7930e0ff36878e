package main

import (
	"os"

	"github.com/pixforge/pixforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
