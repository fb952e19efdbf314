package main

import (
	"os"

	"github.com/goldentick/goldentick/pkg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
