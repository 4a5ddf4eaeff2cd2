package main

import (
	"os"

	"github.com/paykit-dev/paykit/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
