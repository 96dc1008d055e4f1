package main

import (
	"os"

	"github.com/ledgerlab-dev/ledgerlab/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
