package main

import (
	"os"

	"github.com/contasmart/contasmart/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
