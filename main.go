package main

import (
	"os"

	"djtagger/cmd/djtagger/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
