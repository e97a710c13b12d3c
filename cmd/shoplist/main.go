package main

import (
	"os"

	"shoplist/cmd/shoplist/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
