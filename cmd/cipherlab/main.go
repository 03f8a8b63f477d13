package main

import (
	"os"

	"cipherlab/cmd/cipherlab/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
