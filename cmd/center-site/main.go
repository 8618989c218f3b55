package main

import (
	"os"

	"github.com/crcweb/center-site/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
