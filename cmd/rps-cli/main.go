package main

import (
	"os"

	"github.com/mrtoaf/rugpaperscissors/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
