package main

import (
	"os"

	"github.com/maelisc/stableroster/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
