package main

import (
	"os"

	"github.com/skillfolio/skillfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
