package main

import (
	"os"

	"github.com/vetmatch/vetmatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
