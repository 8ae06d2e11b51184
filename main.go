package main

import (
	"os"

	"github.com/Ramin-Setoodehnia/phantomctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
