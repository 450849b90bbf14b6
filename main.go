package main

import (
	"os"

	"github.com/mvolkova/pekarnya/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
