package main

import (
	"os"

	"github.com/amrit/rehearse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
