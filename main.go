package main

import (
	"os"

	"github.com/ivorkchan/subtle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
