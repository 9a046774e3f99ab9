package main

import (
	"os"

	"github.com/str8zero/str8zero/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
