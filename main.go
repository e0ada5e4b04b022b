package main

import (
	"os"

	"github.com/dohyeon0608/ReadQuest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
