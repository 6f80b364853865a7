// Package main is the entry point for the suitereport CLI.
package main

import (
	"os"

	"github.com/AndreyAkinshin/suitereport/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
