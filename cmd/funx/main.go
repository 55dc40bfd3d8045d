// Command funx runs a single Funx source file (spec.md §6).
package main

import (
	"os"

	"github.com/sty00a4/funx-go/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
