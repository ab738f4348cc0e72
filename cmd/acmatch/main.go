// Command acmatch is a small CLI and REPL around the ahocorasick
// package: load a dictionary file, build the automaton once, then
// match text against it either one-shot, as an exported report, or
// interactively.
package main

import (
	"os"

	"github.com/matchkit/ahocorasick/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Stdin, os.Stdout, os.Stderr, os.Args))
}
