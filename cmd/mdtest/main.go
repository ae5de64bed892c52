// Command mdtest lists, inspects, and exports test cases defined in
// markdown fixture documents.
package main

import (
	"os"

	"github.com/calvinalkan/mdtest/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Stdout, os.Stderr, os.Args, os.Environ()))
}
