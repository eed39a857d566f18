// codemap emits a pipe-delimited, machine-readable index of a project's files
// and code structure. Single binary, zero config — built for agent lookup.
package main

import (
	"os"

	"github.com/corey/codemap/cmd/codemap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
