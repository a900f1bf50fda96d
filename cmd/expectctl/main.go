// Command expectctl is companion tooling for the expect assertion library.
package main

import (
	"os"

	"github.com/conneroisu/expect/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
