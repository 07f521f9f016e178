// Command tshape statically analyzes Jinja-style templates for their
// render-context variable usage and synthesizes the expected JSON shape.
package main

import (
	"fmt"
	"os"

	"github.com/viant/tshape/cmd/tshape/internal/command"
)

func main() {
	if err := command.New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
