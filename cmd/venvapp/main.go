// Command venvapp runs a Python virtual environment's interpreter as a macOS
// application bundle.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	root := NewRootCmd()

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
