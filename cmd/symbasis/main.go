// SPDX-License-Identifier: MIT

// Command symbasis builds and inspects the symmetry-adapted index tables of a
// v2RDM solver.
//
//	symbasis summary water.yaml
//	symbasis dump --format json water.yaml
//	symbasis fingerprint --positivity DQGT1 water.yaml
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/symbasis/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}
	// ExitErrors have already been reported by the command
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(cli.GetExitCode(err))
}
