// Command emd computes Earth Mover's Distances from problem files.
package main

import (
	"os"

	"github.com/katalvlaran/ot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
