// Command tilewfc generates tile grids with Wave Function Collapse.
package main

import (
	"os"

	"github.com/katalvlaran/tilewfc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
