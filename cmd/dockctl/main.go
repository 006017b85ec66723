// Command dockctl runs the inventory reconciliation workflows on local CSV
// files and writes the resulting warehouse upload to stdout.
package main

import (
	"os"

	"dockyard/internal/core/logger"
)

func main() {
	defer logger.Sync()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
