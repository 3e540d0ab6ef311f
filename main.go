// fileaudit scans a directory and prints per-category file statistics.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/fileaudit/internal/cli"
)

// version is set at build time.
var version = "dev" //nolint:gochecknoglobals // Build-time version injection

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
