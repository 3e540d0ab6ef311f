package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/fileaudit/internal/audit"
)

func logic(options audit.Options) error {
	showStatus := strings.ToLower(options.Output) != "json" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	if showStatus {
		fmt.Fprintf(os.Stderr, "Auditing %s…", options.Path)
	}

	report, err := audit.Run(options)

	// Clear the status line
	if showStatus {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(report, os.Stdout)
	case "table":
		return PrintTable(report, os.Stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
