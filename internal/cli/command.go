package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/pflag"

	"github.com/idelchi/fileaudit/internal/audit"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

func help() {
	//nolint:forbidigo // Help output to console
	fmt.Println(heredoc.Doc(`
		fileaudit scans a single directory and reports per-category file statistics.

		Usage:

			fileaudit [flags] [path]

		Positional Arguments:
		  path                   Directory to audit. Defaults to current directory if not specified.

		Files are classified by extension into images, documents, music, videos,
		code/scripts, archives and other files. Each category reports its file
		count, total size in megabytes, newest and oldest file, and the three
		largest files. The scan is non-recursive: subdirectories and other
		non-regular entries are skipped.

		Flags:
	`))
	pflag.PrintDefaults()
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var options audit.Options

	allowedOutputs := []string{"table", "json"}

	pflag.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	pflag.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	pflag.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")

	pflag.CommandLine.SortFlags = false
	pflag.Usage = help
	pflag.Parse()

	if options.Version {
		//nolint:forbidigo // Version output to console
		fmt.Println(c.version)

		return nil
	}

	if !slices.Contains(allowedOutputs, options.Output) {
		return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
	}

	if pflag.NArg() == 0 {
		options.Path = "."
	} else {
		options.Path = pflag.Args()[0]
	}

	return logic(options)
}
