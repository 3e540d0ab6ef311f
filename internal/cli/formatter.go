package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/fileaudit/internal/audit"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
	// SeparatorWidth is the width of the per-category separator line.
	SeparatorWidth = 50
)

// PrintJSON outputs the report in JSON format.
func PrintJSON(report *audit.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the report in human-readable form: one block per
// category delimited by separator lines, followed by a run summary.
//
//nolint:forbidigo // This function prints output to the console.
func PrintTable(report *audit.Report, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)
	separator := strings.Repeat("_", SeparatorWidth)

	for _, c := range report.Categories {
		if c.Count == 0 {
			fmt.Fprintf(w, "No %s found in the directory.\n", strings.ToLower(string(c.Category)))

			continue
		}

		fmt.Fprintln(w, separator)
		fmt.Fprintf(w, "%s:\n\n", c.Category)
		fmt.Fprintf(w, "Found %d file(s) taking up %sMB\n", c.Count, audit.FormatMegabytes(c.TotalMB))
		fmt.Fprintf(w, "Newest:\t%s (%s)\n", c.Newest, c.NewestAt)
		fmt.Fprintf(w, "Oldest:\t%s (%s)\n", c.Oldest, c.OldestAt)
		fmt.Fprintf(w, "Largest:\t%s\n", c.Largest)
		fmt.Fprintln(w, separator)
		fmt.Fprintln(w)
	}

	// Stats summary
	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Total files:\t%d\n", report.FileCount)
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(report.TotalBytes)), report.TotalBytes) //nolint:gosec // Size is never negative

	if report.ErrorCount > 0 {
		fmt.Fprintf(w, "Skipped entries:\t%d\n", report.ErrorCount)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", report.Elapsed)

	return w.Flush()
}
