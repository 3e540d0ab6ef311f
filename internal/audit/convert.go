package audit

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// MegabytePrecision is the number of decimal places kept on
	// converted sizes.
	MegabytePrecision = 2

	bytesPerMegabyte = 1024 * 1024

	// maxFormattedYear is the largest year the four-digit report
	// layout can represent.
	maxFormattedYear = 9999

	// timestampLayout renders as "YYYY-Mon-DD HH:MM:SS".
	timestampLayout = "2006-Jan-02 15:04:05"

	largestCount = 3
)

// Megabytes converts a byte count to megabytes, rounded to
// MegabytePrecision decimal places.
func Megabytes(bytes int64) float64 {
	scale := math.Pow(10, MegabytePrecision)

	return math.Round(float64(bytes)/bytesPerMegabyte*scale) / scale
}

// FormatMegabytes renders a megabyte value with at most
// MegabytePrecision decimal places, trailing zeros trimmed.
func FormatMegabytes(megabytes float64) string {
	s := strconv.FormatFloat(megabytes, 'f', MegabytePrecision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	return s
}

// FormatTimestamp renders epoch seconds as a UTC "YYYY-Mon-DD HH:MM:SS"
// string. Values before the epoch or past year 9999 return
// ErrInvalidTimestamp.
func FormatTimestamp(seconds int64) (string, error) {
	if seconds < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidTimestamp, seconds)
	}

	utc := time.Unix(seconds, 0).UTC()
	if utc.Year() > maxFormattedYear {
		return "", fmt.Errorf("%w: %d", ErrInvalidTimestamp, seconds)
	}

	return utc.Format(timestampLayout), nil
}

// nameForTimestamp returns the first record name carrying the target
// timestamp, in record order, or "" if none matches. Ties resolve to
// the earliest record encountered.
func nameForTimestamp(records []FileRecord, target int64) string {
	for _, record := range records {
		if record.Timestamp == target {
			return record.Name
		}
	}

	return ""
}

// largestSummary formats up to the three largest records as
// "name - sizeMB, ...", descending by size with descending-name
// tie-break. Empty input yields the empty string.
func largestSummary(records []FileRecord) string {
	if len(records) == 0 {
		return ""
	}

	sorted := make([]FileRecord, len(records))
	copy(sorted, records)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].SizeMB != sorted[j].SizeMB {
			return sorted[i].SizeMB > sorted[j].SizeMB
		}

		return sorted[i].Name > sorted[j].Name
	})

	if len(sorted) > largestCount {
		sorted = sorted[:largestCount]
	}

	parts := make([]string, 0, len(sorted))
	for _, record := range sorted {
		parts = append(parts, fmt.Sprintf("%s - %sMB", record.Name, FormatMegabytes(record.SizeMB)))
	}

	return strings.Join(parts, ", ")
}
