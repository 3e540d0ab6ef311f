package audit

import "time"

// FileRecord is one scanned file within a category.
type FileRecord struct {
	// Name is the file name, unique within the scanned directory.
	Name string `json:"name"`
	// Timestamp is the modification time in UTC epoch seconds.
	Timestamp int64 `json:"timestamp"`
	// SizeMB is the file size in megabytes, rounded to MegabytePrecision.
	SizeMB float64 `json:"size_mb"`
}

// CategorySummary holds the derived statistics for one category.
// A category with Count zero carries no other fields.
type CategorySummary struct {
	// Category names the classification this summary describes.
	Category Category `json:"category"`
	// Count is the number of files in the category.
	Count int `json:"count"`
	// TotalMB is the unrounded sum of the per-file rounded sizes.
	TotalMB float64 `json:"total_mb"`
	// Newest is the name of the file with the maximum timestamp.
	Newest string `json:"newest,omitempty"`
	// NewestAt is the formatted timestamp of the newest file.
	NewestAt string `json:"newest_at,omitempty"`
	// Oldest is the name of the file with the minimum timestamp.
	Oldest string `json:"oldest,omitempty"`
	// OldestAt is the formatted timestamp of the oldest file.
	OldestAt string `json:"oldest_at,omitempty"`
	// Largest describes up to the three largest files.
	Largest string `json:"largest,omitempty"`
}

// Report holds the aggregate result of one directory audit.
type Report struct {
	// Path is the audited directory.
	Path string `json:"path"`
	// Categories lists one summary per category, in Order.
	Categories []CategorySummary `json:"categories"`
	// FileCount is the total number of files classified.
	FileCount int64 `json:"file_count"`
	// TotalBytes is the cumulative size of all classified files.
	TotalBytes int64 `json:"total_bytes"`
	// ErrorCount is the number of entries skipped on stat errors.
	ErrorCount int64 `json:"error_count"`
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration `json:"elapsed"`
}

// Options configures a directory audit and CLI behavior.
type Options struct {
	// Path is the directory to audit.
	Path string
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Output represents output format (table or json).
	Output string
	// Version indicates whether to show version and exit.
	Version bool
}

// accumulator gathers per-category file records during a scan. The
// scan is a single sequential pass, so no locking is involved.
type accumulator struct {
	records    map[Category][]FileRecord
	fileCount  int64
	totalBytes int64
	errorCount int64
}

func newAccumulator() *accumulator {
	return &accumulator{
		records: make(map[Category][]FileRecord, len(Order)),
	}
}

// addError counts an entry whose metadata could not be read.
func (a *accumulator) addError() {
	a.errorCount++
}

// add records one classified file.
func (a *accumulator) add(category Category, name string, timestamp, sizeBytes int64) {
	a.fileCount++
	a.totalBytes += sizeBytes

	a.records[category] = append(a.records[category], FileRecord{
		Name:      name,
		Timestamp: timestamp,
		SizeMB:    Megabytes(sizeBytes),
	})
}

// finalize produces the final Report from the collected records, one
// summary per category in Order.
func (a *accumulator) finalize() (*Report, error) {
	categories := make([]CategorySummary, 0, len(Order))

	for _, category := range Order {
		summary, err := summarize(category, a.records[category])
		if err != nil {
			return nil, err
		}

		categories = append(categories, summary)
	}

	return &Report{
		Categories: categories,
		FileCount:  a.fileCount,
		TotalBytes: a.totalBytes,
		ErrorCount: a.errorCount,
	}, nil
}

// summarize derives one category's statistics from its records.
func summarize(category Category, records []FileRecord) (CategorySummary, error) {
	summary := CategorySummary{
		Category: category,
		Count:    len(records),
	}

	if len(records) == 0 {
		return summary, nil
	}

	newest, oldest := records[0].Timestamp, records[0].Timestamp

	for _, record := range records {
		summary.TotalMB += record.SizeMB

		if record.Timestamp > newest {
			newest = record.Timestamp
		}

		if record.Timestamp < oldest {
			oldest = record.Timestamp
		}
	}

	newestAt, err := FormatTimestamp(newest)
	if err != nil {
		return CategorySummary{}, err
	}

	oldestAt, err := FormatTimestamp(oldest)
	if err != nil {
		return CategorySummary{}, err
	}

	summary.Newest = nameForTimestamp(records, newest)
	summary.NewestAt = newestAt
	summary.Oldest = nameForTimestamp(records, oldest)
	summary.OldestAt = oldestAt
	summary.Largest = largestSummary(records)

	return summary, nil
}
