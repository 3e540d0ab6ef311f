package audit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// Run scans the immediate entries of opt.Path, classifies each regular
// file by extension and returns the aggregated per-category report.
//
// Directory-level failures abort the run: a missing path maps to
// ErrDirectoryNotFound, an unreadable one to ErrPermissionDenied.
// Entries whose metadata cannot be read, or whose modification time
// falls outside the representable timestamp range, are counted, logged
// when debug output is enabled, and skipped; the scan continues.
func Run(opt Options) (*Report, error) {
	log := logger{enabled: opt.Debug}

	if opt.Path == "" {
		opt.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	opt.Path = filepath.Clean(opt.Path)

	statInfo, err := os.Stat(opt.Path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %q", ErrDirectoryNotFound, opt.Path)
	case errors.Is(err, fs.ErrPermission):
		return nil, fmt.Errorf("%w: %q", ErrPermissionDenied, opt.Path)
	case err != nil:
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	case !statInfo.IsDir():
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	start := time.Now()

	entries, err := os.ReadDir(opt.Path)

	switch {
	case errors.Is(err, fs.ErrPermission):
		return nil, fmt.Errorf("%w: %q", ErrPermissionDenied, opt.Path)
	case err != nil:
		return nil, fmt.Errorf("listing %q: %w", opt.Path, err)
	}

	acc := newAccumulator()

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			log.printf("[debug]: skipping non-regular entry: %s\n", entry.Name())

			continue
		}

		info, err := entry.Info()
		if err != nil {
			log.printf("[debug]: error reading metadata for %s: %v\n", entry.Name(), err)
			acc.addError()

			continue
		}

		timestamp := info.ModTime().Unix()
		if _, err := FormatTimestamp(timestamp); err != nil {
			log.printf("[debug]: skipping %s: %v\n", entry.Name(), err)
			acc.addError()

			continue
		}

		category := Classify(entry.Name())
		log.printf("[debug]: %s -> %s\n", entry.Name(), category)

		acc.add(category, entry.Name(), timestamp, info.Size())
	}

	report, err := acc.finalize()
	if err != nil {
		return nil, err
	}

	report.Path = opt.Path
	report.Elapsed = time.Since(start)

	return report, nil
}
