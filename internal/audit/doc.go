// Package audit classifies the regular files of a single directory by
// filename extension and aggregates per-category statistics.
//
// The scan is one sequential pass over the directory's immediate
// entries: non-regular entries (subdirectories, symlinks, devices) are
// skipped, each file is assigned to exactly one of seven categories by
// an ordered list of suffix matchers, and per-category counts, sizes,
// newest/oldest timestamps and the three largest files are reported.
package audit
