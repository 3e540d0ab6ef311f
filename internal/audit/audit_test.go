package audit

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name string, size int64, modTime time.Time) {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}

	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatalf("chtimes %s: %v", name, err)
	}
}

func summaryFor(t *testing.T, report *Report, category Category) CategorySummary {
	t.Helper()

	for _, summary := range report.Categories {
		if summary.Category == category {
			return summary
		}
	}

	t.Fatalf("report has no summary for %q", category)

	return CategorySummary{}
}

func TestRun_SingleImage(t *testing.T) {
	dir := t.TempDir()
	modTime := time.Unix(1700000000, 0)
	writeFile(t, dir, "photo.jpg", 2*1024*1024, modTime)

	report, err := Run(Options{Path: dir})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	images := summaryFor(t, report, CategoryImage)

	if images.Count != 1 {
		t.Errorf("expected 1 image, got %d", images.Count)
	}

	if images.TotalMB != 2 {
		t.Errorf("expected total 2MB, got %v", images.TotalMB)
	}

	if images.Newest != "photo.jpg" || images.Oldest != "photo.jpg" {
		t.Errorf("expected photo.jpg as newest and oldest, got %q / %q", images.Newest, images.Oldest)
	}

	if images.NewestAt != "2023-Nov-14 22:13:20" {
		t.Errorf("unexpected newest timestamp: %q", images.NewestAt)
	}

	if images.OldestAt != images.NewestAt {
		t.Errorf("single file should share timestamps: %q / %q", images.OldestAt, images.NewestAt)
	}

	if images.Largest != "photo.jpg - 2MB" {
		t.Errorf("unexpected largest summary: %q", images.Largest)
	}
}

func TestRun_MusicClaimsMP4(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeFile(t, dir, "a.mp4", 1024, now)
	writeFile(t, dir, "b.mkv", 1024, now)

	report, err := Run(Options{Path: dir})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := summaryFor(t, report, CategoryMusic).Count; got != 1 {
		t.Errorf("expected 1 music file, got %d", got)
	}

	if got := summaryFor(t, report, CategoryVideo).Count; got != 1 {
		t.Errorf("expected 1 video file, got %d", got)
	}
}

func TestRun_TopThreeLargest(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeFile(t, dir, "x.pdf", 1*1024*1024, now)
	writeFile(t, dir, "y.pdf", 3*1024*1024, now)
	writeFile(t, dir, "z.pdf", 2*1024*1024, now)

	report, err := Run(Options{Path: dir})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	documents := summaryFor(t, report, CategoryDocument)

	if documents.Count != 3 {
		t.Errorf("expected 3 documents, got %d", documents.Count)
	}

	if documents.TotalMB != 6 {
		t.Errorf("expected total 6MB, got %v", documents.TotalMB)
	}

	want := "y.pdf - 3MB, z.pdf - 2MB, x.pdf - 1MB"
	if documents.Largest != want {
		t.Errorf("largest = %q, want %q", documents.Largest, want)
	}
}

func TestRun_NewestAndOldest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "old.py", 10, time.Unix(1000000000, 0))
	writeFile(t, dir, "mid.js", 10, time.Unix(1500000000, 0))
	writeFile(t, dir, "new.cpp", 10, time.Unix(1700000000, 0))

	report, err := Run(Options{Path: dir})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	code := summaryFor(t, report, CategoryCodeScript)

	if code.Newest != "new.cpp" {
		t.Errorf("newest = %q, want new.cpp", code.Newest)
	}

	if code.Oldest != "old.py" {
		t.Errorf("oldest = %q, want old.py", code.Oldest)
	}
}

func TestRun_SkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "archive.zip"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	report, err := Run(Options{Path: dir})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := summaryFor(t, report, CategoryArchive).Count; got != 0 {
		t.Errorf("subdirectory counted as archive: count = %d", got)
	}

	if report.FileCount != 0 {
		t.Errorf("expected 0 files, got %d", report.FileCount)
	}
}

func TestRun_EmptyDirectory(t *testing.T) {
	report, err := Run(Options{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(report.Categories) != len(Order) {
		t.Fatalf("expected %d categories, got %d", len(Order), len(report.Categories))
	}

	for _, summary := range report.Categories {
		if summary.Count != 0 || summary.TotalMB != 0 {
			t.Errorf("category %q not empty: %+v", summary.Category, summary)
		}

		if summary.Newest != "" || summary.Oldest != "" || summary.Largest != "" {
			t.Errorf("category %q carries fields despite zero count: %+v", summary.Category, summary)
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	dir := t.TempDir()
	now := time.Unix(1700000000, 0)
	writeFile(t, dir, "photo.jpg", 4096, now)
	writeFile(t, dir, "notes.txt", 1024, now)
	writeFile(t, dir, "song.flac", 2048, now)

	first, err := Run(Options{Path: dir})
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}

	second, err := Run(Options{Path: dir})
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	first.Elapsed, second.Elapsed = 0, 0

	if !reflect.DeepEqual(first, second) {
		t.Errorf("reports differ between runs:\n%+v\n%+v", first, second)
	}
}

func TestRun_SkipsUnrepresentableTimestamps(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "photo.jpg", 4096, time.Unix(1700000000, 0))
	writeFile(t, dir, "old.pdf", 1024, time.Unix(-5, 0))

	report, err := Run(Options{Path: dir})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := summaryFor(t, report, CategoryImage).Count; got != 1 {
		t.Errorf("expected 1 image, got %d", got)
	}

	if got := summaryFor(t, report, CategoryDocument).Count; got != 0 {
		t.Errorf("pre-epoch file counted as document: count = %d", got)
	}

	if report.FileCount != 1 {
		t.Errorf("expected 1 classified file, got %d", report.FileCount)
	}

	if report.ErrorCount != 1 {
		t.Errorf("expected 1 skipped entry, got %d", report.ErrorCount)
	}
}

func TestRun_DirectoryNotFound(t *testing.T) {
	_, err := Run(Options{Path: filepath.Join(t.TempDir(), "missing")})
	if !errors.Is(err, ErrDirectoryNotFound) {
		t.Errorf("expected ErrDirectoryNotFound, got %v", err)
	}
}

func TestRun_NotADirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plain.txt", 1, time.Now())

	_, err := Run(Options{Path: filepath.Join(dir, "plain.txt")})
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("expected not-a-directory error, got %v", err)
	}
}

func TestRun_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root; directory permissions are not enforced")
	}

	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")

	if err := os.Mkdir(locked, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}

	t.Cleanup(func() {
		_ = os.Chmod(locked, 0o755)
	})

	_, err := Run(Options{Path: locked})
	if !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestRun_FallbackCategory(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeFile(t, dir, "README", 128, now)
	writeFile(t, dir, "data.csv", 256, now)

	report, err := Run(Options{Path: dir})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := summaryFor(t, report, CategoryOther).Count; got != 2 {
		t.Errorf("expected 2 other files, got %d", got)
	}
}
