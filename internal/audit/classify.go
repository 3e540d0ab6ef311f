package audit

import "strings"

// Category is one of the seven mutually exclusive file classifications.
type Category string

// Categories, named as they appear in the report.
const (
	CategoryImage      Category = "Images"
	CategoryDocument   Category = "Documents"
	CategoryMusic      Category = "Music"
	CategoryVideo      Category = "Videos"
	CategoryCodeScript Category = "Code/Scripts"
	CategoryArchive    Category = "Archives"
	CategoryOther      Category = "Other files"
)

// matcher pairs a category with the filename suffixes it claims.
type matcher struct {
	category Category
	suffixes []string
}

// matchers define classification priority: first match wins. Note that
// ".mp4" appears under both Music and Video; Music is tested first, so
// every ".mp4" file lands in Music.
//
//nolint:gochecknoglobals // Classification table
var matchers = []matcher{
	{CategoryImage, []string{".jpg", ".jpeg", ".png"}},
	{CategoryDocument, []string{".pdf", ".docx", ".xlsx", ".pptx"}},
	{CategoryMusic, []string{".mp4", ".wav", ".flac"}},
	{CategoryVideo, []string{".mp4", ".mkv", ".mov", ".wmv", ".m4v"}},
	{CategoryCodeScript, []string{".py", ".js", ".cpp", ".java"}},
	{CategoryArchive, []string{".zip", ".tar.gz", ".tar.bz2"}},
}

// Order fixes the category sequence used by reports.
//
//nolint:gochecknoglobals // Report ordering constant
var Order = []Category{
	CategoryImage,
	CategoryDocument,
	CategoryMusic,
	CategoryVideo,
	CategoryCodeScript,
	CategoryArchive,
	CategoryOther,
}

// Classify assigns a filename to exactly one category. Matching is
// case-sensitive and anchored at the end of the name; files matching
// no pattern fall through to CategoryOther.
func Classify(name string) Category {
	for _, m := range matchers {
		for _, suffix := range m.suffixes {
			if strings.HasSuffix(name, suffix) {
				return m.category
			}
		}
	}

	return CategoryOther
}
