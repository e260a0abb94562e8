// Package report classifies working-tree status codes and formats the
// single result line written to standard output.
package report

import "strings"

// Category is the human-readable classification of a working-tree status code.
type Category string

// Categories reported next to the status: field. CategoryClean is the zero
// case for files identical to their committed content; it never appears in
// output because clean files print the bare revision line.
const (
	CategoryClean     Category = ""
	CategoryUntracked Category = "Untracked"
	CategoryAdded     Category = "Added"
	CategoryModified  Category = "Modified"
	CategoryDeleted   Category = "Deleted"
	CategoryRenamed   Category = "Renamed"
	CategoryCopied    Category = "Copied"
	CategoryUnmerged  Category = "Unmerged"
	CategoryUnknown   Category = "UNKNOWN"
)

// categories maps porcelain status codes to categories. Renamed and Copied
// are listed for completeness; the per-file status query does not request
// rename detection, so they only show up if the client reports them anyway.
var categories = map[string]Category{
	"??": CategoryUntracked,
	"A":  CategoryAdded,
	"M":  CategoryModified,
	"D":  CategoryDeleted,
	"R":  CategoryRenamed,
	"C":  CategoryCopied,
	"U":  CategoryUnmerged,
}

// CategoryOf maps a status code to its category. The empty code means clean.
// Codes outside the table, including multi-character combinations like "AM",
// fall back to CategoryUnknown rather than failing.
func CategoryOf(code string) Category {
	if code == "" {
		return CategoryClean
	}
	if cat, ok := categories[code]; ok {
		return cat
	}
	return CategoryUnknown
}

// Result holds whatever the version-control queries produced. Zero values
// mean the corresponding query did not run or did not succeed.
type Result struct {
	Revision string   // checked-out revision identifier
	Category Category // working-tree classification, CategoryClean when unmodified
	Blob     string   // content hash of the file's current bytes
}

// Line renders the result as the single quoted line for standard output.
// The surrounding single quotes are literal characters in the output, so
// callers can embed the string in generated source without further quoting.
//
//	'ref:<revision>'                                  clean file
//	'ref:<revision> status:<Category> blob:<hash>'    modified file
//	'status:UNKNOWN blob:<hash>'                      no revision available
//	'status:UNKNOWN'                                  nothing available
func (r Result) Line() string {
	fields := make([]string, 0, 3)
	if r.Revision != "" {
		fields = append(fields, "ref:"+r.Revision)
		if r.Category != CategoryClean {
			fields = append(fields, "status:"+string(r.Category), "blob:"+r.Blob)
		}
	} else {
		fields = append(fields, "status:"+string(CategoryUnknown))
		if r.Blob != "" {
			fields = append(fields, "blob:"+r.Blob)
		}
	}
	return "'" + strings.Join(fields, " ") + "'"
}
