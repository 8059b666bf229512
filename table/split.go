package table

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tidytable/pdftidy/document"
)

// defaultDelimiter matches runs of whitespace so single and repeated
// spaces/tabs separate columns identically.
var defaultDelimiter = regexp.MustCompile(`\s+`)

// SplitColumns splits each selected line into columns on the delimiter
// pattern (nil means runs of whitespace) and zips the pieces with labels
// positionally. Lines are trimmed of leading and trailing whitespace before
// the split so indentation cannot manufacture a phantom empty column.
//
// Labels must be unique, and every line must split into exactly len(labels)
// pieces; a line that does not fails the whole call with
// *ColumnCountMismatchError.
func SplitColumns(selected []document.LineRecord, labels []string, delim *regexp.Regexp) (Table, error) {
	if len(labels) == 0 {
		return Table{}, fmt.Errorf("at least one column label is required")
	}
	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		if seen[label] {
			return Table{}, fmt.Errorf("duplicate column label %q", label)
		}
		seen[label] = true
	}
	if delim == nil {
		delim = defaultDelimiter
	}

	rows := make([][]string, 0, len(selected))
	for _, ln := range selected {
		fields := delim.Split(strings.TrimSpace(ln.Text), -1)
		if len(fields) == 1 && fields[0] == "" {
			fields = nil // an empty line has zero columns, not one
		}
		if len(fields) != len(labels) {
			return Table{}, &ColumnCountMismatchError{
				Page: ln.Page,
				Line: ln.Line,
				Text: ln.Text,
				Want: len(labels),
				Got:  len(fields),
			}
		}
		rows = append(rows, fields)
	}

	columns := make([]string, len(labels))
	copy(columns, labels)
	return Table{Columns: columns, Rows: rows}, nil
}
