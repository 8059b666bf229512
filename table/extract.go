package table

import (
	"regexp"

	"github.com/tidytable/pdftidy/document"
)

// Request configures a full fixed-region extraction: which page-scoped line
// range to read, how to split it into labeled columns, and optionally how to
// pivot and type the result.
type Request struct {
	// Region: page number and inclusive line range.
	Page      int
	FirstLine int
	LastLine  int

	// Column labels, one per whitespace-delimited field.
	Labels []string

	// Delimiter between columns; nil means runs of whitespace.
	Delimiter *regexp.Regexp

	// Pivot configuration. A nil ValuePattern leaves the table wide.
	IDColumns    []string
	ValuePattern *regexp.Regexp
	VariableName string
	ValueName    string

	// Per-column target types; columns not listed stay strings.
	Types map[string]Type
}

// Extract runs the whole pipeline over a document: flatten to line records,
// select the requested region, split into labeled columns, pivot to long
// format when a value pattern is set, and coerce types. Any stage failure
// aborts the call.
func Extract(doc *document.Document, req Request) (Typed, error) {
	region, err := SelectRegion(doc.Lines(), req.Page, req.FirstLine, req.LastLine)
	if err != nil {
		return Typed{}, err
	}

	out, err := SplitColumns(region, req.Labels, req.Delimiter)
	if err != nil {
		return Typed{}, err
	}

	if req.ValuePattern != nil {
		out, err = ToLong(out, req.IDColumns, req.ValuePattern, req.VariableName, req.ValueName)
		if err != nil {
			return Typed{}, err
		}
	}

	return Coerce(out, req.Types)
}
