package table

// errors.go — typed failures for the extraction pipeline. Each error names
// the exact line, column, or cell that broke the contract so the caller can
// correct the requested region or labels instead of guessing.

import "fmt"

// RegionNotFoundError reports a page/line selection that did not match every
// requested line, e.g. a page absent from the document or a line range
// partly or wholly past the end of the page. An incomplete selection is
// surfaced rather than returned as a smaller table because it almost always
// means the page layout shifted.
type RegionNotFoundError struct {
	Page  int
	First int
	Last  int
	Found int // lines actually matched, 0 when the selection was empty
}

func (e *RegionNotFoundError) Error() string {
	if e.Found == 0 {
		return fmt.Sprintf("region not found: page %d lines %d-%d selected no lines", e.Page, e.First, e.Last)
	}
	return fmt.Sprintf("region incomplete: page %d lines %d-%d selected only %d of %d lines",
		e.Page, e.First, e.Last, e.Found, e.Last-e.First+1)
}

// ColumnCountMismatchError reports a line whose whitespace split did not
// produce exactly one value per column label. Padding or truncating instead
// would misalign every downstream value without visible symptoms.
type ColumnCountMismatchError struct {
	Page int
	Line int
	Text string
	Want int
	Got  int
}

func (e *ColumnCountMismatchError) Error() string {
	return fmt.Sprintf("column count mismatch at page %d line %d: want %d columns, got %d in %q",
		e.Page, e.Line, e.Want, e.Got, e.Text)
}

// CoercionError reports a cell that could not be parsed as its column's
// declared type. Coercion is all-or-nothing: the first bad cell fails the
// whole call and no partial table is produced.
type CoercionError struct {
	Column string
	Row    int // 1-based data row
	Value  string
	Type   Type
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce column %q row %d: %q is not a valid %s", e.Column, e.Row, e.Value, e.Type)
}
