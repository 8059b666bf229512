package table

import "github.com/tidytable/pdftidy/document"

// SelectRegion returns the ordered subsequence of lines on the given page
// whose line number falls within the inclusive range [first, last]. The
// whole range must exist on the page: a selection that comes back with
// fewer than last-first+1 lines fails with *RegionNotFoundError, so a range
// hanging past the end of the page cannot silently shrink the table.
func SelectRegion(lines []document.LineRecord, page, first, last int) ([]document.LineRecord, error) {
	var out []document.LineRecord
	for _, ln := range lines {
		if ln.Page == page && ln.Line >= first && ln.Line <= last {
			out = append(out, ln)
		}
	}
	if len(out) != last-first+1 {
		return nil, &RegionNotFoundError{Page: page, First: first, Last: last, Found: len(out)}
	}
	return out, nil
}
