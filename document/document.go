// Package document models a text document as an ordered sequence of pages
// and exposes its content as (page, line, text) records. Pages come either
// from an in-memory slice of strings or from the PDF text layer via Loader.
package document

import "strings"

// Page is one physical page: a 1-based number and its raw text. The text may
// contain embedded line breaks.
type Page struct {
	Number int
	Text   string
}

// LineRecord is a single line of page text tagged with its page number and
// its 1-based, per-page line number.
type LineRecord struct {
	Page int
	Line int
	Text string
}

// Document is an ordered, read-only sequence of pages.
type Document struct {
	pages []Page
}

// FromPages builds a Document from raw page texts, one string per physical
// page, numbered 1..len(texts) in input order.
func FromPages(texts []string) *Document {
	pages := make([]Page, len(texts))
	for i, text := range texts {
		pages[i] = Page{Number: i + 1, Text: text}
	}
	return &Document{pages: pages}
}

// NumPages returns the number of pages.
func (d *Document) NumPages() int {
	return len(d.pages)
}

// Pages returns a copy of the page sequence in reading order.
func (d *Document) Pages() []Page {
	out := make([]Page, len(d.pages))
	copy(out, d.pages)
	return out
}

// Lines flattens the document into line records ordered by (page, line).
// Line numbers restart at 1 on every page and are contiguous.
//
// Splitting follows the raw text exactly: an empty page yields a single
// empty line, and a trailing terminator yields a trailing empty line. Both
// are preserved so line numbers stay stable against the source layout.
func (d *Document) Lines() []LineRecord {
	var out []LineRecord
	for _, p := range d.pages {
		for i, text := range splitLines(p.Text) {
			out = append(out, LineRecord{Page: p.Number, Line: i + 1, Text: text})
		}
	}
	return out
}

// splitLines splits page text on line terminators. CRLF and lone CR are
// normalized to LF first so Windows-produced text numbers the same way.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
