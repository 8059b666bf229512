package export

// markdown.go — GitHub-Flavored Markdown table renderer.
//
// Columns are padded to the width of their widest cell so the raw text stays
// readable, which matters when the table is pasted into a tool response or a
// report draft.

import (
	"strings"
	"unicode/utf8"
)

const minColWidth = 3 // minimum separator width for a valid Markdown table (---)

// renderMarkdown converts a grid into a Markdown table. The first row is
// the header; a separator row is inserted after it.
func renderMarkdown(grid [][]string) string {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return ""
	}
	cols := len(grid[0])

	widths := make([]int, cols)
	for i := range widths {
		widths[i] = minColWidth
	}
	for _, row := range grid {
		for i, raw := range row {
			if i < cols {
				if w := utf8.RuneCountInString(escapePipes(raw)); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		sb.WriteByte('|')
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = escapePipes(row[i])
			}
			sb.WriteString(" " + pad(cell, widths[i]) + " |")
		}
		sb.WriteByte('\n')
	}

	writeRow(grid[0])

	sb.WriteByte('|')
	for i := 0; i < cols; i++ {
		sb.WriteString(" " + strings.Repeat("-", widths[i]) + " |")
	}
	sb.WriteByte('\n')

	for _, row := range grid[1:] {
		writeRow(row)
	}
	return sb.String()
}

// pad right-pads s to w display columns, counting runes rather than bytes so
// multi-byte cell values stay aligned.
func pad(s string, w int) string {
	n := utf8.RuneCountInString(s)
	if n >= w {
		return s
	}
	return s + strings.Repeat(" ", w-n)
}

// escapePipes replaces | characters in a cell value so they do not break the
// Markdown table syntax.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
