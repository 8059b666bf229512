// Package export renders a header-plus-rows grid of strings — the shape
// produced by table.Table.Grid and table.Typed.Grid — into interchange
// formats. One renderer per format, looked up by name.
package export

import (
	"fmt"
	"sort"
	"strings"
)

// Format names accepted by Render.
const (
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
	FormatXLSX     = "xlsx"
)

type renderFn func(grid [][]string) ([]byte, error)

var renderers = map[string]renderFn{
	FormatMarkdown: func(grid [][]string) ([]byte, error) {
		return []byte(renderMarkdown(grid)), nil
	},
	FormatCSV:  renderCSV,
	FormatXLSX: renderXLSX,
}

// Supported returns the known format names, sorted.
func Supported() []string {
	out := make([]string, 0, len(renderers))
	for name := range renderers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Render encodes the grid in the named format. The first grid row is the
// header. Note the xlsx output is binary.
func Render(grid [][]string, format string) ([]byte, error) {
	fn, ok := renderers[format]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q (supported: %s)", format, strings.Join(Supported(), ", "))
	}
	return fn(grid)
}
