// Package table extracts rectangular regions of a document as typed, tidy
// tables. The pipeline is SelectRegion → SplitColumns → ToLong → Coerce;
// every stage is a pure function and fails loudly rather than producing a
// silently misaligned table.
package table

import (
	"fmt"
	"strconv"
)

// Table is a rectangular block of string cells with ordered, labeled
// columns. Every row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Grid returns the table as a header row followed by the data rows, the
// shape consumed by the export renderers.
func (t Table) Grid() [][]string {
	grid := make([][]string, 0, len(t.Rows)+1)
	grid = append(grid, t.Columns)
	grid = append(grid, t.Rows...)
	return grid
}

// Type is the target type of a coerced column.
type Type int

const (
	TypeString Type = iota
	TypeInt
	TypeFloat
)

func (ty Type) String() string {
	switch ty {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	default:
		return "string"
	}
}

// ParseType maps a type name to a Type. Recognized names: "string" (also
// the empty string), "int", "integer", "float", "number".
func ParseType(name string) (Type, error) {
	switch name {
	case "", "string":
		return TypeString, nil
	case "int", "integer":
		return TypeInt, nil
	case "float", "number":
		return TypeFloat, nil
	default:
		return TypeString, fmt.Errorf("unknown column type %q (expected string, int, or float)", name)
	}
}

// Typed is a table whose cells have been coerced to per-column Go types:
// int64 for TypeInt, float64 for TypeFloat, string otherwise. Types is
// parallel to Columns.
type Typed struct {
	Columns []string
	Types   []Type
	Records [][]any
}

// Grid formats the typed records back into a header row plus string rows.
func (t Typed) Grid() [][]string {
	grid := make([][]string, 0, len(t.Records)+1)
	grid = append(grid, t.Columns)
	for _, rec := range t.Records {
		row := make([]string, len(rec))
		for i, v := range rec {
			row[i] = formatCell(v)
		}
		grid = append(grid, row)
	}
	return grid
}

func formatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
