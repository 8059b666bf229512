package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Coerce converts each cell to its column's declared type. Columns absent
// from types stay strings. The whole table either coerces or the call fails
// with *CoercionError naming the first offending cell; no partial result is
// produced.
func Coerce(t Table, types map[string]Type) (Typed, error) {
	colTypes := make([]Type, len(t.Columns))
	index := make(map[string]int, len(t.Columns))
	for i, col := range t.Columns {
		index[col] = i
	}
	for name, ty := range types {
		pos, ok := index[name]
		if !ok {
			return Typed{}, fmt.Errorf("unknown column %q in type map", name)
		}
		colTypes[pos] = ty
	}

	records := make([][]any, len(t.Rows))
	for r, row := range t.Rows {
		rec := make([]any, len(row))
		for c, raw := range row {
			v, err := coerceCell(raw, colTypes[c])
			if err != nil {
				return Typed{}, &CoercionError{
					Column: t.Columns[c],
					Row:    r + 1,
					Value:  raw,
					Type:   colTypes[c],
				}
			}
			rec[c] = v
		}
		records[r] = rec
	}

	columns := make([]string, len(t.Columns))
	copy(columns, t.Columns)
	return Typed{Columns: columns, Types: colTypes, Records: records}, nil
}

func coerceCell(raw string, ty Type) (any, error) {
	s := strings.TrimSpace(raw)
	switch ty {
	case TypeInt:
		return strconv.ParseInt(s, 10, 64)
	case TypeFloat:
		return strconv.ParseFloat(s, 64)
	default:
		return raw, nil
	}
}
