package table

import (
	"fmt"
	"regexp"
)

// ToLong pivots a wide table into long (tidy) format. Every column whose
// label matches valuePattern becomes one output row per input row, with the
// column's identity in the variableName column and its cell in the
// valueName column. If valuePattern contains a capture group, group 1
// supplies the variable identifier (so `^y(\d+)$` turns label "y1992" into
// "1992"); otherwise the full label is used.
//
// Columns listed in idColumns are carried over verbatim and never pivoted.
// All other non-matching columns are dropped. Output row order is (input
// row order × matched-column order).
func ToLong(t Table, idColumns []string, valuePattern *regexp.Regexp, variableName, valueName string) (Table, error) {
	if valuePattern == nil {
		return Table{}, fmt.Errorf("a value-column pattern is required")
	}
	if variableName == "" {
		variableName = "variable"
	}
	if valueName == "" {
		valueName = "value"
	}

	index := make(map[string]int, len(t.Columns))
	for i, col := range t.Columns {
		index[col] = i
	}

	idIdx := make([]int, len(idColumns))
	isID := make(map[string]bool, len(idColumns))
	for i, id := range idColumns {
		pos, ok := index[id]
		if !ok {
			return Table{}, fmt.Errorf("unknown id column %q", id)
		}
		idIdx[i] = pos
		isID[id] = true
	}

	var matched []int
	var variables []string
	for i, col := range t.Columns {
		if isID[col] {
			continue
		}
		m := valuePattern.FindStringSubmatch(col)
		if m == nil {
			continue
		}
		name := col
		if len(m) > 1 && m[1] != "" {
			name = m[1]
		}
		matched = append(matched, i)
		variables = append(variables, name)
	}
	if len(matched) == 0 {
		// A zero-column pivot is a caller mistake (wrong pattern or labels),
		// surfaced like an empty region rather than returned empty.
		return Table{}, fmt.Errorf("no columns match value pattern %q", valuePattern)
	}

	columns := make([]string, 0, len(idColumns)+2)
	columns = append(columns, idColumns...)
	columns = append(columns, variableName, valueName)

	rows := make([][]string, 0, len(t.Rows)*len(matched))
	for _, row := range t.Rows {
		for j, col := range matched {
			out := make([]string, 0, len(columns))
			for _, pos := range idIdx {
				out = append(out, row[pos])
			}
			out = append(out, variables[j], row[col])
			rows = append(rows, out)
		}
	}
	return Table{Columns: columns, Rows: rows}, nil
}
