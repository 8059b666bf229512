package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// renderCSV encodes the grid as RFC 4180 CSV, header row first.
func renderCSV(grid [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(grid); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}
