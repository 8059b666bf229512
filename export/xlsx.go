package export

// xlsx.go — XLSX workbook output using the excelize library. The grid lands
// in a single sheet, header row first.

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Sheet1"

// WriteXLSX writes the grid as a one-sheet workbook to w.
func WriteXLSX(grid [][]string, w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for r, row := range grid {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("cell name for row %d col %d: %w", r+1, c+1, err)
			}
			if err := f.SetCellValue(sheetName, cell, val); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func renderXLSX(grid [][]string) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteXLSX(grid, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
